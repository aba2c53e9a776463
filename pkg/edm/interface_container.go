/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Entity container
//
// Entity container holds entity sets, singletons and operation imports.
type IEntityContainer interface {
	ISchemaElement

	// Returns elements in addition order
	Elements() []IEntityContainerElement

	// Returns entity set by name or nil if not found.
	//
	// If name is ambiguous then *AmbiguousEntitySetBinding is returned.
	FindEntitySet(name string) IEntitySet

	// Returns singleton by name or nil if not found.
	//
	// If name is ambiguous then *AmbiguousSingletonBinding is returned.
	FindSingleton(name string) ISingleton

	// Returns operation imports with specified name. Operation imports may be overloaded.
	FindOperationImports(name string) []IOperationImport
}

type IEntityContainerElement interface {
	INamedElement
	ContainerElementKind() ContainerElementKind
	Container() IEntityContainer
}

type IEntitySet interface {
	INavigationSource
	IEntityContainerElement
	IncludeInServiceDocument() bool
}

type ISingleton interface {
	INavigationSource
	IEntityContainerElement
}

/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Model
//
// Model holds schema elements and resolves them by qualified names.
//
// All Find×××() methods are total: they never panic, regardless of name passed.
type IModel interface {
	// Returns schema elements in addition order
	SchemaElements() []ISchemaElement

	VocabularyAnnotations() []IVocabularyAnnotation

	// Returns referenced models. Core model is always the first
	ReferencedModels() []IModel

	DeclaredNamespaces() []string

	// Returns first entity container or nil
	EntityContainer() IEntityContainer

	// Returns type by qualified name or nil if not found.
	//
	// If name is ambiguous then *AmbiguousTypeBinding is returned.
	FindDeclaredType(qualifiedName string) ISchemaType

	// Returns term by qualified name or nil if not found.
	//
	// If name is ambiguous then *AmbiguousTermBinding is returned.
	FindDeclaredTerm(qualifiedName string) ITerm

	// Returns all operation overloads with specified qualified name
	FindDeclaredOperations(qualifiedName string) []IOperation

	// Returns bound operations which binding parameter type is equivalent to specified type
	FindDeclaredBoundOperations(bindingType IType) []IOperation

	// Same as FindDeclaredBoundOperations, but only operations with specified qualified name
	FindDeclaredBoundOperationsByName(qualifiedName string, bindingType IType) []IOperation

	// Returns entity container by qualified name or by name, nil if not found
	//
	// If name is ambiguous then *AmbiguousEntityContainerBinding is returned.
	FindDeclaredEntityContainer(name string) IEntityContainer

	// Returns annotations declared for element
	FindDeclaredVocabularyAnnotations(element IVocabularyAnnotatable) []IVocabularyAnnotation

	// Returns types which base type is specified type, in addition order
	FindDirectlyDerivedTypes(baseType IStructuredType) []IStructuredType
}

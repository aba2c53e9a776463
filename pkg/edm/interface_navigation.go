/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Navigation source
//
// Addressable collection or single entity to which navigation properties resolve.
type INavigationSource interface {
	INamedElement

	NavigationSourceKind() NavigationSourceKind

	// Returns collection type for entity sets or entity type for singletons
	Type() IType

	// Returns path to navigation source from the entity container
	Path() PathExpression

	// Returns all navigation property bindings, in registration order
	NavigationPropertyBindings() []INavigationPropertyBinding

	// Returns bindings for specified navigation property
	FindNavigationPropertyBindings(p INavigationProperty) []INavigationPropertyBinding

	// Finds navigation source which is the target of specified navigation property.
	//
	// For containment navigation property returns contained entity set.
	// Returns unknown entity set if no binding is configured.
	FindNavigationTarget(p INavigationProperty) INavigationSource

	// Same as FindNavigationTarget, but binding is searched by binding path.
	// Empty path is the same as FindNavigationTarget.
	FindNavigationTargetByPath(p INavigationProperty, bindingPath PathExpression) INavigationSource
}

type INavigationPropertyBinding interface {
	NavigationProperty() INavigationProperty
	Target() INavigationSource

	// Returns binding path. Last segment of path is navigation property name
	Path() PathExpression
}

// Navigation source which exists relative to parent navigation source
type IContainedEntitySet interface {
	INavigationSource
	ParentNavigationSource() INavigationSource
	NavigationProperty() INavigationProperty

	// Returns path from parent navigation source
	NavigationPath() PathExpression
}

// Navigation source returned if navigation property binding is not configured
type IUnknownEntitySet interface {
	INavigationSource
	ParentNavigationSource() INavigationSource
	NavigationProperty() INavigationProperty
}

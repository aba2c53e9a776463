/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Property
//
// Property of structured type.
type IProperty interface {
	INamedElement
	PropertyKind() PropertyKind
	Type() ITypeReference

	// Returns type which declares the property. Never nil
	DeclaringType() IStructuredType
}

type IStructuralProperty interface {
	IProperty
	DefaultValue() string
}

// # Navigation property
//
// Navigation property is a typed relationship to another entity type.
type INavigationProperty interface {
	IProperty

	// Returns navigation property on the other end of relationship, or nil.
	Partner() INavigationProperty

	// Returns path to partner from the target type. Empty if no partner.
	PartnerPath() PathExpression

	// Returns referential constraint or nil if there is no constraint
	ReferentialConstraint() IReferentialConstraint

	OnDelete() OnDeleteAction

	// Returns is target entities are contained by the source entity
	ContainsTarget() bool
}

type IReferentialConstraint interface {
	PropertyPairs() []ReferentialConstraintPropertyPair
}

// Pair of dependent and principal properties of referential constraint
type ReferentialConstraintPropertyPair struct {
	Dependent IStructuralProperty
	Principal IStructuralProperty
}

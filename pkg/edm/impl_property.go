/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Implements:
//   - IProperty
type property struct {
	name          string
	typ           ITypeReference
	declaringType IStructuredType
}

func makeProperty(declaringType IStructuredType, name string, typ ITypeReference) property {
	if declaringType == nil {
		panic(ErrMissed("property «%s» declaring type", name))
	}
	if name == "" {
		panic(ErrMissed("property name"))
	}
	if typ == nil {
		panic(ErrMissed("property «%s» type", name))
	}
	return property{name: name, typ: typ, declaringType: declaringType}
}

func (p *property) DeclaringType() IStructuredType { return p.declaringType }

func (p *property) Name() string { return p.name }

func (p *property) Type() ITypeReference { return p.typ }

func (p *property) String() string { return TraceString(p.declaringType) + PathSeparator + p.name }

// # Implements:
//   - IStructuralProperty
type StructuralProperty struct {
	property
	defaultValue string
}

// Creates and returns new structural property. Property is not added to declaring type, see AddProperty.
//
// # Panics:
//   - if declaring type is nil,
//   - if name is empty,
//   - if type is nil.
func NewStructuralProperty(declaringType IStructuredType, name string, typ ITypeReference, defaultValue string) *StructuralProperty {
	return &StructuralProperty{
		property:     makeProperty(declaringType, name, typ),
		defaultValue: defaultValue,
	}
}

func (p *StructuralProperty) DefaultValue() string { return p.defaultValue }

func (p *StructuralProperty) PropertyKind() PropertyKind { return PropertyKind_Structural }

// # Implements:
//   - IReferentialConstraint
type ReferentialConstraint struct {
	pairs []ReferentialConstraintPropertyPair
}

// Creates referential constraint from dependent and principal properties.
// Properties are paired by their positions.
//
// # Panics:
//   - if properties count mismatch.
func NewReferentialConstraint(dependent, principal []IStructuralProperty) *ReferentialConstraint {
	if len(dependent) != len(principal) {
		panic(ErrInvalid("dependent properties count %d should be equal to principal properties count %d", len(dependent), len(principal)))
	}
	c := &ReferentialConstraint{pairs: make([]ReferentialConstraintPropertyPair, 0, len(dependent))}
	for i := range dependent {
		c.pairs = append(c.pairs, ReferentialConstraintPropertyPair{Dependent: dependent[i], Principal: principal[i]})
	}
	return c
}

func (c *ReferentialConstraint) PropertyPairs() []ReferentialConstraintPropertyPair { return c.pairs }

/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// Information to create navigation property
type NavigationPropertyInfo struct {
	Name               string
	Target             IEntityType
	TargetMultiplicity Multiplicity

	// Dependent properties of referential constraint, declared by source type.
	DependentProperties []IStructuralProperty

	// Principal properties of referential constraint, declared by target type.
	// If empty, then target key is used.
	PrincipalProperties []IStructuralProperty

	ContainsTarget bool
	OnDelete       OnDeleteAction
}

// # Implements:
//   - INavigationProperty
type NavigationProperty struct {
	property
	partner        INavigationProperty
	partnerPath    PathExpression
	constraint     *ReferentialConstraint
	onDelete       OnDeleteAction
	containsTarget bool
}

// Creates and returns navigation property without partner.
// Property is not added to declaring type, see AddProperty.
//
// Property type depends on target multiplicity: ZeroOrOne is nullable entity type reference,
// One is not nullable entity type reference, Many is collection of not nullable entity type references.
//
// # Panics:
//   - if declaring type is nil,
//   - if info name is empty,
//   - if info target is nil,
//   - if info target multiplicity is unknown,
//   - if dependent and principal properties count mismatch.
func NewNavigationProperty(declaringType IStructuredType, info NavigationPropertyInfo) *NavigationProperty {
	if info.Target == nil {
		panic(ErrMissed("navigation property «%s» target", info.Name))
	}

	var typ ITypeReference
	switch info.TargetMultiplicity {
	case Multiplicity_ZeroOrOne:
		typ = NewEntityTypeReference(info.Target, true)
	case Multiplicity_One:
		typ = NewEntityTypeReference(info.Target, false)
	case Multiplicity_Many:
		typ = NewCollectionTypeReference(NewCollectionType(NewEntityTypeReference(info.Target, false)), false)
	default:
		panic(ErrInvalid("navigation property «%s» target multiplicity «%v»", info.Name, info.TargetMultiplicity))
	}

	p := &NavigationProperty{
		property:       makeProperty(declaringType, info.Name, typ),
		onDelete:       info.OnDelete,
		containsTarget: info.ContainsTarget,
	}

	if len(info.DependentProperties) > 0 {
		principal := info.PrincipalProperties
		if len(principal) == 0 {
			principal = Key(info.Target)
		}
		p.constraint = NewReferentialConstraint(info.DependentProperties, principal)
	}

	return p
}

// Creates pair of navigation properties which are partners of each other.
//
// First result is declared by partner target and navigates to info target,
// second result is declared by info target and navigates to partner target.
// Properties are not added to declaring types.
//
// # Panics:
//   - if info or partner info is not valid, see NewNavigationProperty.
func NewNavigationPropertyWithPartner(info, partnerInfo NavigationPropertyInfo) (*NavigationProperty, *NavigationProperty) {
	if partnerInfo.Target == nil {
		panic(ErrMissed("navigation property «%s» declaring type", info.Name))
	}
	if info.Target == nil {
		panic(ErrMissed("navigation property «%s» declaring type", partnerInfo.Name))
	}

	end1 := NewNavigationProperty(partnerInfo.Target, info)
	end2 := NewNavigationProperty(info.Target, partnerInfo)

	end1.SetPartner(end2, NewPathExpression(end2.Name()))
	end2.SetPartner(end1, NewPathExpression(end1.Name()))

	return end1, end2
}

func (p *NavigationProperty) ContainsTarget() bool { return p.containsTarget }

func (p *NavigationProperty) OnDelete() OnDeleteAction { return p.onDelete }

func (p *NavigationProperty) Partner() INavigationProperty { return p.partner }

func (p *NavigationProperty) PartnerPath() PathExpression { return p.partnerPath }

func (p *NavigationProperty) PropertyKind() PropertyKind { return PropertyKind_Navigation }

func (p *NavigationProperty) ReferentialConstraint() IReferentialConstraint {
	if p.constraint == nil {
		return nil
	}
	return p.constraint
}

// Sets partner navigation property and path to partner from target type.
//
// # Panics:
//   - if partner is nil,
//   - if partner is already set.
func (p *NavigationProperty) SetPartner(partner INavigationProperty, path PathExpression) {
	if partner == nil {
		panic(ErrMissed("navigation property «%s» partner", p.Name()))
	}
	if p.partner != nil {
		panic(ErrInvalidOperation("navigation property «%s» partner is already set to «%s»", p.Name(), p.partner.Name()))
	}
	p.partner = partner
	p.partnerPath = path
}

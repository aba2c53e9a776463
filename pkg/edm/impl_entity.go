/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Implements:
//   - IEntityType
type EntityType struct {
	schemaElement
	structuredType
	keys   []IStructuralProperty
	stream bool
}

// Creates and returns new entity type.
//
// # Panics:
//   - if name is empty,
//   - if base type is not entity type.
func NewEntityType(namespace, name string, opts ...StructuredTypeOption) *EntityType {
	if name == "" {
		panic(ErrMissed("entity type name"))
	}
	o := makeStructuredTypeOptions(opts...)
	if o.base != nil {
		if _, ok := o.base.(IEntityType); !ok || (o.base.TypeKind() != TypeKind_Entity) {
			panic(ErrInvalid("base type %s of entity type «%s» should be entity type", TraceString(o.base), FullName(namespace, name)))
		}
	}
	t := &EntityType{
		schemaElement: makeSchemaElement(namespace, name, SchemaElementKind_TypeDefinition),
		stream:        o.stream,
	}
	t.structuredType.init(t, o.base, o.abstract, o.open)
	return t
}

func (t *EntityType) DeclaredKey() []IStructuralProperty { return t.keys }

func (t *EntityType) HasStream() bool { return t.stream }

func (t *EntityType) TypeKind() TypeKind { return TypeKind_Entity }

// Appends properties to declared key.
//
// Properties are not checked to be declared by this type.
func (t *EntityType) AddKeys(pp ...IStructuralProperty) {
	t.keys = append(t.keys, pp...)
}

// Creates navigation property with partner: this end is added to this type,
// partner end is added to target type.
//
// If partner name, target or multiplicity is not specified, then defaults are used:
// name is property name with «Partner» suffix, target is this type,
// multiplicity is ZeroOrOne.
//
// Returns navigation property declared by this type.
//
// # Panics:
//   - if info target is nil,
//   - if info target can not accept properties,
//   - if info target multiplicity is unknown.
func (t *EntityType) AddBidirectionalNavigation(info, partnerInfo NavigationPropertyInfo) *NavigationProperty {
	if info.Target == nil {
		panic(ErrMissed("navigation property «%s» target", info.Name))
	}
	target, ok := info.Target.(interface{ AddProperty(IProperty) })
	if !ok {
		panic(ErrInvalid("navigation property «%s» target %s can not accept properties", info.Name, TraceString(info.Target)))
	}

	p, partner := NewNavigationPropertyWithPartner(info, t.fixUpDefaultPartnerInfo(info, partnerInfo))
	t.AddProperty(p)
	target.AddProperty(partner)
	return p
}

func (t *EntityType) fixUpDefaultPartnerInfo(info, partnerInfo NavigationPropertyInfo) NavigationPropertyInfo {
	if partnerInfo.Name == "" {
		partnerInfo.Name = info.Name + DefaultPartnerSuffix
	}
	if partnerInfo.Target == nil {
		partnerInfo.Target = t
	}
	if partnerInfo.TargetMultiplicity == Multiplicity_Unknown {
		partnerInfo.TargetMultiplicity = Multiplicity_ZeroOrOne
	}
	return partnerInfo
}

// Returns key of entity type. If type has no declared key, then key of base type is returned.
func Key(t IEntityType) []IStructuralProperty {
	visited := make(map[IEntityType]bool)
	for e := t; (e != nil) && !visited[e]; {
		visited[e] = true
		if k := e.DeclaredKey(); len(k) > 0 {
			return k
		}
		b, ok := e.BaseType().(IEntityType)
		if !ok {
			break
		}
		e = b
	}
	return nil
}

/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Implements:
//   - ITypeReference
type typeReference struct {
	def      IType
	nullable bool
}

// Makes type reference.
//
// # Panics:
//   - if definition is nil
func makeTypeReference(def IType, nullable bool) typeReference {
	if def == nil {
		panic(ErrMissed("type reference definition"))
	}
	return typeReference{def: def, nullable: nullable}
}

func (r typeReference) Definition() IType { return r.def }

func (r typeReference) IsNullable() bool { return r.nullable }

func (r typeReference) String() string {
	if r.nullable {
		return FullTypeName(r.def) + "?"
	}
	return FullTypeName(r.def)
}

// # Implements:
//   - IPrimitiveTypeReference
type PrimitiveTypeReference struct {
	typeReference
}

func (r *PrimitiveTypeReference) PrimitiveDefinition() IPrimitiveType {
	return r.def.(IPrimitiveType)
}

// Creates and returns reference to primitive type.
//
// Reference kind depends on primitive kind: decimal, string, binary, temporal
// and spatial kinds have their own references with facets. Facets not applicable to kind are ignored.
//
// # Panics:
//   - if definition is nil
func NewPrimitiveTypeReference(def IPrimitiveType, nullable bool, ff ...Facet) IPrimitiveTypeReference {
	ref := PrimitiveTypeReference{makeTypeReference(def, nullable)}
	kind := def.PrimitiveKind()
	f := makeFacets(kind, ff...)
	switch {
	case kind == PrimitiveTypeKind_Decimal:
		return &DecimalTypeReference{ref, f.precision, f.scale}
	case kind == PrimitiveTypeKind_String:
		return &StringTypeReference{ref, f.unbounded, f.maxLength, f.unicode}
	case kind == PrimitiveTypeKind_Binary:
		return &BinaryTypeReference{ref, f.unbounded, f.maxLength}
	case kind.IsTemporal():
		return &TemporalTypeReference{ref, f.precision}
	case kind.IsSpatial():
		return &SpatialTypeReference{ref, f.srid}
	}
	return &ref
}

// # Implements:
//   - IDecimalTypeReference
type DecimalTypeReference struct {
	PrimitiveTypeReference
	precision optional[int]
	scale     optional[int]
}

func (r *DecimalTypeReference) Precision() (int, bool) { return r.precision.get() }
func (r *DecimalTypeReference) Scale() (int, bool)     { return r.scale.get() }

// # Implements:
//   - IStringTypeReference
type StringTypeReference struct {
	PrimitiveTypeReference
	unbounded bool
	maxLength optional[int]
	unicode   optional[bool]
}

func (r *StringTypeReference) IsUnbounded() bool       { return r.unbounded }
func (r *StringTypeReference) MaxLength() (int, bool)  { return r.maxLength.get() }
func (r *StringTypeReference) IsUnicode() (bool, bool) { return r.unicode.get() }

// # Implements:
//   - IBinaryTypeReference
type BinaryTypeReference struct {
	PrimitiveTypeReference
	unbounded bool
	maxLength optional[int]
}

func (r *BinaryTypeReference) IsUnbounded() bool      { return r.unbounded }
func (r *BinaryTypeReference) MaxLength() (int, bool) { return r.maxLength.get() }

// # Implements:
//   - ITemporalTypeReference
type TemporalTypeReference struct {
	PrimitiveTypeReference
	precision optional[int]
}

func (r *TemporalTypeReference) Precision() (int, bool) { return r.precision.get() }

// # Implements:
//   - ISpatialTypeReference
type SpatialTypeReference struct {
	PrimitiveTypeReference
	srid optional[int]
}

func (r *SpatialTypeReference) SRID() (int, bool) { return r.srid.get() }

// # Implements:
//   - IComplexTypeReference
type ComplexTypeReference struct {
	typeReference
}

// # Panics:
//   - if definition is nil
func NewComplexTypeReference(def IComplexType, nullable bool) *ComplexTypeReference {
	return &ComplexTypeReference{makeTypeReference(def, nullable)}
}

func (r *ComplexTypeReference) ComplexDefinition() IComplexType       { return r.def.(IComplexType) }
func (r *ComplexTypeReference) StructuredDefinition() IStructuredType { return r.def.(IStructuredType) }

// # Implements:
//   - IEntityTypeReference
type EntityTypeReference struct {
	typeReference
}

// # Panics:
//   - if definition is nil
func NewEntityTypeReference(def IEntityType, nullable bool) *EntityTypeReference {
	return &EntityTypeReference{makeTypeReference(def, nullable)}
}

func (r *EntityTypeReference) EntityDefinition() IEntityType          { return r.def.(IEntityType) }
func (r *EntityTypeReference) StructuredDefinition() IStructuredType { return r.def.(IStructuredType) }

// # Implements:
//   - IEnumTypeReference
type EnumTypeReference struct {
	typeReference
}

// # Panics:
//   - if definition is nil
func NewEnumTypeReference(def IEnumType, nullable bool) *EnumTypeReference {
	return &EnumTypeReference{makeTypeReference(def, nullable)}
}

func (r *EnumTypeReference) EnumDefinition() IEnumType { return r.def.(IEnumType) }

// # Implements:
//   - ICollectionTypeReference
type CollectionTypeReference struct {
	typeReference
}

// # Panics:
//   - if definition is nil
func NewCollectionTypeReference(def ICollectionType, nullable bool) *CollectionTypeReference {
	return &CollectionTypeReference{makeTypeReference(def, nullable)}
}

func (r *CollectionTypeReference) CollectionDefinition() ICollectionType {
	return r.def.(ICollectionType)
}

func (r *CollectionTypeReference) ElementType() ITypeReference {
	return r.CollectionDefinition().ElementType()
}

// # Implements:
//   - IEntityReferenceTypeReference
type EntityReferenceTypeReference struct {
	typeReference
}

// # Panics:
//   - if definition is nil
func NewEntityReferenceTypeReference(def IEntityReferenceType, nullable bool) *EntityReferenceTypeReference {
	return &EntityReferenceTypeReference{makeTypeReference(def, nullable)}
}

func (r *EntityReferenceTypeReference) EntityReferenceDefinition() IEntityReferenceType {
	return r.def.(IEntityReferenceType)
}

// # Implements:
//   - ITypeDefinitionReference
type TypeDefinitionReference struct {
	typeReference
	facets
}

// Creates and returns reference to type definition.
//
// Facets defaults are filled from underlying primitive type kind.
//
// # Panics:
//   - if definition is nil
func NewTypeDefinitionReference(def ITypeDefinition, nullable bool, ff ...Facet) *TypeDefinitionReference {
	ref := makeTypeReference(def, nullable)
	kind := PrimitiveTypeKind_None
	if u := def.UnderlyingType(); u != nil {
		kind = u.PrimitiveKind()
	}
	return &TypeDefinitionReference{ref, makeFacets(kind, ff...)}
}

func (r *TypeDefinitionReference) TypeDefinition() ITypeDefinition { return r.def.(ITypeDefinition) }
func (r *TypeDefinitionReference) IsUnbounded() bool               { return r.unbounded }
func (r *TypeDefinitionReference) MaxLength() (int, bool)          { return r.maxLength.get() }
func (r *TypeDefinitionReference) IsUnicode() (bool, bool)         { return r.unicode.get() }
func (r *TypeDefinitionReference) Precision() (int, bool)          { return r.precision.get() }
func (r *TypeDefinitionReference) Scale() (int, bool)              { return r.scale.get() }
func (r *TypeDefinitionReference) SRID() (int, bool)               { return r.srid.get() }

// # Implements:
//   - IPathTypeReference
type PathTypeReference struct {
	typeReference
}

// # Panics:
//   - if definition is nil
func NewPathTypeReference(def IPathType, nullable bool) *PathTypeReference {
	return &PathTypeReference{makeTypeReference(def, nullable)}
}

func (r *PathTypeReference) PathDefinition() IPathType { return r.def.(IPathType) }

// # Implements:
//   - IUntypedTypeReference
type UntypedTypeReference struct {
	typeReference
}

// # Panics:
//   - if definition is nil
func NewUntypedTypeReference(def IUntypedType, nullable bool) *UntypedTypeReference {
	return &UntypedTypeReference{makeTypeReference(def, nullable)}
}

func (r *UntypedTypeReference) UntypedDefinition() IUntypedType { return r.def.(IUntypedType) }

// Returns reference to specified type. Reference kind is chosen by type kind.
//
// Types with kind None (bad types and ambiguous type bindings) are referenced by BadTypeReference.
//
// # Panics:
//   - if type is nil,
//   - if type does not implement interface of its kind,
//   - if type kind is None and type is not a bad element.
func ToTypeReference(t IType, nullable bool, ff ...Facet) ITypeReference {
	if t == nil {
		panic(ErrMissed("type to reference"))
	}
	mustBe := func(ok bool) {
		if !ok {
			panic(ErrInvalid("type %s does not implement %v interface", TraceString(t), t.TypeKind()))
		}
	}
	switch t.TypeKind() {
	case TypeKind_Primitive:
		p, ok := t.(IPrimitiveType)
		mustBe(ok)
		return NewPrimitiveTypeReference(p, nullable, ff...)
	case TypeKind_Complex:
		c, ok := t.(IComplexType)
		mustBe(ok)
		return NewComplexTypeReference(c, nullable)
	case TypeKind_Entity:
		e, ok := t.(IEntityType)
		mustBe(ok)
		return NewEntityTypeReference(e, nullable)
	case TypeKind_Enum:
		e, ok := t.(IEnumType)
		mustBe(ok)
		return NewEnumTypeReference(e, nullable)
	case TypeKind_Collection:
		c, ok := t.(ICollectionType)
		mustBe(ok)
		return NewCollectionTypeReference(c, nullable)
	case TypeKind_EntityReference:
		r, ok := t.(IEntityReferenceType)
		mustBe(ok)
		return NewEntityReferenceTypeReference(r, nullable)
	case TypeKind_TypeDefinition:
		d, ok := t.(ITypeDefinition)
		mustBe(ok)
		return NewTypeDefinitionReference(d, nullable, ff...)
	case TypeKind_Path:
		p, ok := t.(IPathType)
		mustBe(ok)
		return NewPathTypeReference(p, nullable)
	case TypeKind_Untyped:
		u, ok := t.(IUntypedType)
		mustBe(ok)
		return NewUntypedTypeReference(u, nullable)
	}
	if b, ok := t.(IBadElement); ok {
		return &BadTypeReference{makeTypeReference(t, nullable), makeBadElement(b.Errors())}
	}
	panic(ErrUnsupported("reference to type %s of kind «%v»", TraceString(t), t.TypeKind()))
}

// Returns entity type if reference is reference to entity type or collection of entity types.
// Returns nil otherwise.
func AsEntityType(r ITypeReference) IEntityType {
	if r == nil {
		return nil
	}
	switch t := r.Definition().(type) {
	case IEntityType:
		return t
	case ICollectionType:
		return AsEntityType(t.ElementType())
	}
	return nil
}

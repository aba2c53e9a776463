/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "sync"

// # Implements:
//   - IPrimitiveType
type PrimitiveType struct {
	schemaElement
	kind PrimitiveTypeKind
}

func (t *PrimitiveType) PrimitiveKind() PrimitiveTypeKind { return t.kind }

func (t *PrimitiveType) TypeKind() TypeKind { return TypeKind_Primitive }

// # Implements:
//   - IPathType
type PathType struct {
	schemaElement
	kind PathTypeKind
}

func (t *PathType) PathKind() PathTypeKind { return t.kind }

func (t *PathType) TypeKind() TypeKind { return TypeKind_Path }

// # Implements:
//   - IUntypedType
type UntypedType struct {
	schemaElement
}

func (t *UntypedType) TypeKind() TypeKind { return TypeKind_Untyped }

// # Core model
//
// Immutable model with built-in types of «Edm» namespace. Types are available by
// qualified name, such as «Edm.Int32», and by name, such as «Int32».
//
// # Implements:
//   - IModel
type CoreModel struct {
	modelBase
	primitives [PrimitiveTypeKind_count]*PrimitiveType
	paths      [PathTypeKind_count]*PathType
	untyped    *UntypedType
}

var (
	coreModelOnce sync.Once
	coreModel     *CoreModel
)

// Returns core model.
//
// Core model is created once and may be used by concurrent goroutines.
func Core() *CoreModel {
	coreModelOnce.Do(func() { coreModel = newCoreModel() })
	return coreModel
}

func newCoreModel() *CoreModel {
	const boundOpsCacheSize = 1
	m := &CoreModel{}
	m.modelBase.init(boundOpsCacheSize)

	add := func(t ISchemaType) {
		m.appendElement(t)
		m.registerElement(t, t.FullName(), t.Name())
	}

	for k := PrimitiveTypeKind_None + 1; k < PrimitiveTypeKind_count; k++ {
		t := &PrimitiveType{makeSchemaElement(CoreNamespace, k.TrimString(), SchemaElementKind_TypeDefinition), k}
		m.primitives[k] = t
		add(t)
	}

	m.untyped = &UntypedType{makeSchemaElement(CoreNamespace, "Untyped", SchemaElementKind_TypeDefinition)}
	add(m.untyped)

	for k := PathTypeKind_None + 1; k < PathTypeKind_count; k++ {
		t := &PathType{makeSchemaElement(CoreNamespace, k.TrimString(), SchemaElementKind_TypeDefinition), k}
		m.paths[k] = t
		add(t)
	}

	return m
}

// Returns reference to Edm.Binary
func (m *CoreModel) GetBinary(nullable bool, ff ...Facet) *BinaryTypeReference {
	return m.GetPrimitive(PrimitiveTypeKind_Binary, nullable, ff...).(*BinaryTypeReference)
}

// Returns reference to Edm.Boolean
func (m *CoreModel) GetBoolean(nullable bool) IPrimitiveTypeReference {
	return m.GetPrimitive(PrimitiveTypeKind_Boolean, nullable)
}

// Returns not nullable reference to collection of elements of specified type.
//
// # Panics:
//   - if element type is nil
func (m *CoreModel) GetCollection(elementType ITypeReference) *CollectionTypeReference {
	return NewCollectionTypeReference(NewCollectionType(elementType), false)
}

// Returns reference to Edm.Date
func (m *CoreModel) GetDate(nullable bool) IPrimitiveTypeReference {
	return m.GetPrimitive(PrimitiveTypeKind_Date, nullable)
}

// Returns reference to Edm.DateTimeOffset
func (m *CoreModel) GetDateTimeOffset(nullable bool, ff ...Facet) *TemporalTypeReference {
	return m.GetTemporal(PrimitiveTypeKind_DateTimeOffset, nullable, ff...)
}

// Returns reference to Edm.Decimal
func (m *CoreModel) GetDecimal(nullable bool, ff ...Facet) *DecimalTypeReference {
	return m.GetPrimitive(PrimitiveTypeKind_Decimal, nullable, ff...).(*DecimalTypeReference)
}

// Returns reference to Edm.Double
func (m *CoreModel) GetDouble(nullable bool) IPrimitiveTypeReference {
	return m.GetPrimitive(PrimitiveTypeKind_Double, nullable)
}

// Returns reference to Edm.Guid
func (m *CoreModel) GetGuid(nullable bool) IPrimitiveTypeReference {
	return m.GetPrimitive(PrimitiveTypeKind_Guid, nullable)
}

// Returns reference to Edm.Int32
func (m *CoreModel) GetInt32(nullable bool) IPrimitiveTypeReference {
	return m.GetPrimitive(PrimitiveTypeKind_Int32, nullable)
}

// Returns reference to Edm.Int64
func (m *CoreModel) GetInt64(nullable bool) IPrimitiveTypeReference {
	return m.GetPrimitive(PrimitiveTypeKind_Int64, nullable)
}

// Returns path type by kind or nil if kind is None or unknown
func (m *CoreModel) GetPathType(kind PathTypeKind) IPathType {
	if (kind <= PathTypeKind_None) || (kind >= PathTypeKind_count) {
		return nil
	}
	return m.paths[kind]
}

// Returns reference to path type.
//
// # Panics:
//   - if kind is None or unknown
func (m *CoreModel) GetPath(kind PathTypeKind, nullable bool) *PathTypeReference {
	t := m.GetPathType(kind)
	if t == nil {
		panic(ErrInvalid("path type kind «%v»", kind))
	}
	return NewPathTypeReference(t, nullable)
}

// Returns reference to primitive type with specified kind and facets.
//
// # Panics:
//   - if kind is None or unknown
func (m *CoreModel) GetPrimitive(kind PrimitiveTypeKind, nullable bool, ff ...Facet) IPrimitiveTypeReference {
	t := m.GetPrimitiveType(kind)
	if t == nil {
		panic(ErrInvalid("primitive type kind «%v»", kind))
	}
	return NewPrimitiveTypeReference(t, nullable, ff...)
}

// Returns primitive type by kind or nil if kind is None or unknown
func (m *CoreModel) GetPrimitiveType(kind PrimitiveTypeKind) IPrimitiveType {
	if (kind <= PrimitiveTypeKind_None) || (kind >= PrimitiveTypeKind_count) {
		return nil
	}
	return m.primitives[kind]
}

// Returns reference to geography or geometry type.
//
// # Panics:
//   - if kind is not spatial
func (m *CoreModel) GetSpatial(kind PrimitiveTypeKind, nullable bool, ff ...Facet) *SpatialTypeReference {
	if !kind.IsSpatial() {
		panic(ErrInvalid("primitive type kind «%v» should be spatial", kind))
	}
	return m.GetPrimitive(kind, nullable, ff...).(*SpatialTypeReference)
}

// Returns reference to Edm.String
func (m *CoreModel) GetString(nullable bool, ff ...Facet) *StringTypeReference {
	return m.GetPrimitive(PrimitiveTypeKind_String, nullable, ff...).(*StringTypeReference)
}

// Returns reference to temporal type: Edm.DateTimeOffset, Edm.Duration or Edm.TimeOfDay.
//
// # Panics:
//   - if kind is not temporal
func (m *CoreModel) GetTemporal(kind PrimitiveTypeKind, nullable bool, ff ...Facet) *TemporalTypeReference {
	if !kind.IsTemporal() {
		panic(ErrInvalid("primitive type kind «%v» should be temporal", kind))
	}
	return m.GetPrimitive(kind, nullable, ff...).(*TemporalTypeReference)
}

// Returns nullable reference to Edm.Untyped
func (m *CoreModel) GetUntyped() *UntypedTypeReference {
	return NewUntypedTypeReference(m.untyped, true)
}

// Returns Edm.Untyped type
func (m *CoreModel) GetUntypedType() IUntypedType { return m.untyped }

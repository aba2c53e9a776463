/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Type reference
//
// Type reference is a usage of type definition, for example as property type.
// Reference adds nullability and facets to definition and does not own definition.
type ITypeReference interface {
	// Returns referenced type definition. Never nil.
	Definition() IType

	IsNullable() bool
}

type IPrimitiveTypeReference interface {
	ITypeReference
	PrimitiveDefinition() IPrimitiveType
}

type IDecimalTypeReference interface {
	IPrimitiveTypeReference
	Precision() (int, bool)
	Scale() (int, bool)
}

type IStringTypeReference interface {
	IPrimitiveTypeReference
	IsUnbounded() bool
	MaxLength() (int, bool)
	IsUnicode() (bool, bool)
}

type IBinaryTypeReference interface {
	IPrimitiveTypeReference
	IsUnbounded() bool
	MaxLength() (int, bool)
}

// Reference to Edm.DateTimeOffset, Edm.Duration or Edm.TimeOfDay
type ITemporalTypeReference interface {
	IPrimitiveTypeReference
	Precision() (int, bool)
}

// Reference to geography or geometry type
type ISpatialTypeReference interface {
	IPrimitiveTypeReference
	SRID() (int, bool)
}

type IStructuredTypeReference interface {
	ITypeReference
	StructuredDefinition() IStructuredType
}

type IComplexTypeReference interface {
	IStructuredTypeReference
	ComplexDefinition() IComplexType
}

type IEntityTypeReference interface {
	IStructuredTypeReference
	EntityDefinition() IEntityType
}

type IEnumTypeReference interface {
	ITypeReference
	EnumDefinition() IEnumType
}

type ICollectionTypeReference interface {
	ITypeReference
	CollectionDefinition() ICollectionType
	ElementType() ITypeReference
}

type IEntityReferenceTypeReference interface {
	ITypeReference
	EntityReferenceDefinition() IEntityReferenceType
}

// Reference to type definition. All facets are applicable
type ITypeDefinitionReference interface {
	ITypeReference
	TypeDefinition() ITypeDefinition
	IsUnbounded() bool
	MaxLength() (int, bool)
	IsUnicode() (bool, bool)
	Precision() (int, bool)
	Scale() (int, bool)
	SRID() (int, bool)
}

type IPathTypeReference interface {
	ITypeReference
	PathDefinition() IPathType
}

type IUntypedTypeReference interface {
	ITypeReference
	UntypedDefinition() IUntypedType
}

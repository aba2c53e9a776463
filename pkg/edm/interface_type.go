/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Type
//
// Type definition. Describes the shape of values.
type IType interface {
	TypeKind() TypeKind
}

// Named type declared in some schema.
type ISchemaType interface {
	ISchemaElement
	IType
}

// Primitive type from core model, such as Edm.Int32 or Edm.String
type IPrimitiveType interface {
	ISchemaType
	PrimitiveKind() PrimitiveTypeKind
}

// # Structured type
//
// Structured type is entity or complex type.
type IStructuredType interface {
	IType

	// Returns base type or nil if type has no base type
	BaseType() IStructuredType

	IsAbstract() bool

	// Returns is type accepts dynamic properties
	IsOpen() bool

	// Returns properties declared by this type, in declaration order.
	// Inherited properties are not included.
	DeclaredProperties() []IProperty

	// Finds property by name.
	//
	// Declared properties are searched first, then base types.
	// Returns nil if property is not found.
	FindProperty(name string) IProperty
}

type IComplexType interface {
	ISchemaType
	IStructuredType
}

type IEntityType interface {
	ISchemaType
	IStructuredType

	// Returns key properties declared by this type.
	//
	// Returns empty if type inherits key from base type, see Key()
	DeclaredKey() []IStructuralProperty

	// Returns is entity is a media entity
	HasStream() bool
}

type IEnumType interface {
	ISchemaType
	UnderlyingType() IPrimitiveType
	Members() []IEnumMember
	IsFlags() bool
}

type IEnumMember interface {
	INamedElement
	DeclaringType() IEnumType
	Value() int64
}

// Named type which restricts some primitive type, e.g. «Weight» over Edm.Decimal
type ITypeDefinition interface {
	ISchemaType
	UnderlyingType() IPrimitiveType
}

type ICollectionType interface {
	IType
	ElementType() ITypeReference
}

type IEntityReferenceType interface {
	IType
	EntityType() IEntityType
}

// Core path type, such as Edm.PropertyPath
type IPathType interface {
	ISchemaType
	PathKind() PathTypeKind
}

// Core Edm.Untyped type
type IUntypedType interface {
	ISchemaType
}

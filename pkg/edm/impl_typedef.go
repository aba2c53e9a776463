/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Implements:
//   - ITypeDefinition
type TypeDefinition struct {
	schemaElement
	underlying IPrimitiveType
}

// Creates and returns new type definition.
//
// # Panics:
//   - if name is empty,
//   - if underlying type is nil.
func NewTypeDefinition(namespace, name string, underlying IPrimitiveType) *TypeDefinition {
	if name == "" {
		panic(ErrMissed("type definition name"))
	}
	if underlying == nil {
		panic(ErrMissed("type definition «%s» underlying type", FullName(namespace, name)))
	}
	return &TypeDefinition{
		schemaElement: makeSchemaElement(namespace, name, SchemaElementKind_TypeDefinition),
		underlying:    underlying,
	}
}

func (t *TypeDefinition) TypeKind() TypeKind { return TypeKind_TypeDefinition }

func (t *TypeDefinition) UnderlyingType() IPrimitiveType { return t.underlying }

// # Implements:
//   - ICollectionType
type CollectionType struct {
	elementType ITypeReference
}

// Creates and returns collection type.
//
// # Panics:
//   - if element type is nil.
func NewCollectionType(elementType ITypeReference) *CollectionType {
	if elementType == nil {
		panic(ErrMissed("collection element type"))
	}
	return &CollectionType{elementType: elementType}
}

func (t *CollectionType) ElementType() ITypeReference { return t.elementType }

func (t *CollectionType) TypeKind() TypeKind { return TypeKind_Collection }

func (t *CollectionType) String() string { return FullTypeName(t) }

// # Implements:
//   - IEntityReferenceType
type EntityReferenceType struct {
	entityType IEntityType
}

// Creates and returns entity reference type.
//
// # Panics:
//   - if entity type is nil.
func NewEntityReferenceType(entityType IEntityType) *EntityReferenceType {
	if entityType == nil {
		panic(ErrMissed("entity reference type entity type"))
	}
	return &EntityReferenceType{entityType: entityType}
}

func (t *EntityReferenceType) EntityType() IEntityType { return t.entityType }

func (t *EntityReferenceType) TypeKind() TypeKind { return TypeKind_EntityReference }

func (t *EntityReferenceType) String() string { return FullTypeName(t) }

/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import (
	"fmt"
	"slices"
)

// # Bad element
//
// Base for elements which stand in for unresolved or broken parts of the model.
// Bad elements return safe defaults from all methods: empty slices, nil references and kinds
// of elements they stand in for.
//
// # Implements:
//   - IBadElement
type BadElement struct {
	errors []*StructuralError
}

// # Panics:
//   - if errors is empty
func makeBadElement(errs []*StructuralError) BadElement {
	if len(errs) == 0 {
		panic(ErrMissed("bad element errors"))
	}
	return BadElement{errors: slices.Clone(errs)}
}

func (e BadElement) Errors() []*StructuralError { return e.errors }

// Returns «<first error code>:<trace string>» for element
func (e BadElement) badString(self any) string {
	return fmt.Sprintf("%s:%s", e.errors[0].Code().TrimString(), TraceString(self))
}

// Returns is element is bad element or ambiguous binding
func IsBad(e any) bool {
	_, ok := e.(IBadElement)
	return ok
}

// Name parts of bad schema element parsed from qualified name
type badNamed struct {
	namespace string
	name      string
}

func makeBadNamed(qualifiedName string) badNamed {
	ns, n, _ := TryGetNamespaceNameFromQualifiedName(qualifiedName)
	return badNamed{namespace: ns, name: n}
}

func (n badNamed) FullName() string { return FullName(n.namespace, n.name) }

func (n badNamed) Name() string { return n.name }

func (n badNamed) Namespace() string { return n.namespace }

// # Implements:
//   - IType
//   - IBadElement
type BadType struct {
	BadElement
}

// # Panics:
//   - if errors is empty
func NewBadType(errs []*StructuralError) *BadType {
	return &BadType{makeBadElement(errs)}
}

func (t *BadType) TypeKind() TypeKind { return TypeKind_None }

func (t *BadType) String() string { return t.badString(t) }

// # Implements:
//   - IPrimitiveType
//   - IBadElement
type BadPrimitiveType struct {
	BadElement
	badNamed
	kind PrimitiveTypeKind
}

// # Panics:
//   - if errors is empty
func NewBadPrimitiveType(qualifiedName string, kind PrimitiveTypeKind, errs []*StructuralError) *BadPrimitiveType {
	return &BadPrimitiveType{makeBadElement(errs), makeBadNamed(qualifiedName), kind}
}

func (t *BadPrimitiveType) PrimitiveKind() PrimitiveTypeKind { return t.kind }

func (t *BadPrimitiveType) SchemaElementKind() SchemaElementKind {
	return SchemaElementKind_TypeDefinition
}

func (t *BadPrimitiveType) TypeKind() TypeKind { return TypeKind_Primitive }

func (t *BadPrimitiveType) String() string { return t.badString(t) }

// # Implements:
//   - IStructuredType
type badStructuredType struct {
	BadElement
	badNamed
}

func (t *badStructuredType) BaseType() IStructuredType { return nil }

func (t *badStructuredType) DeclaredProperties() []IProperty { return []IProperty{} }

func (t *badStructuredType) FindProperty(string) IProperty { return nil }

func (t *badStructuredType) IsAbstract() bool { return false }

func (t *badStructuredType) IsOpen() bool { return false }

func (t *badStructuredType) SchemaElementKind() SchemaElementKind {
	return SchemaElementKind_TypeDefinition
}

// # Implements:
//   - IComplexType
//   - IBadElement
type BadComplexType struct {
	badStructuredType
}

// # Panics:
//   - if errors is empty
func NewBadComplexType(qualifiedName string, errs []*StructuralError) *BadComplexType {
	return &BadComplexType{badStructuredType{makeBadElement(errs), makeBadNamed(qualifiedName)}}
}

func (t *BadComplexType) TypeKind() TypeKind { return TypeKind_Complex }

func (t *BadComplexType) String() string { return t.badString(t) }

// # Implements:
//   - IEntityType
//   - IBadElement
type BadEntityType struct {
	badStructuredType
}

// # Panics:
//   - if errors is empty
func NewBadEntityType(qualifiedName string, errs []*StructuralError) *BadEntityType {
	return &BadEntityType{badStructuredType{makeBadElement(errs), makeBadNamed(qualifiedName)}}
}

func (t *BadEntityType) DeclaredKey() []IStructuralProperty { return []IStructuralProperty{} }

func (t *BadEntityType) HasStream() bool { return false }

func (t *BadEntityType) TypeKind() TypeKind { return TypeKind_Entity }

func (t *BadEntityType) String() string { return t.badString(t) }

// Complex type which references itself during resolution
type CyclicComplexType struct {
	BadComplexType
}

func NewCyclicComplexType(qualifiedName string, l Location) *CyclicComplexType {
	err := NewStructuralError(l, ErrorCode_BadCyclicComplex, "complex type «%s» has cyclic base type", qualifiedName)
	return &CyclicComplexType{*NewBadComplexType(qualifiedName, []*StructuralError{err})}
}

// Entity type which references itself during resolution
type CyclicEntityType struct {
	BadEntityType
}

func NewCyclicEntityType(qualifiedName string, l Location) *CyclicEntityType {
	err := NewStructuralError(l, ErrorCode_BadCyclicEntity, "entity type «%s» has cyclic base type", qualifiedName)
	return &CyclicEntityType{*NewBadEntityType(qualifiedName, []*StructuralError{err})}
}

// # Implements:
//   - IEnumType
//   - IBadElement
type BadEnumType struct {
	BadElement
	badNamed
}

// # Panics:
//   - if errors is empty
func NewBadEnumType(qualifiedName string, errs []*StructuralError) *BadEnumType {
	return &BadEnumType{makeBadElement(errs), makeBadNamed(qualifiedName)}
}

func (t *BadEnumType) IsFlags() bool { return false }

func (t *BadEnumType) Members() []IEnumMember { return []IEnumMember{} }

func (t *BadEnumType) SchemaElementKind() SchemaElementKind {
	return SchemaElementKind_TypeDefinition
}

func (t *BadEnumType) TypeKind() TypeKind { return TypeKind_Enum }

func (t *BadEnumType) UnderlyingType() IPrimitiveType {
	return Core().GetPrimitiveType(PrimitiveTypeKind_Int32)
}

func (t *BadEnumType) String() string { return t.badString(t) }

// # Implements:
//   - IEnumMember
//   - IBadElement
type BadEnumMember struct {
	BadElement
	name          string
	declaringType IEnumType
}

// # Panics:
//   - if errors is empty
func NewBadEnumMember(declaringType IEnumType, name string, errs []*StructuralError) *BadEnumMember {
	return &BadEnumMember{makeBadElement(errs), name, declaringType}
}

func (m *BadEnumMember) DeclaringType() IEnumType { return m.declaringType }

func (m *BadEnumMember) Name() string { return m.name }

func (m *BadEnumMember) Value() int64 { return 0 }

func (m *BadEnumMember) String() string { return m.badString(m) }

// # Implements:
//   - ITypeDefinition
//   - IBadElement
type BadTypeDefinition struct {
	BadElement
	badNamed
	underlying *BadPrimitiveType
}

// # Panics:
//   - if errors is empty
func NewBadTypeDefinition(qualifiedName string, errs []*StructuralError) *BadTypeDefinition {
	return &BadTypeDefinition{
		makeBadElement(errs),
		makeBadNamed(qualifiedName),
		NewBadPrimitiveType(qualifiedName, PrimitiveTypeKind_None, errs),
	}
}

func (t *BadTypeDefinition) SchemaElementKind() SchemaElementKind {
	return SchemaElementKind_TypeDefinition
}

func (t *BadTypeDefinition) TypeKind() TypeKind { return TypeKind_TypeDefinition }

func (t *BadTypeDefinition) UnderlyingType() IPrimitiveType { return t.underlying }

func (t *BadTypeDefinition) String() string { return t.badString(t) }

// # Implements:
//   - ICollectionType
//   - IBadElement
type BadCollectionType struct {
	BadElement
	elementType *BadTypeReference
}

// # Panics:
//   - if errors is empty
func NewBadCollectionType(errs []*StructuralError) *BadCollectionType {
	return &BadCollectionType{makeBadElement(errs), NewBadTypeReference(errs, true)}
}

func (t *BadCollectionType) ElementType() ITypeReference { return t.elementType }

func (t *BadCollectionType) TypeKind() TypeKind { return TypeKind_Collection }

func (t *BadCollectionType) String() string { return t.badString(t) }

// # Implements:
//   - IEntityReferenceType
//   - IBadElement
type BadEntityReferenceType struct {
	BadElement
	entityType *BadEntityType
}

// # Panics:
//   - if errors is empty
func NewBadEntityReferenceType(errs []*StructuralError) *BadEntityReferenceType {
	return &BadEntityReferenceType{makeBadElement(errs), NewBadEntityType("", errs)}
}

func (t *BadEntityReferenceType) EntityType() IEntityType { return t.entityType }

func (t *BadEntityReferenceType) TypeKind() TypeKind { return TypeKind_EntityReference }

func (t *BadEntityReferenceType) String() string { return t.badString(t) }

// # Implements:
//   - IPathType
//   - IBadElement
type BadPathType struct {
	BadElement
	badNamed
}

// # Panics:
//   - if errors is empty
func NewBadPathType(qualifiedName string, errs []*StructuralError) *BadPathType {
	return &BadPathType{makeBadElement(errs), makeBadNamed(qualifiedName)}
}

func (t *BadPathType) PathKind() PathTypeKind { return PathTypeKind_None }

func (t *BadPathType) SchemaElementKind() SchemaElementKind {
	return SchemaElementKind_TypeDefinition
}

func (t *BadPathType) TypeKind() TypeKind { return TypeKind_Path }

func (t *BadPathType) String() string { return t.badString(t) }

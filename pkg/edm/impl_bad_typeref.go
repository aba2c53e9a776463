/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// Reference to bad type.
//
// # Implements:
//   - ITypeReference
//   - IBadElement
type BadTypeReference struct {
	typeReference
	BadElement
}

// Creates reference to new BadType with specified errors.
//
// # Panics:
//   - if errors is empty
func NewBadTypeReference(errs []*StructuralError, nullable bool) *BadTypeReference {
	return &BadTypeReference{makeTypeReference(NewBadType(errs), nullable), makeBadElement(errs)}
}

func (r *BadTypeReference) String() string { return r.badString(r) }

// # Implements:
//   - IPrimitiveTypeReference
//   - IBadElement
type BadPrimitiveTypeReference struct {
	PrimitiveTypeReference
	BadElement
}

// Creates reference to new BadPrimitiveType.
//
// # Panics:
//   - if errors is empty
func NewBadPrimitiveTypeReference(qualifiedName string, kind PrimitiveTypeKind, nullable bool, errs []*StructuralError) *BadPrimitiveTypeReference {
	return &BadPrimitiveTypeReference{
		PrimitiveTypeReference{makeTypeReference(NewBadPrimitiveType(qualifiedName, kind, errs), nullable)},
		makeBadElement(errs),
	}
}

func (r *BadPrimitiveTypeReference) String() string { return r.badString(r) }

// # Implements:
//   - IComplexTypeReference
//   - IBadElement
type BadComplexTypeReference struct {
	ComplexTypeReference
	BadElement
}

// Creates reference to new BadComplexType.
//
// # Panics:
//   - if errors is empty
func NewBadComplexTypeReference(qualifiedName string, nullable bool, errs []*StructuralError) *BadComplexTypeReference {
	return &BadComplexTypeReference{
		ComplexTypeReference{makeTypeReference(NewBadComplexType(qualifiedName, errs), nullable)},
		makeBadElement(errs),
	}
}

func (r *BadComplexTypeReference) String() string { return r.badString(r) }

// # Implements:
//   - IEntityTypeReference
//   - IBadElement
type BadEntityTypeReference struct {
	EntityTypeReference
	BadElement
}

// Creates reference to new BadEntityType.
//
// # Panics:
//   - if errors is empty
func NewBadEntityTypeReference(qualifiedName string, nullable bool, errs []*StructuralError) *BadEntityTypeReference {
	return &BadEntityTypeReference{
		EntityTypeReference{makeTypeReference(NewBadEntityType(qualifiedName, errs), nullable)},
		makeBadElement(errs),
	}
}

func (r *BadEntityTypeReference) String() string { return r.badString(r) }

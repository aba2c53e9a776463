/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "fmt"

// Returns full name of type.
//
// Named types return qualified name, collections return «Collection(<element type>)»,
// entity references return «Ref(<entity type>)».
func FullTypeName(t IType) string {
	switch t := t.(type) {
	case nil:
		return ""
	case ISchemaElement:
		return t.FullName()
	case ICollectionType:
		if et := t.ElementType(); et != nil {
			return "Collection(" + FullTypeName(et.Definition()) + ")"
		}
		return "Collection()"
	case IEntityReferenceType:
		return "Ref(" + FullTypeName(t.EntityType()) + ")"
	}
	return ""
}

// Returns is types are equivalent.
//
// Types are equivalent if they are the same type, or primitive types of the same kind and name,
// or collections of equivalent elements with the same nullability,
// or entity references to equivalent entity types.
func TypeEquivalent(a, b IType) bool {
	if (a == nil) || (b == nil) {
		return a == b
	}
	if a == b {
		return true
	}
	if a.TypeKind() != b.TypeKind() {
		return false
	}
	switch a.TypeKind() {
	case TypeKind_Primitive:
		pa, okA := a.(IPrimitiveType)
		pb, okB := b.(IPrimitiveType)
		return okA && okB && (pa.PrimitiveKind() == pb.PrimitiveKind()) && (pa.FullName() == pb.FullName())
	case TypeKind_Collection:
		ca, okA := a.(ICollectionType)
		cb, okB := b.(ICollectionType)
		if !okA || !okB {
			return false
		}
		ea, eb := ca.ElementType(), cb.ElementType()
		if (ea == nil) || (eb == nil) {
			return false
		}
		return (ea.IsNullable() == eb.IsNullable()) && TypeEquivalent(ea.Definition(), eb.Definition())
	case TypeKind_EntityReference:
		ra, okA := a.(IEntityReferenceType)
		rb, okB := b.(IEntityReferenceType)
		return okA && okB && TypeEquivalent(ra.EntityType(), rb.EntityType())
	}
	return false
}

// Returns string to identify element in diagnostic messages.
//
// Navigation sources are traced by path, properties by declaring type and name,
// schema elements by qualified name, other types by full type name and other named elements by name.
func TraceString(e any) string {
	switch e := e.(type) {
	case nil:
		return ""
	case INavigationSource:
		return e.Path().FullPath()
	case IProperty:
		return TraceString(e.DeclaringType()) + PathSeparator + e.Name()
	case ISchemaElement:
		return e.FullName()
	case IType:
		return FullTypeName(e)
	case ITypeReference:
		return FullTypeName(e.Definition())
	case INamedElement:
		return e.Name()
	}
	return fmt.Sprintf("%T", e)
}

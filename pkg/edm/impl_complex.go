/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Implements:
//   - IComplexType
type ComplexType struct {
	schemaElement
	structuredType
}

// Creates and returns new complex type.
//
// # Panics:
//   - if name is empty,
//   - if base type is not complex type.
func NewComplexType(namespace, name string, opts ...StructuredTypeOption) *ComplexType {
	if name == "" {
		panic(ErrMissed("complex type name"))
	}
	o := makeStructuredTypeOptions(opts...)
	if o.base != nil {
		if o.base.TypeKind() != TypeKind_Complex {
			panic(ErrInvalid("base type %s of complex type «%s» should be complex type", TraceString(o.base), FullName(namespace, name)))
		}
	}
	t := &ComplexType{
		schemaElement: makeSchemaElement(namespace, name, SchemaElementKind_TypeDefinition),
	}
	t.structuredType.init(t, o.base, o.abstract, o.open)
	return t
}

func (t *ComplexType) TypeKind() TypeKind { return TypeKind_Complex }

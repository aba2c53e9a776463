/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Implements:
//   - IEnumType
type EnumType struct {
	schemaElement
	underlying IPrimitiveType
	members    []IEnumMember
	flags      bool
}

// Creates and returns new enumeration type.
//
// If underlying type is nil, then Edm.Int32 is used.
//
// # Panics:
//   - if name is empty,
//   - if underlying type is not integral.
func NewEnumType(namespace, name string, underlying IPrimitiveType, isFlags bool) *EnumType {
	if name == "" {
		panic(ErrMissed("enum type name"))
	}
	if underlying == nil {
		underlying = Core().GetPrimitiveType(PrimitiveTypeKind_Int32)
	}
	if !underlying.PrimitiveKind().IsIntegral() {
		panic(ErrInvalid("enum «%s» underlying type «%s» should be integral", FullName(namespace, name), underlying.FullName()))
	}
	return &EnumType{
		schemaElement: makeSchemaElement(namespace, name, SchemaElementKind_TypeDefinition),
		underlying:    underlying,
		flags:         isFlags,
	}
}

func (t *EnumType) IsFlags() bool { return t.flags }

func (t *EnumType) Members() []IEnumMember { return t.members }

func (t *EnumType) TypeKind() TypeKind { return TypeKind_Enum }

func (t *EnumType) UnderlyingType() IPrimitiveType { return t.underlying }

// Creates and adds new member to enumeration.
//
// # Panics:
//   - if name is empty.
func (t *EnumType) AddMember(name string, value int64) *EnumMember {
	if name == "" {
		panic(ErrMissed("enum «%s» member name", t.FullName()))
	}
	m := &EnumMember{name: name, declaringType: t, value: value}
	t.members = append(t.members, m)
	return m
}

// # Implements:
//   - IEnumMember
type EnumMember struct {
	name          string
	declaringType IEnumType
	value         int64
}

func (m *EnumMember) DeclaringType() IEnumType { return m.declaringType }

func (m *EnumMember) Name() string { return m.name }

func (m *EnumMember) Value() int64 { return m.value }

func (m *EnumMember) String() string {
	return TraceString(m.declaringType) + PathSeparator + m.name
}

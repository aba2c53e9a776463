/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import (
	"strconv"
	"strings"
)

// Types kinds enumeration
type TypeKind uint8

//go:generate stringer -type=TypeKind -output=type-kind_string.go

const (
	// Returned by bad and ambiguous types
	TypeKind_None TypeKind = iota

	TypeKind_Primitive
	TypeKind_Entity
	TypeKind_Complex
	TypeKind_Collection
	TypeKind_EntityReference
	TypeKind_Enum
	TypeKind_TypeDefinition
	TypeKind_Untyped
	TypeKind_Path

	TypeKind_count
)

func (k TypeKind) MarshalText() ([]byte, error) {
	var s string
	if k < TypeKind_count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders an TypeKind in human-readable form, without `TypeKind_` prefix,
// suitable for debugging or error messages
func (k TypeKind) TrimString() string {
	const pref = "TypeKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Returns is kind describes a structured type (entity or complex)
func (k TypeKind) IsStructured() bool {
	return (k == TypeKind_Entity) || (k == TypeKind_Complex)
}

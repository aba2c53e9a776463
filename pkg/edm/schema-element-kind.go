/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "strings"

// Schema elements kinds enumeration
type SchemaElementKind uint8

//go:generate stringer -type=SchemaElementKind -output=schema-element-kind_string.go

const (
	SchemaElementKind_None SchemaElementKind = iota

	// Schema types: primitive, entity, complex, enum, type definitions and paths
	SchemaElementKind_TypeDefinition

	SchemaElementKind_Term
	SchemaElementKind_Action
	SchemaElementKind_EntityContainer
	SchemaElementKind_Function

	SchemaElementKind_count
)

// Renders an SchemaElementKind in human-readable form, without `SchemaElementKind_` prefix,
// suitable for debugging or error messages
func (k SchemaElementKind) TrimString() string {
	const pref = "SchemaElementKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Returns is kind describes an operation (action or function)
func (k SchemaElementKind) IsOperation() bool {
	return (k == SchemaElementKind_Action) || (k == SchemaElementKind_Function)
}

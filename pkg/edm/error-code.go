/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "strings"

// Structural error codes enumeration
type ErrorCode uint8

//go:generate stringer -type=ErrorCode -output=error-code_string.go

const (
	ErrorCode_None ErrorCode = iota

	// Name resolved to two or more elements
	ErrorCode_BadAmbiguousElementBinding

	ErrorCode_BadUnresolvedType
	ErrorCode_BadUnresolvedPrimitiveType
	ErrorCode_BadUnresolvedComplexType
	ErrorCode_BadUnresolvedEntityType
	ErrorCode_BadUnresolvedEnumType
	ErrorCode_BadUnresolvedEnumMember
	ErrorCode_BadUnresolvedTypeDefinition
	ErrorCode_BadUnresolvedPathType
	ErrorCode_BadUnresolvedProperty
	ErrorCode_BadUnresolvedNavigationProperty
	ErrorCode_BadUnresolvedNavigationPropertyPath
	ErrorCode_BadUnresolvedEntitySet
	ErrorCode_BadUnresolvedSingleton
	ErrorCode_BadUnresolvedEntityContainer
	ErrorCode_BadUnresolvedOperation
	ErrorCode_BadUnresolvedParameter
	ErrorCode_BadUnresolvedTerm
	ErrorCode_BadUnresolvedLabeledElement

	// Type or term resolution re-entered itself
	ErrorCode_BadCyclicComplex
	ErrorCode_BadCyclicEntity
	ErrorCode_BadCyclicTerm

	ErrorCode_count
)

// Renders an ErrorCode in human-readable form, without `ErrorCode_` prefix,
// suitable for debugging or error messages
func (c ErrorCode) TrimString() string {
	const pref = "ErrorCode_"
	return strings.TrimPrefix(c.String(), pref)
}

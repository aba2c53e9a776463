/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "strings"

// Path types kinds enumeration
type PathTypeKind uint8

//go:generate stringer -type=PathTypeKind -output=path-type-kind_string.go

const (
	PathTypeKind_None PathTypeKind = iota
	PathTypeKind_AnnotationPath
	PathTypeKind_PropertyPath
	PathTypeKind_NavigationPropertyPath

	PathTypeKind_count
)

// Renders an PathTypeKind in human-readable form, without `PathTypeKind_` prefix.
//
// Trimmed string is also the local name of the core path type, e.g. «PropertyPath» for «Edm.PropertyPath».
func (k PathTypeKind) TrimString() string {
	const pref = "PathTypeKind_"
	return strings.TrimPrefix(k.String(), pref)
}

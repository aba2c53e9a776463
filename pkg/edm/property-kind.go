/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "strings"

// Properties kinds enumeration
type PropertyKind uint8

//go:generate stringer -type=PropertyKind -output=property-kind_string.go

const (
	PropertyKind_None PropertyKind = iota
	PropertyKind_Structural
	PropertyKind_Navigation

	PropertyKind_count
)

// Renders an PropertyKind in human-readable form, without `PropertyKind_` prefix,
// suitable for debugging or error messages
func (k PropertyKind) TrimString() string {
	const pref = "PropertyKind_"
	return strings.TrimPrefix(k.String(), pref)
}

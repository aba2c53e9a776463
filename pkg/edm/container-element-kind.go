/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "strings"

// Entity container elements kinds enumeration
type ContainerElementKind uint8

//go:generate stringer -type=ContainerElementKind -output=container-element-kind_string.go

const (
	ContainerElementKind_None ContainerElementKind = iota

	ContainerElementKind_EntitySet
	ContainerElementKind_ActionImport
	ContainerElementKind_FunctionImport
	ContainerElementKind_Singleton

	ContainerElementKind_count
)

// Renders an ContainerElementKind in human-readable form, without `ContainerElementKind_` prefix,
// suitable for debugging or error messages
func (k ContainerElementKind) TrimString() string {
	const pref = "ContainerElementKind_"
	return strings.TrimPrefix(k.String(), pref)
}

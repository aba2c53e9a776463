/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "strings"

// Navigation sources kinds enumeration
type NavigationSourceKind uint8

//go:generate stringer -type=NavigationSourceKind -output=navigation-source-kind_string.go

const (
	NavigationSourceKind_None NavigationSourceKind = iota

	NavigationSourceKind_EntitySet
	NavigationSourceKind_Singleton
	NavigationSourceKind_ContainedEntitySet

	// Navigation target for which no binding is configured
	NavigationSourceKind_UnknownEntitySet

	NavigationSourceKind_count
)

// Renders an NavigationSourceKind in human-readable form, without `NavigationSourceKind_` prefix,
// suitable for debugging or error messages
func (k NavigationSourceKind) TrimString() string {
	const pref = "NavigationSourceKind_"
	return strings.TrimPrefix(k.String(), pref)
}

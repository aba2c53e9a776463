/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "strings"

// Navigation target multiplicity
type Multiplicity uint8

//go:generate stringer -type=Multiplicity -output=multiplicity_string.go

const (
	Multiplicity_Unknown Multiplicity = iota
	Multiplicity_ZeroOrOne
	Multiplicity_One
	Multiplicity_Many

	Multiplicity_count
)

// Renders an Multiplicity in human-readable form, without `Multiplicity_` prefix,
// suitable for debugging or error messages
func (m Multiplicity) TrimString() string {
	const pref = "Multiplicity_"
	return strings.TrimPrefix(m.String(), pref)
}

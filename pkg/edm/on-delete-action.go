/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "strings"

// Action to perform on navigation target when the source is deleted
type OnDeleteAction uint8

//go:generate stringer -type=OnDeleteAction -output=on-delete-action_string.go

const (
	OnDeleteAction_None OnDeleteAction = iota
	OnDeleteAction_Cascade

	OnDeleteAction_count
)

// Renders an OnDeleteAction in human-readable form, without `OnDeleteAction_` prefix,
// suitable for debugging or error messages
func (a OnDeleteAction) TrimString() string {
	const pref = "OnDeleteAction_"
	return strings.TrimPrefix(a.String(), pref)
}

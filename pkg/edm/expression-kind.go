/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "strings"

// Expressions kinds enumeration
type ExpressionKind uint8

//go:generate stringer -type=ExpressionKind -output=expression-kind_string.go

const (
	ExpressionKind_None ExpressionKind = iota
	ExpressionKind_StringConstant
	ExpressionKind_Path
	ExpressionKind_Labeled

	ExpressionKind_count
)

// Renders an ExpressionKind in human-readable form, without `ExpressionKind_` prefix,
// suitable for debugging or error messages
func (k ExpressionKind) TrimString() string {
	const pref = "ExpressionKind_"
	return strings.TrimPrefix(k.String(), pref)
}

/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package main

import "errors"

var (
	ErrInvalidOutputMode = errors.New("invalid output mode (expected plain or color)")
	ErrInvalidKind       = errors.New("invalid kind (expected primitive, path or all)")
	ErrNameNotFound      = errors.New("name not found")
	ErrNameAmbiguous     = errors.New("name is ambiguous")
	ErrNotQualifiedName  = errors.New("name is not qualified")
)

const (
	errInvalidOutputMode = "«%s»: %w"
	errInvalidKind       = "«%s»: %w"
	errName              = "«%s»: %w"
)

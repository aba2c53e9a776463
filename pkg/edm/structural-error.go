/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "fmt"

// # StructuralError
//
// Structural error describes why some part of the model is broken.
//
// Structural errors are not returned or raised: they are carried by bad and ambiguous
// elements, see IBadElement.
type StructuralError struct {
	location Location
	code     ErrorCode
	message  string
}

// Creates and returns new structural error.
//
// Location can be nil, then error has unknown location.
func NewStructuralError(l Location, code ErrorCode, msg string, args ...any) *StructuralError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &StructuralError{location: l, code: code, message: msg}
}

func (e StructuralError) Code() ErrorCode { return e.code }

func (e StructuralError) Location() Location { return e.location }

func (e StructuralError) Message() string { return e.message }

func (e StructuralError) Error() string {
	if e.location == nil {
		return fmt.Sprintf("%s: %s", e.code.TrimString(), e.message)
	}
	return fmt.Sprintf("%s: %s %v", e.code.TrimString(), e.message, e.location)
}

// Location of element which is the cause of structural error.
type Location interface {
	fmt.Stringer
}

// Location of element inside the in-memory model.
type ObjectLocation struct {
	Object any
}

func (l ObjectLocation) String() string {
	return fmt.Sprintf("(%s)", TraceString(l.Object))
}

// Location of element inside some source file, used by model readers.
type FileLocation struct {
	Source       string
	Line, Column int
}

func (l FileLocation) String() string {
	return fmt.Sprintf("(%s:%d:%d)", l.Source, l.Line, l.Column)
}

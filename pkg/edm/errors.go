/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import (
	"errors"
	"fmt"
)

// Errors in this file are used to panic on contract violations by model builders,
// such as nil required arguments or property added to wrong declaring type.
//
// Resolution failures are never reported by panics, see StructuralError and IBadElement.

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrInvalidOperationError = errors.New("invalid operation")

func ErrInvalidOperation(msg string, args ...any) error {
	return EnrichError(ErrInvalidOperationError, msg, args...)
}

var ErrUnsupportedError = errors.ErrUnsupported

func ErrUnsupported(msg string, args ...any) error {
	return EnrichError(ErrUnsupportedError, msg, args...)
}

func ErrUnknownContainerElementKind(k ContainerElementKind) error {
	return ErrInvalidOperation("unknown container element kind «%v»", k)
}

func ErrUnknownSchemaElementKind(k SchemaElementKind) error {
	return ErrInvalidOperation("unknown schema element kind «%v»", k)
}

func ErrWrongDeclaringType(p IProperty, t IStructuredType) error {
	return ErrInvalidOperation("property «%s» is declared by another type than «%s»", p.Name(), FullTypeName(t))
}

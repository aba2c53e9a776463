/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "github.com/untillpro/goutils/logger"

// Implemented by ambiguous bindings which accumulate colliding elements
type bindingAccumulator[T any] interface {
	AddBinding(T)
}

// Implemented by ambiguous bindings to list colliding elements
type bindingLister[T any] interface {
	Bindings() []T
}

// Adds element to dictionary by name.
//
// If name is new, then element is inserted. If dictionary already contains the same element, then nothing changes.
// If dictionary contains ambiguous binding, then element is added to binding.
// Otherwise dictionary slot is replaced with ambiguous binding of existing and new elements.
func registerElement[T any](element T, name string, dict map[string]T, ambiguity func(existing, added T) T) {
	existing, ok := dict[name]
	if !ok {
		dict[name] = element
		return
	}
	if any(existing) == any(element) {
		return
	}
	if acc, ok := any(existing).(bindingAccumulator[T]); ok {
		acc.AddBinding(element)
		return
	}
	dict[name] = ambiguity(existing, element)
	if logger.IsVerbose() {
		logger.Verbose("name «" + name + "» is ambiguous: " + TraceString(existing) + ", " + TraceString(element))
	}
}

/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

// Package edm is an in-memory Entity Data Model: schema types, type references with facets,
// properties, navigation sources, containers, operations, terms and models.
//
// Model lookups are total: missed or ambiguous names never panic. Names which could not be
// resolved cleanly are represented by bad elements (see IBadElement) and ambiguous bindings
// (see AmbiguousBinding), which satisfy the same interfaces as real elements.
//
// Models are built by a single goroutine and then may be read by many goroutines.
package edm

// # Named element
//
// Any element with a name.
type INamedElement interface {
	// Returns element name.
	//
	// Name is never changed after element is created.
	Name() string
}

// # Schema element
//
// Named and namespaced top-level element: type, term, operation or entity container.
type ISchemaElement interface {
	INamedElement

	// Returns element namespace. Empty string if element has no namespace.
	Namespace() string

	// Returns element qualified name, <namespace>.<name>
	FullName() string

	// Returns schema element kind
	SchemaElementKind() SchemaElementKind
}

// # Bad element
//
// Element which stands in for a part of the model which could not be resolved.
type IBadElement interface {
	// Returns errors which describe why element is bad.
	//
	// Result is never empty.
	Errors() []*StructuralError
}

// Element which can be the target of vocabulary annotations.
type IVocabularyAnnotatable interface {
	INamedElement
}

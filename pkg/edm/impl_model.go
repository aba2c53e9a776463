/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import (
	"slices"
	"strings"
)

// # Model
//
// Model is built by single goroutine, then can be shared between goroutines for reading.
//
// # Implements:
//   - IModel
type Model struct {
	modelBase
	aliases map[string]string
}

// Model construction option
type ModelOption func(*modelOptions)

type modelOptions struct {
	vocabularies  bool
	references    []IModel
	boundOpsCache int
}

// Adds built-in vocabulary models to referenced models, see CoreVocabularyModel
func WithDefaultVocabularies() ModelOption {
	return func(o *modelOptions) { o.vocabularies = true }
}

// Adds models to referenced models
func WithReferencedModels(mm ...IModel) ModelOption {
	return func(o *modelOptions) { o.references = append(o.references, mm...) }
}

// Sets size of bound operations cache. Default is DefaultBoundOperationsCacheSize
func WithBoundOperationsCacheSize(size int) ModelOption {
	return func(o *modelOptions) { o.boundOpsCache = size }
}

// Creates and returns new model.
//
// Core model is always the first referenced model.
//
// # Panics:
//   - if some referenced model is nil,
//   - if bound operations cache size is not positive.
func NewModel(opts ...ModelOption) *Model {
	o := modelOptions{boundOpsCache: DefaultBoundOperationsCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	refs := []IModel{Core()}
	if o.vocabularies {
		refs = append(refs, CoreVocabularyModel())
	}
	for _, r := range o.references {
		if r == nil {
			panic(ErrMissed("referenced model"))
		}
		refs = append(refs, r)
	}

	m := &Model{aliases: make(map[string]string)}
	m.modelBase.init(o.boundOpsCache, refs...)
	return m
}

// Adds element to model.
//
// Element is registered by qualified name and by alias qualified name, if alias for namespace is set.
// Entity containers are also registered by name.
// Elements with colliding names are replaced with ambiguous bindings.
//
// # Panics:
//   - if element is nil,
//   - if element kind is None or unknown.
func (m *Model) AddElement(e ISchemaElement) {
	if e == nil {
		panic(ErrMissed("model element"))
	}
	m.appendElement(e)
	m.registerElement(e, m.elementNames(e)...)
}

// Adds elements to model, see AddElement
func (m *Model) AddElements(ee ...ISchemaElement) {
	for _, e := range ee {
		m.AddElement(e)
	}
}

// Adds referenced model.
//
// # Panics:
//   - if model is nil
func (m *Model) AddReferencedModel(r IModel) {
	if r == nil {
		panic(ErrMissed("referenced model"))
	}
	m.references = append(m.references, r)
}

// Appends vocabulary annotation.
//
// # Panics:
//   - if annotation is nil
func (m *Model) AddVocabularyAnnotation(a IVocabularyAnnotation) {
	if a == nil {
		panic(ErrMissed("vocabulary annotation"))
	}
	m.annotations = append(m.annotations, a)
}

// Returns alias for namespace or empty string if alias is not set
func (m *Model) NamespaceAlias(namespace string) string { return m.aliases[namespace] }

// Sets alias for namespace. Elements of namespace, added before and after this call,
// are available by alias qualified names.
//
// # Panics:
//   - if alias is empty or contains dot.
func (m *Model) SetNamespaceAlias(namespace, alias string) {
	if alias == "" {
		panic(ErrMissed("namespace «%s» alias", namespace))
	}
	if strings.Contains(alias, QualifiedNameSeparator) {
		panic(ErrInvalid("namespace «%s» alias «%s» should not contain «%s»", namespace, alias, QualifiedNameSeparator))
	}
	m.aliases[namespace] = alias
	for _, e := range m.elements {
		if e.Namespace() == namespace {
			m.registerElement(e, m.elementNames(e)...)
		}
	}
}

// Sets vocabulary annotation. Annotation with the same target and term is removed before.
//
// # Panics:
//   - if annotation is nil
func (m *Model) SetVocabularyAnnotation(a IVocabularyAnnotation) {
	if a == nil {
		panic(ErrMissed("vocabulary annotation"))
	}
	term := a.Term().FullName()
	m.annotations = slices.DeleteFunc(m.annotations, func(x IVocabularyAnnotation) bool {
		return (x.Target() == a.Target()) && (x.Term().FullName() == term)
	})
	m.annotations = append(m.annotations, a)
}

// Returns names to register element: qualified name, alias qualified name and, for containers, name
func (m *Model) elementNames(e ISchemaElement) []string {
	names := []string{e.FullName()}
	if alias, ok := m.aliases[e.Namespace()]; ok {
		names = append(names, FullName(alias, e.Name()))
	}
	if (e.SchemaElementKind() == SchemaElementKind_EntityContainer) && (e.Namespace() != "") {
		names = append(names, e.Name())
	}
	return names
}

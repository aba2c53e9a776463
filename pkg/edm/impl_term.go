/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Implements:
//   - ITerm
type Term struct {
	schemaElement
	typ          ITypeReference
	appliesTo    string
	defaultValue string
}

// Creates and returns new term.
//
// # Panics:
//   - if name is empty,
//   - if type is nil.
func NewTerm(namespace, name string, typ ITypeReference, appliesTo, defaultValue string) *Term {
	if name == "" {
		panic(ErrMissed("term name"))
	}
	if typ == nil {
		panic(ErrMissed("term «%s» type", FullName(namespace, name)))
	}
	return &Term{
		schemaElement: makeSchemaElement(namespace, name, SchemaElementKind_Term),
		typ:           typ,
		appliesTo:     appliesTo,
		defaultValue:  defaultValue,
	}
}

func (t *Term) AppliesTo() string { return t.appliesTo }

func (t *Term) DefaultValue() string { return t.defaultValue }

func (t *Term) Type() ITypeReference { return t.typ }

// # Implements:
//   - IVocabularyAnnotation
type VocabularyAnnotation struct {
	target    IVocabularyAnnotatable
	term      ITerm
	qualifier string
	value     IExpression
}

// Creates and returns new vocabulary annotation.
//
// # Panics:
//   - if target, term or value is nil.
func NewVocabularyAnnotation(target IVocabularyAnnotatable, term ITerm, qualifier string, value IExpression) *VocabularyAnnotation {
	if target == nil {
		panic(ErrMissed("annotation target"))
	}
	if term == nil {
		panic(ErrMissed("annotation term"))
	}
	if value == nil {
		panic(ErrMissed("annotation «%s» value", term.FullName()))
	}
	return &VocabularyAnnotation{target: target, term: term, qualifier: qualifier, value: value}
}

func (a *VocabularyAnnotation) Qualifier() string { return a.qualifier }

func (a *VocabularyAnnotation) Target() IVocabularyAnnotatable { return a.target }

func (a *VocabularyAnnotation) Term() ITerm { return a.term }

func (a *VocabularyAnnotation) Value() IExpression { return a.value }

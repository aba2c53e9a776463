/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Term
//
// Vocabulary term, the name of annotations.
type ITerm interface {
	ISchemaElement
	Type() ITypeReference

	// Returns space separated list of element kinds the term can be applied to
	AppliesTo() string

	DefaultValue() string
}

// # Vocabulary annotation
//
// Applies term to target element.
type IVocabularyAnnotation interface {
	Target() IVocabularyAnnotatable
	Term() ITerm
	Qualifier() string
	Value() IExpression
}

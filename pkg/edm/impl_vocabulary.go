/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "sync"

// Names of core vocabulary elements
const (
	CoreVocabulary_Tag             = "Tag"
	CoreVocabulary_Description     = "Description"
	CoreVocabulary_LongDescription = "LongDescription"
	CoreVocabulary_Computed        = "Computed"
	CoreVocabulary_Immutable       = "Immutable"
)

var (
	coreVocabularyOnce  sync.Once
	coreVocabularyModel *Model
)

// Returns built-in core vocabulary model, namespace «Org.OData.Core.V1», alias «Core».
//
// Vocabulary model is created once and should not be changed.
func CoreVocabularyModel() *Model {
	coreVocabularyOnce.Do(func() { coreVocabularyModel = newCoreVocabularyModel() })
	return coreVocabularyModel
}

func newCoreVocabularyModel() *Model {
	const (
		ns       = CoreVocabularyNamespace
		property = "Property"
	)

	m := NewModel()
	m.SetNamespaceAlias(ns, CoreVocabularyAlias)

	tag := NewTypeDefinition(ns, CoreVocabulary_Tag, Core().GetPrimitiveType(PrimitiveTypeKind_Boolean))
	tagRef := NewTypeDefinitionReference(tag, false)

	m.AddElements(
		tag,
		NewTerm(ns, CoreVocabulary_Description, Core().GetString(false), "", ""),
		NewTerm(ns, CoreVocabulary_LongDescription, Core().GetString(false), "", ""),
		NewTerm(ns, CoreVocabulary_Computed, tagRef, property, "true"),
		NewTerm(ns, CoreVocabulary_Immutable, tagRef, property, "true"),
	)

	return m
}

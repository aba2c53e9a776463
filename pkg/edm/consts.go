/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

const (
	// Namespace of the core model
	CoreNamespace = "Edm"

	// Used as delimiter in qualified names
	QualifiedNameSeparator = "."

	// Used as delimiter in path expressions
	PathSeparator = "/"
)

// Default spatial reference identifiers
const (
	DefaultGeographySRID = 4326
	DefaultGeometrySRID  = 0
)

// Default facets for type references constructed without explicit facets
const (
	DefaultDecimalScale      = 0
	DefaultTemporalPrecision = 0
	DefaultUnicode           = true
)

// Suffix for navigation property partner name synthesized by AddBidirectionalNavigation
const DefaultPartnerSuffix = "Partner"

// Default size of bound operations cache of the model
const DefaultBoundOperationsCacheSize = 1024

// Core vocabulary namespace and alias
const (
	CoreVocabularyNamespace = "Org.OData.Core.V1"
	CoreVocabularyAlias     = "Core"
)

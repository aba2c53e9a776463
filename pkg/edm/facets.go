/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// Optional facet value
type optional[T any] struct {
	value T
	ok    bool
}

func some[T any](v T) optional[T] { return optional[T]{value: v, ok: true} }

func (o optional[T]) get() (T, bool) { return o.value, o.ok }

// Type reference facets.
//
// Only facets applicable to the kind of referenced type are used, others are ignored.
type facets struct {
	precision optional[int]
	scale     optional[int]
	maxLength optional[int]
	unbounded bool
	unicode   optional[bool]
	srid      optional[int]
}

// Facet is an option to construct type reference with facets.
type Facet func(*facets)

// Precision of decimal or temporal type reference
func Precision(p int) Facet {
	return func(f *facets) { f.precision = some(p) }
}

// Scale of decimal type reference
func Scale(s int) Facet {
	return func(f *facets) { f.scale = some(s) }
}

// Maximum length of string or binary type reference
func MaxLength(l int) Facet {
	return func(f *facets) { f.maxLength = some(l) }
}

// Unbounded length of string or binary type reference. Resets MaxLength.
func Unbounded() Facet {
	return func(f *facets) {
		f.unbounded = true
		f.maxLength = optional[int]{}
	}
}

// Is string type reference unicode
func Unicode(u bool) Facet {
	return func(f *facets) { f.unicode = some(u) }
}

// Spatial reference identifier of geography or geometry type reference
func SRID(srid int) Facet {
	return func(f *facets) { f.srid = some(srid) }
}

// Makes facets from options and fills defaults for primitive kind.
func makeFacets(kind PrimitiveTypeKind, ff ...Facet) facets {
	f := facets{}
	for _, opt := range ff {
		opt(&f)
	}
	switch {
	case kind == PrimitiveTypeKind_Decimal:
		if !f.scale.ok {
			f.scale = some(DefaultDecimalScale)
		}
	case kind == PrimitiveTypeKind_String:
		if !f.unicode.ok {
			f.unicode = some(DefaultUnicode)
		}
	case kind.IsTemporal():
		if !f.precision.ok {
			f.precision = some(DefaultTemporalPrecision)
		}
	case kind.IsGeography():
		if !f.srid.ok {
			f.srid = some(DefaultGeographySRID)
		}
	case kind.IsGeometry():
		if !f.srid.ok {
			f.srid = some(DefaultGeometrySRID)
		}
	}
	return f
}

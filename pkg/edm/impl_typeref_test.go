/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/edm/pkg/edm"
)

func TestPrimitiveTypeReferenceFacets(t *testing.T) {
	require := require.New(t)
	core := edm.Core()

	t.Run("should use facets defaults", func(t *testing.T) {
		d := core.GetDecimal(true)
		require.True(d.IsNullable())
		_, ok := d.Precision()
		require.False(ok)
		scale, ok := d.Scale()
		require.True(ok)
		require.Equal(edm.DefaultDecimalScale, scale)

		s := core.GetString(false)
		require.False(s.IsNullable())
		require.False(s.IsUnbounded())
		_, ok = s.MaxLength()
		require.False(ok)
		unicode, ok := s.IsUnicode()
		require.True(ok)
		require.True(unicode)

		dt := core.GetDateTimeOffset(false)
		precision, ok := dt.Precision()
		require.True(ok)
		require.Equal(edm.DefaultTemporalPrecision, precision)

		geo := core.GetSpatial(edm.PrimitiveTypeKind_GeographyPoint, true)
		srid, ok := geo.SRID()
		require.True(ok)
		require.Equal(edm.DefaultGeographySRID, srid)

		geom := core.GetSpatial(edm.PrimitiveTypeKind_GeometryPolygon, true)
		srid, ok = geom.SRID()
		require.True(ok)
		require.Equal(edm.DefaultGeometrySRID, srid)
	})

	t.Run("should use specified facets", func(t *testing.T) {
		d := core.GetDecimal(false, edm.Precision(18), edm.Scale(4))
		p, _ := d.Precision()
		s, _ := d.Scale()
		require.Equal(18, p)
		require.Equal(4, s)

		str := core.GetString(true, edm.MaxLength(100), edm.Unicode(false))
		l, ok := str.MaxLength()
		require.True(ok)
		require.Equal(100, l)
		u, _ := str.IsUnicode()
		require.False(u)

		bin := core.GetBinary(true, edm.MaxLength(10), edm.Unbounded())
		require.True(bin.IsUnbounded())
		_, ok = bin.MaxLength()
		require.False(ok, "unbounded resets max length")

		tod := core.GetTemporal(edm.PrimitiveTypeKind_TimeOfDay, false, edm.Precision(3))
		p, _ = tod.Precision()
		require.Equal(3, p)

		geo := core.GetSpatial(edm.PrimitiveTypeKind_Geography, false, edm.SRID(0))
		srid, _ := geo.SRID()
		require.Zero(srid)
	})

	t.Run("should choose reference kind by primitive kind", func(t *testing.T) {
		_, ok := core.GetPrimitive(edm.PrimitiveTypeKind_Decimal, false).(edm.IDecimalTypeReference)
		require.True(ok)
		_, ok = core.GetPrimitive(edm.PrimitiveTypeKind_Duration, false).(edm.ITemporalTypeReference)
		require.True(ok)
		_, ok = core.GetInt32(false).(edm.IDecimalTypeReference)
		require.False(ok, "Int32 reference should not have decimal facets")
		_, ok = core.GetInt32(false).(edm.IStringTypeReference)
		require.False(ok, "Int32 reference should not have string facets")
	})

	t.Run("should panic if kind is not valid", func(t *testing.T) {
		require.Panics(func() { core.GetPrimitive(edm.PrimitiveTypeKind_None, false) })
		require.Panics(func() { core.GetPrimitive(edm.PrimitiveTypeKind_count, false) })
		require.Panics(func() { core.GetTemporal(edm.PrimitiveTypeKind_Date, false) })
		require.Panics(func() { core.GetSpatial(edm.PrimitiveTypeKind_String, false) })
	})
}

func TestTypeReferencePanicsOnNilDefinition(t *testing.T) {
	require := require.New(t)

	require.Panics(func() { edm.NewPrimitiveTypeReference(nil, true) })
	require.Panics(func() { edm.NewEntityTypeReference(nil, true) })
	require.Panics(func() { edm.NewComplexTypeReference(nil, true) })
	require.Panics(func() { edm.NewEnumTypeReference(nil, true) })
	require.Panics(func() { edm.NewCollectionTypeReference(nil, true) })
	require.Panics(func() { edm.NewTypeDefinitionReference(nil, true) })
	require.Panics(func() { edm.ToTypeReference(nil, true) })

	require.PanicsWithError(edm.ErrMissed("type reference definition").Error(),
		func() { edm.NewPathTypeReference(nil, true) })
}

func TestToTypeReference(t *testing.T) {
	require := require.New(t)
	core := edm.Core()

	entity := edm.NewEntityType("NS", "Customer")
	address := edm.NewComplexType("NS", "Address")
	enum := edm.NewEnumType("NS", "Color", nil, false)
	weight := edm.NewTypeDefinition("NS", "Weight", core.GetPrimitiveType(edm.PrimitiveTypeKind_Decimal))

	tests := []struct {
		name string
		t    edm.IType
		ok   func(edm.ITypeReference) bool
	}{
		{"primitive", core.GetPrimitiveType(edm.PrimitiveTypeKind_String),
			func(r edm.ITypeReference) bool { _, ok := r.(edm.IStringTypeReference); return ok }},
		{"entity", entity,
			func(r edm.ITypeReference) bool { _, ok := r.(edm.IEntityTypeReference); return ok }},
		{"complex", address,
			func(r edm.ITypeReference) bool { _, ok := r.(edm.IComplexTypeReference); return ok }},
		{"enum", enum,
			func(r edm.ITypeReference) bool { _, ok := r.(edm.IEnumTypeReference); return ok }},
		{"collection", edm.NewCollectionType(edm.NewEntityTypeReference(entity, false)),
			func(r edm.ITypeReference) bool { _, ok := r.(edm.ICollectionTypeReference); return ok }},
		{"entity reference", edm.NewEntityReferenceType(entity),
			func(r edm.ITypeReference) bool { _, ok := r.(edm.IEntityReferenceTypeReference); return ok }},
		{"type definition", weight,
			func(r edm.ITypeReference) bool { _, ok := r.(edm.ITypeDefinitionReference); return ok }},
		{"path", core.GetPathType(edm.PathTypeKind_PropertyPath),
			func(r edm.ITypeReference) bool { _, ok := r.(edm.IPathTypeReference); return ok }},
		{"untyped", core.GetUntypedType(),
			func(r edm.ITypeReference) bool { _, ok := r.(edm.IUntypedTypeReference); return ok }},
		{"bad", edm.NewBadType(errs(edm.ErrorCode_BadUnresolvedType)),
			func(r edm.ITypeReference) bool { return edm.IsBad(r) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := edm.ToTypeReference(tt.t, true)
			require.True(tt.ok(r))
			require.Same(tt.t, r.Definition())
			require.True(r.IsNullable())
		})
	}

	t.Run("should fill type definition facets by underlying type", func(t *testing.T) {
		r := edm.ToTypeReference(weight, false, edm.Precision(10)).(edm.ITypeDefinitionReference)
		p, _ := r.Precision()
		require.Equal(10, p)
		s, ok := r.Scale()
		require.True(ok)
		require.Equal(edm.DefaultDecimalScale, s)
		_, ok = r.SRID()
		require.False(ok)
	})
}

func TestAsEntityType(t *testing.T) {
	require := require.New(t)

	e := edm.NewEntityType("NS", "E")
	require.Equal(e, edm.AsEntityType(edm.NewEntityTypeReference(e, false)))
	require.Equal(e, edm.AsEntityType(edm.Core().GetCollection(edm.NewEntityTypeReference(e, false))))
	require.Nil(edm.AsEntityType(edm.Core().GetInt32(false)))
	require.Nil(edm.AsEntityType(nil))
}

func TestFullTypeNameAndEquivalence(t *testing.T) {
	require := require.New(t)
	core := edm.Core()

	e := edm.NewEntityType("NS", "E")

	require.Equal("Edm.Int32", edm.FullTypeName(core.GetPrimitiveType(edm.PrimitiveTypeKind_Int32)))
	require.Equal("NS.E", edm.FullTypeName(e))
	require.Equal("Collection(NS.E)", edm.FullTypeName(edm.NewCollectionType(edm.NewEntityTypeReference(e, false))))
	require.Equal("Ref(NS.E)", edm.FullTypeName(edm.NewEntityReferenceType(e)))
	require.Empty(edm.FullTypeName(nil))

	t.Run("should compare types", func(t *testing.T) {
		require.True(edm.TypeEquivalent(e, e))
		require.False(edm.TypeEquivalent(e, edm.NewEntityType("NS", "E")), "different entity types with the same name")
		require.True(edm.TypeEquivalent(
			edm.NewCollectionType(edm.NewEntityTypeReference(e, false)),
			edm.NewCollectionType(edm.NewEntityTypeReference(e, false))))
		require.False(edm.TypeEquivalent(
			edm.NewCollectionType(edm.NewEntityTypeReference(e, true)),
			edm.NewCollectionType(edm.NewEntityTypeReference(e, false))), "different element nullability")
		require.True(edm.TypeEquivalent(edm.NewEntityReferenceType(e), edm.NewEntityReferenceType(e)))
		require.False(edm.TypeEquivalent(e, core.GetPrimitiveType(edm.PrimitiveTypeKind_Int32)))
		require.False(edm.TypeEquivalent(e, nil))
		require.True(edm.TypeEquivalent(nil, nil))
	})
}

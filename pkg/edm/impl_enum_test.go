/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/edm/pkg/edm"
)

func TestEnumType(t *testing.T) {
	require := require.New(t)

	t.Run("should create enum with default underlying type", func(t *testing.T) {
		color := edm.NewEnumType("NS", "Color", nil, false)
		require.Equal(edm.TypeKind_Enum, color.TypeKind())
		require.Equal(edm.PrimitiveTypeKind_Int32, color.UnderlyingType().PrimitiveKind())
		require.False(color.IsFlags())
		require.Empty(color.Members())

		red := color.AddMember("Red", 1)
		green := color.AddMember("Green", 2)
		require.Equal([]edm.IEnumMember{red, green}, color.Members())
		require.Equal(color, red.DeclaringType())
		require.Equal("Green", green.Name())
		require.EqualValues(2, green.Value())

		require.Panics(func() { color.AddMember("", 3) })
	})

	t.Run("should create flags enum", func(t *testing.T) {
		access := edm.NewEnumType("NS", "Access", edm.Core().GetPrimitiveType(edm.PrimitiveTypeKind_Byte), true)
		require.True(access.IsFlags())
		require.Equal(edm.PrimitiveTypeKind_Byte, access.UnderlyingType().PrimitiveKind())
	})

	t.Run("should panic if enum is not valid", func(t *testing.T) {
		require.Panics(func() { edm.NewEnumType("NS", "", nil, false) })
		require.Panics(func() {
			edm.NewEnumType("NS", "E", edm.Core().GetPrimitiveType(edm.PrimitiveTypeKind_String), false)
		})
	})
}

func TestTypeDefinition(t *testing.T) {
	require := require.New(t)

	weight := edm.NewTypeDefinition("NS", "Weight", edm.Core().GetPrimitiveType(edm.PrimitiveTypeKind_Decimal))
	require.Equal(edm.TypeKind_TypeDefinition, weight.TypeKind())
	require.Equal("NS.Weight", weight.FullName())
	require.Equal(edm.PrimitiveTypeKind_Decimal, weight.UnderlyingType().PrimitiveKind())

	ref := edm.NewTypeDefinitionReference(weight, true, edm.Precision(8))
	require.Equal(weight, ref.TypeDefinition())
	p, _ := ref.Precision()
	require.Equal(8, p)

	require.Panics(func() { edm.NewTypeDefinition("NS", "", edm.Core().GetPrimitiveType(edm.PrimitiveTypeKind_Int32)) })
	require.Panics(func() { edm.NewTypeDefinition("NS", "T", nil) })
	require.Panics(func() { edm.NewCollectionType(nil) })
	require.Panics(func() { edm.NewEntityReferenceType(nil) })
}

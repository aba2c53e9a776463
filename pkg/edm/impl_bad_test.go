/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/edm/pkg/edm"
)

// Returns one structural error for each specified code
func errs(codes ...edm.ErrorCode) []*edm.StructuralError {
	ee := make([]*edm.StructuralError, 0, len(codes))
	for _, c := range codes {
		ee = append(ee, edm.NewStructuralError(nil, c, "test error"))
	}
	return ee
}

func TestBadElementsErrors(t *testing.T) {
	require := require.New(t)

	ee := errs(edm.ErrorCode_BadUnresolvedType, edm.ErrorCode_BadUnresolvedProperty)

	tests := []struct {
		name string
		bad  edm.IBadElement
	}{
		{"type", edm.NewBadType(ee)},
		{"primitive type", edm.NewBadPrimitiveType("Edm.Int128", edm.PrimitiveTypeKind_None, ee)},
		{"complex type", edm.NewBadComplexType("NS.Address", ee)},
		{"entity type", edm.NewBadEntityType("NS.Customer", ee)},
		{"enum type", edm.NewBadEnumType("NS.Color", ee)},
		{"enum member", edm.NewBadEnumMember(nil, "Red", ee)},
		{"type definition", edm.NewBadTypeDefinition("NS.Weight", ee)},
		{"collection type", edm.NewBadCollectionType(ee)},
		{"entity reference type", edm.NewBadEntityReferenceType(ee)},
		{"path type", edm.NewBadPathType("Edm.SomePath", ee)},
		{"type reference", edm.NewBadTypeReference(ee, true)},
		{"primitive type reference", edm.NewBadPrimitiveTypeReference("Edm.Int128", edm.PrimitiveTypeKind_None, true, ee)},
		{"complex type reference", edm.NewBadComplexTypeReference("NS.Address", true, ee)},
		{"entity type reference", edm.NewBadEntityTypeReference("NS.Customer", true, ee)},
		{"property", edm.NewBadProperty(nil, "Name", ee)},
		{"navigation property", edm.NewBadNavigationProperty(nil, "Orders", ee)},
		{"entity set", edm.NewBadEntitySet(nil, "Orders", ee)},
		{"singleton", edm.NewBadSingleton(nil, "Me", ee)},
		{"entity container", edm.NewBadEntityContainer("NS.Container", ee)},
		{"operation", edm.NewBadOperation("NS.Do", ee)},
		{"operation parameter", edm.NewBadOperationParameter(nil, "p", ee)},
		{"term", edm.NewBadTerm("NS.Term", ee)},
		{"expression", edm.NewBadExpression(ee)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(ee, tt.bad.Errors())
			require.True(edm.IsBad(tt.bad))
		})
	}

	t.Run("should copy errors slice", func(t *testing.T) {
		src := errs(edm.ErrorCode_BadUnresolvedType)
		b := edm.NewBadType(src)
		src[0] = edm.NewStructuralError(nil, edm.ErrorCode_BadCyclicTerm, "changed")
		require.Equal(edm.ErrorCode_BadUnresolvedType, b.Errors()[0].Code())
	})

	t.Run("should panic if errors is empty", func(t *testing.T) {
		require.Panics(func() { edm.NewBadType(nil) })
		require.Panics(func() { edm.NewBadEntityType("NS.E", []*edm.StructuralError{}) })
		require.Panics(func() { edm.NewBadExpression(nil) })
	})

	t.Run("should not be bad if good", func(t *testing.T) {
		require.False(edm.IsBad(edm.NewEntityType("NS", "E")))
		require.False(edm.IsBad(edm.Core().GetInt32(true)))
		require.False(edm.IsBad(nil))
	})
}

func TestBadElementsSafeDefaults(t *testing.T) {
	require := require.New(t)

	ee := errs(edm.ErrorCode_BadUnresolvedType)

	t.Run("should return safe defaults from structured types", func(t *testing.T) {
		c := edm.NewBadComplexType("NS.Address", ee)
		require.Equal("NS", c.Namespace())
		require.Equal("Address", c.Name())
		require.Equal("NS.Address", c.FullName())
		require.Equal(edm.TypeKind_Complex, c.TypeKind())
		require.Nil(c.BaseType())
		require.NotNil(c.DeclaredProperties())
		require.Empty(c.DeclaredProperties())
		require.Nil(c.FindProperty("any"))
		require.False(c.IsAbstract())
		require.False(c.IsOpen())

		e := edm.NewBadEntityType("NS.Customer", ee)
		require.Equal(edm.TypeKind_Entity, e.TypeKind())
		require.NotNil(e.DeclaredKey())
		require.Empty(e.DeclaredKey())
		require.False(e.HasStream())
	})

	t.Run("should return safe defaults from other types", func(t *testing.T) {
		enum := edm.NewBadEnumType("NS.Color", ee)
		require.Equal(edm.TypeKind_Enum, enum.TypeKind())
		require.Empty(enum.Members())
		require.False(enum.IsFlags())
		require.Equal(edm.PrimitiveTypeKind_Int32, enum.UnderlyingType().PrimitiveKind())

		m := edm.NewBadEnumMember(enum, "Red", ee)
		require.Equal(enum, m.DeclaringType())
		require.Zero(m.Value())

		td := edm.NewBadTypeDefinition("NS.Weight", ee)
		require.Equal(edm.TypeKind_TypeDefinition, td.TypeKind())
		require.NotNil(td.UnderlyingType())
		require.Equal(edm.PrimitiveTypeKind_None, td.UnderlyingType().PrimitiveKind())
		require.True(edm.IsBad(td.UnderlyingType()))

		coll := edm.NewBadCollectionType(ee)
		require.Equal(edm.TypeKind_Collection, coll.TypeKind())
		require.True(edm.IsBad(coll.ElementType()))

		ref := edm.NewBadEntityReferenceType(ee)
		require.Equal(edm.TypeKind_EntityReference, ref.TypeKind())
		require.True(edm.IsBad(ref.EntityType()))

		path := edm.NewBadPathType("Edm.SomePath", ee)
		require.Equal(edm.TypeKind_Path, path.TypeKind())
		require.Equal(edm.PathTypeKind_None, path.PathKind())
		require.Equal("Edm.SomePath", path.FullName())
	})

	t.Run("should return safe defaults from properties", func(t *testing.T) {
		owner := edm.NewEntityType("NS", "Customer")

		p := edm.NewBadProperty(owner, "Name", ee)
		require.Equal(edm.PropertyKind_Structural, p.PropertyKind())
		require.Equal(owner, p.DeclaringType())
		require.Empty(p.DefaultValue())
		require.True(edm.IsBad(p.Type()))

		n := edm.NewBadNavigationProperty(owner, "Orders", ee)
		require.Equal(edm.PropertyKind_Navigation, n.PropertyKind())
		require.Nil(n.Partner())
		require.True(n.PartnerPath().IsEmpty())
		require.Nil(n.ReferentialConstraint())
		require.False(n.ContainsTarget())
		require.Equal(edm.OnDeleteAction_None, n.OnDelete())
		require.NotNil(n.Type())
		require.Equal(edm.TypeKind_Entity, n.Type().Definition().TypeKind())
	})

	t.Run("should return safe defaults from navigation sources", func(t *testing.T) {
		s := edm.NewBadEntitySet(nil, "Orders", ee)
		require.Nil(s.Container())
		require.Equal(edm.ContainerElementKind_EntitySet, s.ContainerElementKind())
		require.Equal(edm.NavigationSourceKind_EntitySet, s.NavigationSourceKind())
		require.Equal("Orders", s.Path().FullPath())
		require.Equal(edm.TypeKind_Collection, s.Type().TypeKind())
		require.True(edm.IsBad(edm.NavigationSourceEntityType(s)))
		require.Empty(s.NavigationPropertyBindings())
		require.Nil(s.FindNavigationTarget(edm.NewBadNavigationProperty(nil, "x", ee)))

		one := edm.NewBadSingleton(nil, "Me", ee)
		require.Equal(edm.ContainerElementKind_Singleton, one.ContainerElementKind())
		require.Equal(edm.TypeKind_Entity, one.Type().TypeKind())

		c := edm.NewBadEntityContainer("NS.Container", ee)
		require.Equal(edm.SchemaElementKind_EntityContainer, c.SchemaElementKind())
		require.Empty(c.Elements())
		require.Nil(c.FindEntitySet("Orders"))
		require.Nil(c.FindSingleton("Me"))
		require.Empty(c.FindOperationImports("Do"))
	})

	t.Run("should return safe defaults from operations and terms", func(t *testing.T) {
		o := edm.NewBadOperation("NS.Do", ee)
		require.Equal(edm.SchemaElementKind_Function, o.SchemaElementKind())
		require.False(o.IsBound())
		require.False(o.IsComposable())
		require.Empty(o.Parameters())
		require.Nil(o.FindParameter("p"))
		require.True(o.EntitySetPath().IsEmpty())
		require.True(edm.IsBad(o.ReturnType()))

		p := edm.NewBadOperationParameter(o, "p", ee)
		require.Equal(o, p.DeclaringOperation())
		require.True(edm.IsBad(p.Type()))

		term := edm.NewBadTerm("NS.Term", ee)
		require.Equal(edm.SchemaElementKind_Term, term.SchemaElementKind())
		require.Empty(term.AppliesTo())
		require.Empty(term.DefaultValue())
		require.True(edm.IsBad(term.Type()))

		require.Equal(edm.ExpressionKind_None, edm.NewBadExpression(ee).ExpressionKind())
	})
}

func TestBadElementsString(t *testing.T) {
	require := require.New(t)

	owner := edm.NewEntityType("NS", "Customer")

	require.Equal("BadUnresolvedComplexType:NS.Address",
		edm.NewBadComplexType("NS.Address", errs(edm.ErrorCode_BadUnresolvedComplexType)).String())
	require.Equal("BadUnresolvedProperty:NS.Customer/Name",
		edm.NewBadProperty(owner, "Name", errs(edm.ErrorCode_BadUnresolvedProperty, edm.ErrorCode_BadUnresolvedType)).String())
	require.Equal("BadUnresolvedEntitySet:Orders",
		edm.NewBadEntitySet(nil, "Orders", errs(edm.ErrorCode_BadUnresolvedEntitySet)).String())
}

func TestCyclicElements(t *testing.T) {
	require := require.New(t)

	l := edm.FileLocation{Source: "model.xml", Line: 7, Column: 3}

	t.Run("should create cyclic complex type", func(t *testing.T) {
		c := edm.NewCyclicComplexType("NS.Address", l)
		require.Equal("NS.Address", c.FullName())
		require.Equal(edm.TypeKind_Complex, c.TypeKind())
		require.Len(c.Errors(), 1)
		require.Equal(edm.ErrorCode_BadCyclicComplex, c.Errors()[0].Code())
		require.Equal(l, c.Errors()[0].Location())
	})

	t.Run("should create cyclic entity type", func(t *testing.T) {
		e := edm.NewCyclicEntityType("NS.Customer", l)
		require.Equal(edm.TypeKind_Entity, e.TypeKind())
		require.Equal(edm.ErrorCode_BadCyclicEntity, e.Errors()[0].Code())
	})

	t.Run("should create cyclic term", func(t *testing.T) {
		term := edm.NewCyclicTerm("NS.Term", l)
		require.Equal("Term", term.Name())
		require.Equal(edm.ErrorCode_BadCyclicTerm, term.Errors()[0].Code())
		require.ErrorContains(term.Errors()[0], "NS.Term")
	})
}

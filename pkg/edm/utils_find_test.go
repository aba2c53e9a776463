/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/edm/pkg/edm"
)

func TestFindAcrossModels(t *testing.T) {
	require := require.New(t)

	lib1 := edm.NewModel()
	lib2 := edm.NewModel()
	m := edm.NewModel(edm.WithReferencedModels(lib1, lib2))

	own := edm.NewEntityType("App", "Customer")
	m.AddElement(own)

	shared1 := edm.NewComplexType("Lib", "Money")
	shared2 := edm.NewComplexType("Lib", "Money")
	lib1.AddElement(shared1)
	lib2.AddElement(shared2)

	t.Run("should find types in model and references", func(t *testing.T) {
		require.Equal(own, edm.FindType(m, "App.Customer"))
		require.Equal(edm.Core().GetPrimitiveType(edm.PrimitiveTypeKind_Int32), edm.FindType(m, "Edm.Int32"))
		require.Equal(edm.Core().GetPrimitiveType(edm.PrimitiveTypeKind_Int32), edm.FindType(m, "Int32"))
		require.Nil(edm.FindType(m, "App.Unknown"))
		require.Nil(edm.FindType(nil, "App.Customer"))
	})

	t.Run("should return ambiguous binding if found in several models", func(t *testing.T) {
		amb, ok := edm.FindType(m, "Lib.Money").(*edm.AmbiguousTypeBinding)
		require.True(ok)
		require.Equal([]edm.ISchemaType{shared1, shared2}, amb.Bindings())

		require.Equal(shared1, lib1.FindDeclaredType("Lib.Money"), "model dictionaries are not changed")
	})

	t.Run("should extend existing ambiguous binding", func(t *testing.T) {
		shared3 := edm.NewComplexType("Lib", "Money")
		m.AddElement(shared3)
		amb, ok := edm.FindType(m, "Lib.Money").(*edm.AmbiguousTypeBinding)
		require.True(ok)
		require.Equal([]edm.ISchemaType{shared3, shared1, shared2}, amb.Bindings())
	})

	t.Run("should flatten ambiguous bindings from referenced models", func(t *testing.T) {
		x1, x2, x3 := edm.NewComplexType("NS", "X"), edm.NewComplexType("NS", "X"), edm.NewComplexType("NS", "X")
		ref := edm.NewModel()
		ref.AddElements(x1, x2)
		app := edm.NewModel(edm.WithReferencedModels(ref))
		app.AddElement(x3)

		amb, ok := edm.FindType(app, "NS.X").(*edm.AmbiguousTypeBinding)
		require.True(ok)
		require.Equal([]edm.ISchemaType{x3, x1, x2}, amb.Bindings())
		for _, b := range amb.Bindings() {
			require.False(edm.IsBad(b))
		}

		refAmb := ref.FindDeclaredType("NS.X").(*edm.AmbiguousTypeBinding)
		require.NotSame(refAmb, amb)
		require.Equal([]edm.ISchemaType{x1, x2}, refAmb.Bindings(), "model dictionaries are not changed")

		require.Same(refAmb, edm.FindType(edm.NewModel(edm.WithReferencedModels(ref)), "NS.X"),
			"ambiguous binding from the only model found is returned as is")
	})

	t.Run("should find terms and containers", func(t *testing.T) {
		term := edm.NewTerm("Lib", "Note", edm.Core().GetString(true), "", "")
		lib1.AddElement(term)
		require.Equal(term, edm.FindTerm(m, "Lib.Note"))

		c1 := edm.NewEntityContainer("Lib", "Service")
		c2 := edm.NewEntityContainer("App", "Service")
		lib2.AddElement(c1)
		m.AddElement(c2)
		require.Equal(c2, edm.FindEntityContainer(m, "App.Service"))
		_, ok := edm.FindEntityContainer(m, "Service").(*edm.AmbiguousEntityContainerBinding)
		require.True(ok)

		_, ok = edm.FindTerm(edm.NewModel(edm.WithReferencedModels(lib1, lib1)), "Lib.Note").(*edm.AmbiguousTermBinding)
		require.False(ok, "the same term from the same model twice is not ambiguous")
	})
}

func TestFindOperationsAcrossModels(t *testing.T) {
	require := require.New(t)

	lib := edm.NewModel()
	m := edm.NewModel(edm.WithReferencedModels(lib))

	customer := edm.NewEntityType("NS", "Customer")
	m.AddElement(customer)
	ref := edm.NewEntityTypeReference(customer, false)

	f1 := edm.NewFunction("NS", "Score", edm.Core().GetInt32(false), true, edm.PathExpression{}, false)
	f1.AddParameter("c", ref)
	m.AddElement(f1)

	f2 := edm.NewFunction("NS", "Score", edm.Core().GetInt32(false), true, edm.PathExpression{}, false)
	f2.AddParameter("c", ref)
	f2.AddParameter("weight", edm.Core().GetDouble(false))
	lib.AddElement(f2)

	act := edm.NewAction("NS", "Touch", nil, false, edm.PathExpression{})
	m.AddElement(act)

	require.Equal([]edm.IOperation{f1, f2}, edm.FindOperations(m, "NS.Score"))
	require.Equal([]edm.IOperation{f1, f2}, edm.FindBoundOperations(m, customer))
	require.Empty(edm.FindOperations(m, "NS.Unknown"))

	t.Run("should resolve operation", func(t *testing.T) {
		require.Equal(act, edm.ResolveOperation(m, "NS.Touch"))
		require.Nil(edm.ResolveOperation(m, "NS.Unknown"))

		amb, ok := edm.ResolveOperation(m, "NS.Score").(*edm.AmbiguousOperationBinding)
		require.True(ok)
		require.Equal([]edm.IOperation{f1, f2}, amb.Bindings())
		require.Nil(amb.ReturnType())
		require.True(amb.IsBound())
		require.Empty(amb.Parameters())
		require.Nil(amb.FindParameter("c"))
		require.Equal(edm.SchemaElementKind_Function, amb.SchemaElementKind())
	})
}

func TestFindIgnoreCase(t *testing.T) {
	require := require.New(t)

	m := edm.NewModel()
	customer := edm.NewEntityType("NS", "Customer")
	m.AddElement(customer)
	name := customer.AddStructuralProperty("Name", edm.PrimitiveTypeKind_String, true)
	strasse := customer.AddStructuralProperty("Straße", edm.PrimitiveTypeKind_String, true)

	t.Run("should find types ignoring case", func(t *testing.T) {
		require.Equal(customer, edm.FindTypeIgnoreCase(m, "ns.CUSTOMER"))
		require.Equal(customer, edm.FindTypeIgnoreCase(m, "NS.Customer"))
		require.Equal(edm.Core().GetPrimitiveType(edm.PrimitiveTypeKind_String), edm.FindTypeIgnoreCase(m, "EDM.STRING"))
		require.Nil(edm.FindTypeIgnoreCase(m, "NS.Unknown"))
	})

	t.Run("should return ambiguous binding if several types match", func(t *testing.T) {
		other := edm.NewComplexType("NS", "CUSTOMER")
		m.AddElement(other)
		require.Equal(other, edm.FindTypeIgnoreCase(m, "NS.CUSTOMER"), "exact match is preferred")
		amb, ok := edm.FindTypeIgnoreCase(m, "ns.customer").(*edm.AmbiguousTypeBinding)
		require.True(ok)
		require.Len(amb.Bindings(), 2)
	})

	t.Run("should find properties ignoring case", func(t *testing.T) {
		derived := edm.NewEntityType("NS", "VIP", edm.WithBaseType(customer))
		require.Equal(name, edm.FindPropertyIgnoreCase(derived, "NAME"))
		require.Equal(strasse, edm.FindPropertyIgnoreCase(derived, "STRASSE"))
		require.Nil(edm.FindPropertyIgnoreCase(derived, "Unknown"))
		require.Nil(edm.FindPropertyIgnoreCase(nil, "Name"))
	})
}

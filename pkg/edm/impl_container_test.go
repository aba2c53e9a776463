/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/edm/pkg/edm"
)

func TestEntityContainerEntitySets(t *testing.T) {
	require := require.New(t)

	customer := edm.NewEntityType("NS", "Customer")
	container := edm.NewEntityContainer("NS", "Container")

	require.Equal("NS.Container", container.FullName())
	require.Equal(edm.SchemaElementKind_EntityContainer, container.SchemaElementKind())
	require.Empty(container.Elements())
	require.Nil(container.FindEntitySet("X"))

	t.Run("should find unique entity set", func(t *testing.T) {
		s := container.AddEntitySet("Customers", customer)
		require.Equal(s, container.FindEntitySet("Customers"))
		require.False(edm.IsBad(container.FindEntitySet("Customers")))
	})

	t.Run("should replace colliding entity sets with ambiguous binding", func(t *testing.T) {
		x1 := container.AddEntitySet("X", customer)
		x2 := edm.NewEntitySet(container, "X", customer, false)
		x3 := edm.NewEntitySet(container, "X", customer, true)

		container.AddElement(x2)
		container.AddElement(x3)
		container.AddElement(x2)

		found := container.FindEntitySet("X")
		require.True(edm.IsBad(found))
		amb, ok := found.(*edm.AmbiguousEntitySetBinding)
		require.True(ok)
		require.Equal([]edm.IEntitySet{x1, x2, x3}, amb.Bindings())
		require.Equal("X", amb.Name())
		require.Equal(container, amb.Container())
		require.Len(amb.Errors(), 1)
		require.Equal(edm.ErrorCode_BadAmbiguousElementBinding, amb.Errors()[0].Code())
	})

	t.Run("should not change slot if the same entity set is added again", func(t *testing.T) {
		s := container.FindEntitySet("Customers")
		container.AddElement(s)
		require.Same(s, container.FindEntitySet("Customers"))
	})

	t.Run("should keep entity sets and singletons apart", func(t *testing.T) {
		one := container.AddSingleton("Customers", customer)
		require.Equal(one, container.FindSingleton("Customers"))
		require.False(edm.IsBad(container.FindEntitySet("Customers")))
	})

	t.Run("should replace colliding singletons with ambiguous binding", func(t *testing.T) {
		container.AddSingleton("Me", customer)
		container.AddSingleton("Me", customer)
		_, ok := container.FindSingleton("Me").(*edm.AmbiguousSingletonBinding)
		require.True(ok)
	})
}

func TestEntityContainerOperationImports(t *testing.T) {
	require := require.New(t)

	container := edm.NewEntityContainer("NS", "Container")
	ret := edm.Core().GetInt32(false)

	f1 := edm.NewFunction("NS", "Count", ret, false, edm.PathExpression{}, false)
	f2 := edm.NewFunction("NS", "Count", ret, false, edm.PathExpression{}, true)
	f2.AddParameter("filter", edm.Core().GetString(true))
	act := edm.NewAction("NS", "Reset", nil, false, edm.PathExpression{})

	require.Empty(container.FindOperationImports("Count"))
	require.Nil(edm.ResolveOperationImport(container, "Count"))

	i1 := container.AddFunctionImport("Count", f1, nil, true)
	require.Equal([]edm.IOperationImport{i1}, container.FindOperationImports("Count"))
	require.Equal(i1, edm.ResolveOperationImport(container, "Count"))

	i2 := container.AddFunctionImport("Count", f2, edm.NewPathExpression("Customers"), false)
	reset := container.AddActionImport("Reset", act, nil)

	t.Run("should keep overloads", func(t *testing.T) {
		require.Equal([]edm.IOperationImport{i1, i2}, container.FindOperationImports("Count"))
		require.Equal([]edm.IOperationImport{reset}, container.FindOperationImports("Reset"))
		require.Len(container.Elements(), 3)
	})

	t.Run("should resolve overloads to ambiguous binding", func(t *testing.T) {
		r := edm.ResolveOperationImport(container, "Count")
		amb, ok := r.(*edm.AmbiguousOperationImportBinding)
		require.True(ok)
		require.Equal([]edm.IOperationImport{i1, i2}, amb.Bindings())
		require.Equal(f1, amb.Operation())
		require.Equal(edm.ContainerElementKind_FunctionImport, amb.ContainerElementKind())
		require.Nil(amb.EntitySet())
	})

	t.Run("should return import properties", func(t *testing.T) {
		require.Equal(f2, i2.Function())
		require.False(i2.IncludeInServiceDocument())
		require.Equal("Customers", i2.EntitySet().(edm.PathExpression).FullPath())
		require.Equal(container, i2.Container())
		require.Equal(act, reset.Action())
		require.Equal(edm.ContainerElementKind_ActionImport, reset.ContainerElementKind())
		require.Nil(reset.EntitySet())
	})

	t.Run("should panic if import is not valid", func(t *testing.T) {
		require.Panics(func() { container.AddFunctionImport("", f1, nil, true) })
		require.Panics(func() { container.AddFunctionImport("F", nil, nil, true) })
		require.Panics(func() { container.AddActionImport("A", nil, nil) })
		require.Panics(func() { edm.NewActionImport(nil, "A", act, nil) })
	})
}

// Container element with specified kind
type testElement struct {
	kind edm.ContainerElementKind
}

func (e testElement) Container() edm.IEntityContainer                { return nil }
func (e testElement) ContainerElementKind() edm.ContainerElementKind { return e.kind }
func (e testElement) Name() string                                   { return "test" }

func TestEntityContainerAddElementPanics(t *testing.T) {
	require := require.New(t)

	container := edm.NewEntityContainer("NS", "Container")

	t.Run("should panic if element is nil", func(t *testing.T) {
		require.Panics(func() { container.AddElement(nil) })
	})

	t.Run("should panic if element kind is unknown", func(t *testing.T) {
		for _, k := range []edm.ContainerElementKind{edm.ContainerElementKind_None, edm.ContainerElementKind_count} {
			func() {
				defer func() {
					err, ok := recover().(error)
					require.True(ok)
					require.True(errors.Is(err, edm.ErrInvalidOperationError))
				}()
				container.AddElement(testElement{k})
			}()
		}
	})

	t.Run("should panic if element does not implement interface of its kind", func(t *testing.T) {
		require.Panics(func() { container.AddElement(testElement{edm.ContainerElementKind_EntitySet}) })
		require.Panics(func() { container.AddElement(testElement{edm.ContainerElementKind_FunctionImport}) })
	})

	require.Empty(container.Elements())

	t.Run("should panic if container name is empty", func(t *testing.T) {
		require.Panics(func() { edm.NewEntityContainer("NS", "") })
	})
}

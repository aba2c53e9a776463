/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/edm/pkg/edm"
)

func TestPathExpression(t *testing.T) {
	require := require.New(t)

	t.Run("should parse and build paths", func(t *testing.T) {
		p := edm.ParsePathExpression("A/B/C")
		require.Equal([]string{"A", "B", "C"}, p.Segments())
		require.Equal("A/B/C", p.FullPath())
		require.Equal("A/B/C", p.String())
		require.Equal("C", p.LastSegment())
		require.Equal(edm.ExpressionKind_Path, p.ExpressionKind())

		require.Equal(p, edm.NewPathExpression("A", "", "B", "C"))
		require.Equal(p.FullPath(), edm.ParsePathExpression("/A//B/C/").FullPath())
	})

	t.Run("should handle empty paths", func(t *testing.T) {
		for _, p := range []edm.PathExpression{{}, edm.NewPathExpression(), edm.ParsePathExpression("")} {
			require.True(p.IsEmpty())
			require.Empty(p.FullPath())
			require.Empty(p.LastSegment())
			require.Empty(p.Segments())
		}
	})

	t.Run("should not share segments", func(t *testing.T) {
		p := edm.NewPathExpression("A", "B")
		s := p.Segments()
		s[0] = "X"
		require.Equal("A/B", p.FullPath())

		a1 := p.Append("C")
		a2 := p.Append("D")
		require.Equal("A/B/C", a1.FullPath())
		require.Equal("A/B/D", a2.FullPath())
		require.Equal("A/B", p.FullPath())
	})

	t.Run("should concat, check and trim prefixes", func(t *testing.T) {
		p := edm.NewPathExpression("A").Concat(edm.ParsePathExpression("B/C"))
		require.Equal("A/B/C", p.FullPath())
		require.True(p.HasPrefix(edm.ParsePathExpression("A/B")))
		require.True(p.HasPrefix(edm.PathExpression{}))
		require.False(p.HasPrefix(edm.ParsePathExpression("B")))
		require.False(p.HasPrefix(edm.ParsePathExpression("A/B/C/D")))
		require.Equal("C", p.TrimPrefix(2).FullPath())
		require.True(p.TrimPrefix(3).IsEmpty())
		require.True(p.TrimPrefix(10).IsEmpty())
	})
}

func TestConstantAndLabeledExpressions(t *testing.T) {
	require := require.New(t)

	c := edm.NewStringConstant("hello")
	require.Equal("hello", c.Value())
	require.Equal(edm.ExpressionKind_StringConstant, c.ExpressionKind())

	l := edm.NewLabeledExpression("Greeting", c)
	require.Equal("Greeting", l.Name())
	require.Equal(edm.ExpressionKind_Labeled, l.ExpressionKind())
	require.Equal(c, l.Expression())

	require.Panics(func() { edm.NewLabeledExpression("", c) })
	require.Panics(func() { edm.NewLabeledExpression("L", nil) })
}

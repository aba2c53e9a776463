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

func TestErrors(t *testing.T) {
	tests := []struct {
		e   error
		is  error
		has string
	}{
		{edm.ErrMissed("property «%s» type", "name"), edm.ErrMissedError, "property «name» type"},
		{edm.ErrInvalid("kind «%v»", edm.TypeKind_None), edm.ErrInvalidError, "kind «TypeKind_None»"},
		{edm.ErrInvalidOperation("message"), edm.ErrInvalidOperationError, "message"},
		{edm.ErrUnsupported("%d feature", 1), errors.ErrUnsupported, "1 feature"},
		{edm.ErrUnknownContainerElementKind(edm.ContainerElementKind_None), edm.ErrInvalidOperationError, "ContainerElementKind_None"},
		{edm.ErrUnknownSchemaElementKind(edm.SchemaElementKind_count), edm.ErrInvalidOperationError, "SchemaElementKind_count"},
	}

	require := require.New(t)
	for _, tt := range tests {
		require.ErrorIs(tt.e, tt.is)
		require.ErrorContains(tt.e, tt.has)
	}
}

func TestStructuralError(t *testing.T) {
	require := require.New(t)

	t.Run("should format error without location", func(t *testing.T) {
		err := edm.NewStructuralError(nil, edm.ErrorCode_BadUnresolvedType, "type «%s» not found", "NS.T")
		require.Equal(edm.ErrorCode_BadUnresolvedType, err.Code())
		require.Nil(err.Location())
		require.Equal("type «NS.T» not found", err.Message())
		require.EqualError(err, "BadUnresolvedType: type «NS.T» not found")
	})

	t.Run("should format error with file location", func(t *testing.T) {
		l := edm.FileLocation{Source: "model.xml", Line: 10, Column: 5}
		err := edm.NewStructuralError(l, edm.ErrorCode_BadCyclicComplex, "cycle")
		require.Equal(l, err.Location())
		require.EqualError(err, "BadCyclicComplex: cycle (model.xml:10:5)")
	})

	t.Run("should format error with object location", func(t *testing.T) {
		ct := edm.NewComplexType("NS", "Address")
		err := edm.NewStructuralError(edm.ObjectLocation{Object: ct}, edm.ErrorCode_BadUnresolvedProperty, "no property")
		require.EqualError(err, "BadUnresolvedProperty: no property (NS.Address)")
	})
}

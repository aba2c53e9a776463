/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/voedger/edm/pkg/edm"
)

func newCoreCmd() *cobra.Command {
	kind := kindAll
	cmd := &cobra.Command{
		Use:   "core",
		Short: "Lists types of the core model with their kinds and default facets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyOutputMode(); err != nil {
				return err
			}
			return listCore(cmd.OutOrStdout(), kind)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", kindAll, "Kind of listed types: primitive, path or all")
	return cmd
}

func listCore(out io.Writer, kind string) error {
	var filter func(edm.ISchemaType) bool
	switch kind {
	case kindPrimitive:
		filter = func(t edm.ISchemaType) bool { return t.TypeKind() == edm.TypeKind_Primitive }
	case kindPath:
		filter = func(t edm.ISchemaType) bool { return t.TypeKind() == edm.TypeKind_Path }
	case kindAll:
		filter = func(edm.ISchemaType) bool { return true }
	default:
		return fmt.Errorf(errInvalidKind, kind, ErrInvalidKind)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, e := range edm.Core().SchemaElements() {
		t, ok := e.(edm.ISchemaType)
		if !ok || !filter(t) {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.FullName(), green(typeKindString(t)), defaultFacets(t))
	}
	return w.Flush()
}

// Returns type kind, for primitive and path types followed by their own kind
func typeKindString(t edm.ISchemaType) string {
	switch t := t.(type) {
	case edm.IPrimitiveType:
		return t.TypeKind().TrimString() + "(" + t.PrimitiveKind().TrimString() + ")"
	case edm.IPathType:
		return t.TypeKind().TrimString() + "(" + t.PathKind().TrimString() + ")"
	}
	return t.TypeKind().TrimString()
}

// Returns facets of not nullable reference to core primitive type constructed without facets
func defaultFacets(t edm.ISchemaType) string {
	p, ok := t.(edm.IPrimitiveType)
	if !ok {
		return ""
	}
	ff := []string{}
	switch r := edm.Core().GetPrimitive(p.PrimitiveKind(), false).(type) {
	case *edm.DecimalTypeReference:
		if s, ok := r.Scale(); ok {
			ff = append(ff, fmt.Sprintf("Scale=%d", s))
		}
	case *edm.StringTypeReference:
		if u, ok := r.IsUnicode(); ok {
			ff = append(ff, fmt.Sprintf("Unicode=%v", u))
		}
	case *edm.TemporalTypeReference:
		if prec, ok := r.Precision(); ok {
			ff = append(ff, fmt.Sprintf("Precision=%d", prec))
		}
	case *edm.SpatialTypeReference:
		if s, ok := r.SRID(); ok {
			ff = append(ff, fmt.Sprintf("SRID=%d", s))
		}
	}
	return strings.Join(ff, ", ")
}

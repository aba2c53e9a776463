/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/edm/pkg/edm"
)

func newFindCmd() *cobra.Command {
	ignoreCase := false
	cmd := &cobra.Command{
		Use:   "find <name>",
		Short: "Finds type or term by name in the core model and the core vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyOutputMode(); err != nil {
				return err
			}
			return find(cmd.OutOrStdout(), args[0], ignoreCase)
		},
	}
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Ignore case of qualified type name")
	return cmd
}

func find(out io.Writer, name string, ignoreCase bool) error {
	m := edm.NewModel(edm.WithDefaultVocabularies())

	var t edm.ISchemaType
	if ignoreCase {
		t = edm.FindTypeIgnoreCase(m, name)
	} else {
		t = edm.FindType(m, name)
	}
	if t != nil {
		if edm.IsBad(t) {
			return fmt.Errorf(errName, name, ErrNameAmbiguous)
		}
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("«%s» resolved to type «%s»", name, t.FullName()))
		}
		_, err := fmt.Fprintf(out, "type\t%s\t%s\n", t.FullName(), green(typeKindString(t)))
		return err
	}

	if term := edm.FindTerm(m, name); term != nil {
		if edm.IsBad(term) {
			return fmt.Errorf(errName, name, ErrNameAmbiguous)
		}
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("«%s» resolved to term «%s»", name, term.FullName()))
		}
		_, err := fmt.Fprintf(out, "term\t%s\t%s\n", term.FullName(), green(edm.FullTypeName(term.Type().Definition())))
		return err
	}

	return fmt.Errorf(errName, name, ErrNameNotFound)
}

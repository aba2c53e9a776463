/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/voedger/edm/pkg/edm"
)

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split <qualified-name>",
		Short: "Splits qualified name into namespace and name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyOutputMode(); err != nil {
				return err
			}
			return split(cmd.OutOrStdout(), args[0])
		},
	}
}

func split(out io.Writer, qualifiedName string) error {
	ns, n, ok := edm.TryGetNamespaceNameFromQualifiedName(qualifiedName)
	if !ok {
		return fmt.Errorf(errName, qualifiedName, ErrNotQualifiedName)
	}
	_, err := fmt.Fprintf(out, "namespace\t%s\nname\t%s\n", ns, n)
	return err
}

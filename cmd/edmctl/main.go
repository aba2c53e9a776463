/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/untillpro/goutils/cobrau"
	"github.com/untillpro/goutils/logger"
)

//go:embed version
var version string

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

// command line flags bound with environment
var cfg *viper.Viper

func main() {
	err := execRootCmd(os.Args, version)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	return cobrau.ExecCommandAndCatchInterrupt(newRootCmd(args, ver))
}

func newRootCmd(args []string, ver string) *cobra.Command {
	version = ver

	rootCmd := cobrau.PrepareRootCmd(
		"edmctl",
		"EDM core model inspection utility",
		args,
		version,
		newCoreCmd(),
		newFindCmd(),
		newSplitCmd(),
	)

	rootCmd.PersistentFlags().StringP(cfgOutput, "o", outputPlain, "Output mode: plain or color")

	cfg = viper.New()
	cfg.SetEnvPrefix(envPrefix)
	cfg.AutomaticEnv()
	cfg.SetDefault(cfgOutput, outputPlain)
	if err := cfg.BindPFlag(cfgOutput, rootCmd.PersistentFlags().Lookup(cfgOutput)); err != nil {
		logger.Error(err)
	}

	return rootCmd
}

// Applies output mode from flag or environment to colors
func applyOutputMode() error {
	switch mode := cfg.GetString(cfgOutput); mode {
	case outputPlain:
		color.NoColor = true
	case outputColor:
		color.NoColor = false
	default:
		return fmt.Errorf(errInvalidOutputMode, mode, ErrInvalidOutputMode)
	}
	return nil
}

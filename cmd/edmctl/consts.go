/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package main

const (
	// environment variables prefix, e.g. EDMCTL_OUTPUT
	envPrefix = "EDMCTL"

	// configuration keys
	cfgOutput = "output"

	// output modes (flag --output)
	outputPlain = "plain"
	outputColor = "color"

	// kinds of listed core types (flag --kind)
	kindPrimitive = "primitive"
	kindPath      = "path"
	kindAll       = "all"
)

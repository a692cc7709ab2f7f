// huestep - Light and dark colour ramps from a single seed colour
//
// huestep steps hue, saturation and value around a seed colour to build
// ten-step gradients for light and dark themes.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/huestep/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

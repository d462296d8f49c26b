// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Command go-yaml is a diagnostic tool for the scanner, parser and
// loader: it dumps the token stream, the event stream, or the loaded
// document tree for a YAML input.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "4.0.0.1"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "go-yaml",
		Short:   "Inspect the go-yaml scanner, parser and loader pipeline",
		Version: version,
	}
	root.PersistentFlags().Bool("debug", false, "trace scanner tokens via YAMLRUST_DEBUG-style logging")
	root.AddCommand(newTokensCmd(), newEventsCmd(), newLoadCmd())
	return root
}

// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.yaml.in/yaml/v4"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Scan input and print one line per token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				os.Setenv("YAMLRUST_DEBUG", "1")
			}
			data, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return printTokens(cmd.OutOrStdout(), data)
		},
	}
	return cmd
}

func printTokens(w io.Writer, data []byte) error {
	scanner := yaml.NewScannerString(data)
	for {
		tok, err := scanner.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(tok.Value) > 0 {
			fmt.Fprintf(w, "%-24s %s %q\n", tok.Type, tok.StartMark, tok.Value)
		} else {
			fmt.Fprintf(w, "%-24s %s\n", tok.Type, tok.StartMark)
		}
	}
}

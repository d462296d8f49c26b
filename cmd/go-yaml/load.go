// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go.yaml.in/yaml/v4"
)

func newLoadCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "load [file]",
		Short: "Load input into the document tree and print it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			docs, err := yaml.LoadAll(data)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), docs)
			}
			for _, doc := range docs {
				fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", doc)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the loaded tree as JSON")
	return cmd
}

func printJSON(w io.Writer, docs []yaml.Yaml) error {
	for _, doc := range docs {
		enc, err := doc.MarshalJSON()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, enc, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

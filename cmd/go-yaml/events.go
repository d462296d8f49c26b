// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go.yaml.in/yaml/v4"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events [file]",
		Short: "Parse input and print one line per event",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return printEvents(cmd.OutOrStdout(), data)
		},
	}
	return cmd
}

func printEvents(w io.Writer, data []byte) error {
	parser := yaml.NewParserString(data)
	for {
		ev, err := parser.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch ev.Type {
		case yaml.SCALAR_EVENT:
			fmt.Fprintf(w, "%-16s anchor=%d tag=%q %q\n", ev.Type, ev.AnchorID, ev.Tag, ev.Value)
		case yaml.SEQUENCE_START_EVENT, yaml.MAPPING_START_EVENT:
			fmt.Fprintf(w, "%-16s anchor=%d tag=%q\n", ev.Type, ev.AnchorID, ev.Tag)
		case yaml.ALIAS_EVENT:
			fmt.Fprintf(w, "%-16s anchor=%d\n", ev.Type, ev.AnchorID)
		default:
			fmt.Fprintf(w, "%-16s\n", ev.Type)
		}
		if ev.Type == yaml.STREAM_END_EVENT {
			return nil
		}
	}
}

// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml_test

import (
	"io"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/stretchr/testify/require"
)

// TestParserEventSequence exercises the concrete scenarios from spec.md
// §8, checking the event *type* sequence the parser emits (values are
// checked separately by the loader tests).
func TestParserEventSequence(t *testing.T) {
	cases := []struct {
		name  string
		input string
		types []yaml.EventType
	}{
		{
			name:  "flow sequence",
			input: "[1, 2, 3]\n",
			types: eventTypes("StreamStart", "DocumentStart", "SequenceStart",
				"Scalar", "Scalar", "Scalar", "SequenceEnd", "DocumentEnd", "StreamEnd"),
		},
		{
			name:  "block mapping",
			input: "a: 1\nb: 2\n",
			types: eventTypes("StreamStart", "DocumentStart", "MappingStart",
				"Scalar", "Scalar", "Scalar", "Scalar", "MappingEnd", "DocumentEnd", "StreamEnd"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := eventsOf(t, tc.input)
			if len(got) != len(tc.types) {
				t.Fatalf("got %d events %v, want %d events %v", len(got), got, len(tc.types), tc.types)
			}
			for i := range got {
				require.Equal(t, tc.types[i], got[i], "event %d: got %s, want %s", i, got[i], tc.types[i])
			}
		})
	}
}

func eventsOf(t *testing.T, input string) []yaml.EventType {
	t.Helper()
	p := yaml.NewParserString([]byte(input))
	var out []yaml.EventType
	for {
		ev, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Parser.Next: %v", err)
		}
		out = append(out, ev.Type)
	}
	return out
}

func eventTypes(names ...string) []yaml.EventType {
	lookup := map[string]yaml.EventType{
		"StreamStart":   yaml.STREAM_START_EVENT,
		"StreamEnd":     yaml.STREAM_END_EVENT,
		"DocumentStart": yaml.DOCUMENT_START_EVENT,
		"DocumentEnd":   yaml.DOCUMENT_END_EVENT,
		"Alias":         yaml.ALIAS_EVENT,
		"Scalar":        yaml.SCALAR_EVENT,
		"SequenceStart": yaml.SEQUENCE_START_EVENT,
		"SequenceEnd":   yaml.SEQUENCE_END_EVENT,
		"MappingStart":  yaml.MAPPING_START_EVENT,
		"MappingEnd":    yaml.MAPPING_END_EVENT,
	}
	out := make([]yaml.EventType, len(names))
	for i, n := range names {
		out[i] = lookup[n]
	}
	return out
}

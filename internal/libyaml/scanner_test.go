// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scanTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	parser := NewParser()
	parser.SetInputString([]byte(src))
	var types []TokenType
	for {
		var tok *Token
		if err := parser.ScanToken(&tok); err != nil {
			t.Fatalf("ScanToken(%q): %v", src, err)
		}
		if tok == nil {
			break
		}
		types = append(types, tok.Type)
		if tok.Type == STREAM_END_TOKEN {
			break
		}
	}
	return types
}

func TestScanFlowSequence(t *testing.T) {
	got := scanTypes(t, "[1, 2, 3]\n")
	want := []TokenType{
		STREAM_START_TOKEN,
		FLOW_SEQUENCE_START_TOKEN,
		SCALAR_TOKEN,
		FLOW_ENTRY_TOKEN,
		SCALAR_TOKEN,
		FLOW_ENTRY_TOKEN,
		SCALAR_TOKEN,
		FLOW_SEQUENCE_END_TOKEN,
		STREAM_END_TOKEN,
	}
	require.Equal(t, len(want), len(got), "token count for %q: got %v", "[1, 2, 3]", got)
	for i := range want {
		require.Equal(t, want[i], got[i], "token %d", i)
	}
}

func TestScanBlockMapping(t *testing.T) {
	got := scanTypes(t, "a: 1\nb: 2\n")
	want := []TokenType{
		STREAM_START_TOKEN,
		BLOCK_MAPPING_START_TOKEN,
		KEY_TOKEN,
		SCALAR_TOKEN,
		VALUE_TOKEN,
		SCALAR_TOKEN,
		KEY_TOKEN,
		SCALAR_TOKEN,
		VALUE_TOKEN,
		SCALAR_TOKEN,
		BLOCK_END_TOKEN,
		STREAM_END_TOKEN,
	}
	require.Equal(t, len(want), len(got), "token count for %q: got %v", "a: 1\\nb: 2", got)
	for i := range want {
		require.Equal(t, want[i], got[i], "token %d", i)
	}
}

func TestScanBlockSequence(t *testing.T) {
	got := scanTypes(t, "- a\n- b\n")
	want := []TokenType{
		STREAM_START_TOKEN,
		BLOCK_SEQUENCE_START_TOKEN,
		BLOCK_ENTRY_TOKEN,
		SCALAR_TOKEN,
		BLOCK_ENTRY_TOKEN,
		SCALAR_TOKEN,
		BLOCK_END_TOKEN,
		STREAM_END_TOKEN,
	}
	require.Equal(t, len(want), len(got), "token count for %q: got %v", "- a\\n- b", got)
	for i := range want {
		require.Equal(t, want[i], got[i], "token %d", i)
	}
}

func TestScanAnchorAliasTag(t *testing.T) {
	got := scanTypes(t, "a: !!str &x foo\nb: *x\n")
	wantContains := []TokenType{ANCHOR_TOKEN, TAG_TOKEN, ALIAS_TOKEN}
	for _, want := range wantContains {
		found := false
		for _, tt := range got {
			if tt == want {
				found = true
				break
			}
		}
		require.True(t, found, "token stream for %q missing %s: %v", "a: !!str &x foo\\nb: *x", want, got)
	}
}

// TestScanDeterministic exercises spec.md §8's testable property that
// scanning the same input twice yields an identical token stream.
func TestScanDeterministic(t *testing.T) {
	src := "a:\n  - 1\n  - {b: [2, 3], c: \"four\"}\n"
	first := scanTypes(t, src)
	second := scanTypes(t, src)
	require.Equal(t, len(first), len(second), "token counts differ across runs")
	for i := range first {
		require.Equal(t, first[i], second[i], "token %d differs across runs", i)
	}
}

func TestFlowLevelRecursionLimit(t *testing.T) {
	src := make([]byte, 0, 10001)
	for i := 0; i < 10000; i++ {
		src = append(src, '[')
	}
	parser := NewParser()
	parser.SetInputString(src)
	var err error
	for {
		var tok *Token
		if e := parser.ScanToken(&tok); e != nil {
			err = e
			break
		}
		if tok == nil {
			break
		}
	}
	if err == nil {
		t.Fatalf("expected a recursion error scanning 10000 levels of '['")
	}
}

func TestScannerNextEOF(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("a: 1\n"))
	count := 0
	for {
		var tok *Token
		if err := parser.ScanToken(&tok); err != nil {
			t.Fatalf("ScanToken: %v", err)
		}
		if tok == nil {
			break
		}
		count++
	}
	require.True(t, count > 0, "expected at least one token")

	// A further call once the stream end has been produced must behave
	// like io.EOF at the public API layer (see Scanner.Next in yaml.go).
	var tok *Token
	if err := parser.ScanToken(&tok); err != nil {
		t.Fatalf("ScanToken after stream end: %v", err)
	}
	if tok != nil {
		t.Fatalf("ScanToken after stream end returned a token: %v", tok)
	}
}

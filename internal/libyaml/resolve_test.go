// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResolveImplicit exercises the core-schema table from spec.md §4.4.
func TestResolveImplicit(t *testing.T) {
	cases := []struct {
		in   string
		kind ResolvedKind
	}{
		{"", ResolvedNull},
		{"~", ResolvedNull},
		{"null", ResolvedNull},
		{"Null", ResolvedNull},
		{"NULL", ResolvedNull},
		{"true", ResolvedBool},
		{"True", ResolvedBool},
		{"FALSE", ResolvedBool},
		{"0xFF", ResolvedInt},
		{"0o77", ResolvedInt},
		{"123", ResolvedInt},
		{"-321", ResolvedInt},
		{"+12345", ResolvedInt},
		{"1.23", ResolvedReal},
		{"-1e4", ResolvedReal},
		{".inf", ResolvedReal},
		{"-.INF", ResolvedReal},
		{".NAN", ResolvedReal},
		{"string", ResolvedString},
		{"你好", ResolvedString},
	}
	for _, tc := range cases {
		got := ResolveImplicit([]byte(tc.in))
		require.Equal(t, tc.kind, got.Kind, "ResolveImplicit(%q).Kind", tc.in)
	}
}

func TestResolveImplicitValues(t *testing.T) {
	require.Equal(t, int64(255), ResolveImplicit([]byte("0xFF")).Int)
	require.Equal(t, int64(63), ResolveImplicit([]byte("0o77")).Int)
	require.Equal(t, int64(12345), ResolveImplicit([]byte("+12345")).Int)
	require.Equal(t, 1.23, ResolveImplicit([]byte("1.23")).Real)
	require.Equal(t, -1e4, ResolveImplicit([]byte("-1e4")).Real)
	if r := ResolveImplicit([]byte("-.inf")); !math.IsInf(r.Real, -1) {
		t.Errorf("ResolveImplicit(-.inf).Real = %v, want -Inf", r.Real)
	}
	if r := ResolveImplicit([]byte(".nan")); !math.IsNaN(r.Real) {
		t.Errorf("ResolveImplicit(.nan).Real = %v, want NaN", r.Real)
	}
}

func TestResolveExplicit(t *testing.T) {
	cases := []struct {
		tag   string
		value string
		ok    bool
	}{
		{BOOL_TAG, "true", true},
		{BOOL_TAG, "null", false},
		{INT_TAG, "100", true},
		{INT_TAG, "string", false},
		{FLOAT_TAG, "2", true},
		{FLOAT_TAG, "string", false},
		{NULL_TAG, "~", true},
		{NULL_TAG, "val", false},
		{STR_TAG, "0", true},
	}
	for _, tc := range cases {
		_, ok := ResolveExplicit(tc.tag, []byte(tc.value))
		require.Equal(t, tc.ok, ok, "ResolveExplicit(%q, %q)", tc.tag, tc.value)
	}
}

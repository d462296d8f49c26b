// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestTokensCommand(t *testing.T) {
	out := runCmd(t, "a: 1\n", "tokens")
	require.True(t, strings.Contains(out, "SCALAR"), "output %q should mention a scalar token", out)
}

func TestEventsCommand(t *testing.T) {
	out := runCmd(t, "[1, 2]\n", "events")
	require.True(t, strings.Contains(out, "sequence start"), "output %q should mention sequence start", out)
}

func TestLoadCommandJSON(t *testing.T) {
	out := runCmd(t, "a: 1\nb: [2, 3]\n", "load", "--json")
	require.True(t, strings.Contains(out, `"a": 1`), "output %q should contain a:1", out)
	require.True(t, strings.Contains(out, `"b"`), "output %q should contain key b", out)
}

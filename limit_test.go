// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml_test

import (
	"strings"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/stretchr/testify/require"
)

// TestRecursionLimit exercises spec.md §5/§8's "10,000 levels of `[`
// must fail with a recursion error, not overflow the stack" boundary
// test, and its deeply nested flow-mapping analogue.
func TestRecursionLimit(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"deeply nested sequences", strings.Repeat("[", 10000)},
		{"deeply nested mappings", "x: " + strings.Repeat("{", 10000)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := yaml.LoadAll([]byte(tc.data))
			if err == nil {
				t.Fatalf("expected a recursion error, got nil")
			}
			require.True(t, strings.Contains(err.Error(), "recursion limit exceeded"),
				"error = %q, want it to mention the recursion limit", err.Error())
		})
	}
}

// TestRecursionLimitPass checks that moderate nesting, well under the
// flow-level bound, loads successfully.
func TestRecursionLimitPass(t *testing.T) {
	data := []byte(strings.Repeat("[", 100) + "1" + strings.Repeat("]", 100))
	_, err := yaml.LoadAll(data)
	require.NoError(t, err)
}

func BenchmarkLoadNestedMaps(b *testing.B) {
	data := []byte(`a: &a [{a}` + strings.Repeat(`,{a}`, 1000*1024/4-1) + `]`)
	for i := 0; i < b.N; i++ {
		_, _ = yaml.LoadAll(data)
	}
}

// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml_test

import (
	"io"
	"testing"

	"go.yaml.in/yaml/v4"
)

// FuzzLoadAll checks that the pipeline never panics on arbitrary input and
// that scanning the same bytes twice yields identical token sequences
// (spec.md §8's "token determinism" property).
func FuzzLoadAll(f *testing.F) {
	for _, seed := range []string{
		"",
		"a: 1\nb: 2\n",
		"[1, 2, 3]\n",
		"- - a\n  - b\n- c\n",
		"a: &x 1\nb: *x\n",
		"key: |\n  hello\n  world\n",
		"{? a : b, : c}\n",
		"---\n",
		"\"unterminated",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		data := []byte(s)

		first, err1 := scanAll(data)
		second, err2 := scanAll(data)
		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("non-deterministic scan error: %v vs %v", err1, err2)
		}
		if len(first) != len(second) {
			t.Fatalf("non-deterministic token count: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("non-deterministic token %d: %+v vs %+v", i, first[i], second[i])
			}
		}

		// LoadAll must never panic, regardless of whether the input is
		// well-formed YAML.
		_, _ = yaml.LoadAll(data)
	})
}

type tokenSnapshot struct {
	typ  yaml.TokenType
	mark yaml.Mark
}

func scanAll(data []byte) ([]tokenSnapshot, error) {
	scanner := yaml.NewScannerString(data)
	var out []tokenSnapshot
	for {
		tok, err := scanner.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, tokenSnapshot{typ: tok.Type, mark: tok.StartMark})
	}
}

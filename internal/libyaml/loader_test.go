// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCoerce(t *testing.T) {
	docs, err := LoadAll([]byte("a: 1\nb: 2.2\nc: [1, 2]\n"))
	require.NoError(t, err)
	require.Equal(t, 1, len(docs), "LoadAll doc count")
	doc := docs[0]

	a, ok := doc.Index("a").AsInt()
	require.True(t, ok, "a should be an int")
	require.Equal(t, int64(1), a)

	b, ok := doc.Index("b").AsFloat()
	require.True(t, ok, "b should be a float")
	require.Equal(t, 2.2, b)

	c2, ok := doc.Index("c").At(1).AsInt()
	require.True(t, ok, "c[1] should be an int")
	require.Equal(t, int64(2), c2)

	require.True(t, doc.Index("d").At(0).IsBadValue(), "d[0] should be a bad value")
}

func TestLoadEmptyDoc(t *testing.T) {
	docs, err := LoadAll([]byte(""))
	require.NoError(t, err)
	require.Equal(t, 0, len(docs), "empty source should produce no documents")

	docs, err = LoadAll([]byte("---"))
	require.NoError(t, err)
	require.Equal(t, 1, len(docs), "LoadAll doc count")
	require.True(t, docs[0].IsNull(), "bare --- document should load as null")
}

func TestLoadMultiDoc(t *testing.T) {
	docs, err := LoadAll([]byte("'a scalar'\n---\n'a scalar'\n---\n'a scalar'\n"))
	require.NoError(t, err)
	require.Equal(t, 3, len(docs), "LoadAll doc count")
}

func TestLoadAnchorAlias(t *testing.T) {
	docs, err := LoadAll([]byte("a1: &DEFAULT\n    b1: 4\n    b2: d\na2: *DEFAULT\n"))
	require.NoError(t, err)
	doc := docs[0]
	v, ok := doc.Index("a2").Index("b1").AsInt()
	require.True(t, ok, "a2.b1 should be an int")
	require.Equal(t, int64(4), v)
}

func TestLoadUndefinedAlias(t *testing.T) {
	doc, err := Load([]byte("a1: &DEFAULT\n    b1: 4\n    b2: *DEFAULT\n"))
	require.NoError(t, err)
	require.True(t, doc.Index("a1").Index("b2").IsBadValue(), "a1.b2 should be a bad value")
}

func TestLoadPlainDatatypes(t *testing.T) {
	src := "- 'string'\n" +
		"- \"string\"\n" +
		"- string\n" +
		"- 123\n" +
		"- -321\n" +
		"- 1.23\n" +
		"- -1e4\n" +
		"- ~\n" +
		"- null\n" +
		"- true\n" +
		"- false\n" +
		"- !!str 0\n" +
		"- !!int 100\n" +
		"- !!float 2\n" +
		"- !!null ~\n" +
		"- !!bool true\n" +
		"- !!bool false\n" +
		"- 0xFF\n" +
		"- !!int string\n" +
		"- !!float string\n" +
		"- !!bool null\n" +
		"- !!null val\n" +
		"- 0o77\n"
	docs, err := LoadAll([]byte(src))
	require.NoError(t, err)
	doc := docs[0]

	str := func(i int) string { s, _ := doc.At(i).AsString(); return s }
	i64 := func(i int) int64 { v, _ := doc.At(i).AsInt(); return v }
	f64 := func(i int) float64 { v, _ := doc.At(i).AsFloat(); return v }

	require.Equal(t, "string", str(0))
	require.Equal(t, "string", str(1))
	require.Equal(t, "string", str(2))
	require.Equal(t, int64(123), i64(3))
	require.Equal(t, int64(-321), i64(4))
	require.Equal(t, 1.23, f64(5))
	require.Equal(t, -1e4, f64(6))
	require.True(t, doc.At(7).IsNull(), "index 7 should be null")
	require.True(t, doc.At(8).IsNull(), "index 8 should be null")
	bv, _ := doc.At(9).AsBool()
	require.True(t, bv, "index 9 should be true")
	bv, _ = doc.At(10).AsBool()
	require.False(t, bv, "index 10 should be false")
	require.Equal(t, "0", str(11))
	require.Equal(t, int64(100), i64(12))
	require.Equal(t, 2.0, f64(13))
	require.True(t, doc.At(14).IsNull(), "index 14 should be null")
	bv, _ = doc.At(15).AsBool()
	require.True(t, bv, "index 15 should be true")
	bv, _ = doc.At(16).AsBool()
	require.False(t, bv, "index 16 should be false")
	require.Equal(t, int64(255), i64(17))
	require.True(t, doc.At(18).IsBadValue(), "!!int string should be a bad value")
	require.True(t, doc.At(19).IsBadValue(), "!!float string should be a bad value")
	require.True(t, doc.At(20).IsBadValue(), "!!bool null should be a bad value")
	require.True(t, doc.At(21).IsBadValue(), "!!null val should be a bad value")
	require.Equal(t, int64(63), i64(22))
}

func TestLoadHashOrder(t *testing.T) {
	docs, err := LoadAll([]byte("---\nb: ~\na: ~\nc: ~\n"))
	require.NoError(t, err)
	entries, ok := docs[0].AsHash()
	require.True(t, ok, "document should be a hash")
	require.Equal(t, 3, len(entries), "hash entry count")
	wantKeys := []string{"b", "a", "c"}
	for i, want := range wantKeys {
		k, _ := entries[i].Key.AsString()
		require.Equal(t, want, k, "key %d", i)
	}
}

func TestLoadIndentationEquality(t *testing.T) {
	four := "hash:\n    with:\n        indentations\n"
	two := "hash:\n  with:\n    indentations\n"

	d1, err := Load([]byte(four))
	require.NoError(t, err)
	d2, err := Load([]byte(two))
	require.NoError(t, err)

	s1, _ := d1.Index("hash").Index("with").AsString()
	s2, _ := d2.Index("hash").Index("with").AsString()
	require.Equal(t, s2, s1)
}

// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewParser(t *testing.T) {
	parser := NewParser()

	require.NotNil(t, parser.raw_buffer, "NewParser() should initialize raw_buffer")
	require.Equal(t, input_raw_buffer_size, cap(parser.raw_buffer))

	require.NotNil(t, parser.buffer, "NewParser() should initialize buffer")
	require.Equal(t, input_buffer_size, cap(parser.buffer))
}

func TestParserDelete(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("test"))

	parser.Delete()

	require.Equal(t, 0, len(parser.input))
	require.Equal(t, 0, len(parser.buffer))
}

func TestParserSetInputString(t *testing.T) {
	parser := NewParser()
	input := []byte("key: value")

	parser.SetInputString(input)

	require.True(t, bytes.Equal(parser.input, input), "input = %q, want %q", parser.input, input)
	require.Equal(t, 0, parser.input_pos)
	require.NotNil(t, parser.read_handler, "SetInputString() should set read_handler")
}

func TestParserSetInputStringPanic(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("first"))

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			require.Regexp(t, "must set the input source only once", r)
		}()
		parser.SetInputString([]byte("second"))
	}()
}

func TestParserSetInputReader(t *testing.T) {
	parser := NewParser()
	reader := strings.NewReader("key: value")

	parser.SetInputReader(reader)

	require.NotNil(t, parser.input_reader, "SetInputReader() should set input_reader")
	require.NotNil(t, parser.read_handler, "SetInputReader() should set read_handler")
}

func TestParserSetInputReaderPanic(t *testing.T) {
	parser := NewParser()
	parser.SetInputReader(strings.NewReader("first"))

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			require.Regexp(t, "must set the input source only once", r)
		}()
		parser.SetInputReader(strings.NewReader("second"))
	}()
}

func TestParserSetEncoding(t *testing.T) {
	parser := NewParser()

	parser.SetEncoding(UTF8_ENCODING)

	require.Equal(t, UTF8_ENCODING, parser.encoding)
}

func TestParserSetEncodingPanic(t *testing.T) {
	parser := NewParser()
	parser.SetEncoding(UTF8_ENCODING)

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			require.Regexp(t, "must set the encoding only once", r)
		}()
		parser.SetEncoding(UTF16LE_ENCODING)
	}()
}

func TestNewStreamStartEvent(t *testing.T) {
	event := NewStreamStartEvent(UTF8_ENCODING)

	require.Equal(t, STREAM_START_EVENT, event.Type)
	require.Equal(t, UTF8_ENCODING, event.encoding)
}

func TestNewStreamEndEvent(t *testing.T) {
	event := NewStreamEndEvent()

	require.Equal(t, STREAM_END_EVENT, event.Type)
}

func TestNewDocumentStartEvent(t *testing.T) {
	vd := &VersionDirective{major: 1, minor: 2}
	td := []TagDirective{{handle: []byte("!"), prefix: []byte("!")}}

	event := NewDocumentStartEvent(vd, td, true)

	require.Equal(t, DOCUMENT_START_EVENT, event.Type)
	require.Equal(t, vd, event.version_directive)
	require.Equal(t, 1, len(event.tag_directives))
	require.True(t, event.Implicit, "NewDocumentStartEvent() Implicit should be true")
}

func TestNewDocumentEndEvent(t *testing.T) {
	event := NewDocumentEndEvent(false)

	require.Equal(t, DOCUMENT_END_EVENT, event.Type)
	require.False(t, event.Implicit, "NewDocumentEndEvent() Implicit should be false")
}

func TestNewAliasEvent(t *testing.T) {
	anchor := []byte("myanchor")
	event := NewAliasEvent(anchor)

	require.Equal(t, ALIAS_EVENT, event.Type)
	require.True(t, bytes.Equal(event.Anchor, anchor), "Anchor = %q, want %q", event.Anchor, anchor)
}

func TestNewScalarEvent(t *testing.T) {
	anchor := []byte("anchor")
	tag := []byte("tag")
	value := []byte("value")

	event := NewScalarEvent(anchor, tag, value, true, false, PLAIN_SCALAR_STYLE)

	require.Equal(t, SCALAR_EVENT, event.Type)
	require.True(t, bytes.Equal(event.Anchor, anchor), "Anchor = %q, want %q", event.Anchor, anchor)
	require.True(t, bytes.Equal(event.Tag, tag), "Tag = %q, want %q", event.Tag, tag)
	require.True(t, bytes.Equal(event.Value, value), "Value = %q, want %q", event.Value, value)
	require.True(t, event.Implicit, "NewScalarEvent() Implicit should be true")
	require.False(t, event.quoted_implicit, "NewScalarEvent() quoted_implicit should be false")
	require.Equal(t, PLAIN_SCALAR_STYLE, event.ScalarStyle())
}

func TestNewSequenceStartEvent(t *testing.T) {
	anchor := []byte("anchor")
	tag := []byte("tag")

	event := NewSequenceStartEvent(anchor, tag, true, BLOCK_SEQUENCE_STYLE)

	require.Equal(t, SEQUENCE_START_EVENT, event.Type)
	require.True(t, bytes.Equal(event.Anchor, anchor), "Anchor = %q, want %q", event.Anchor, anchor)
	require.True(t, bytes.Equal(event.Tag, tag), "Tag = %q, want %q", event.Tag, tag)
	require.True(t, event.Implicit, "NewSequenceStartEvent() Implicit should be true")
	require.Equal(t, BLOCK_SEQUENCE_STYLE, event.SequenceStyle())
}

func TestNewSequenceEndEvent(t *testing.T) {
	event := NewSequenceEndEvent()

	require.Equal(t, SEQUENCE_END_EVENT, event.Type)
}

func TestNewMappingStartEvent(t *testing.T) {
	anchor := []byte("anchor")
	tag := []byte("tag")

	event := NewMappingStartEvent(anchor, tag, false, FLOW_MAPPING_STYLE)

	require.Equal(t, MAPPING_START_EVENT, event.Type)
	require.True(t, bytes.Equal(event.Anchor, anchor), "Anchor = %q, want %q", event.Anchor, anchor)
	require.True(t, bytes.Equal(event.Tag, tag), "Tag = %q, want %q", event.Tag, tag)
	require.False(t, event.Implicit, "NewMappingStartEvent() Implicit should be false")
	require.Equal(t, FLOW_MAPPING_STYLE, event.MappingStyle())
}

func TestNewMappingEndEvent(t *testing.T) {
	event := NewMappingEndEvent()

	require.Equal(t, MAPPING_END_EVENT, event.Type)
}

func TestEventDelete(t *testing.T) {
	event := NewScalarEvent([]byte("a"), []byte("t"), []byte("v"), true, false, PLAIN_SCALAR_STYLE)

	event.Delete()

	require.Equal(t, NO_EVENT, event.Type)
	require.Equal(t, 0, len(event.Anchor))
}

func TestParserInsertToken(t *testing.T) {
	parser := NewParser()
	token := Token{Type: SCALAR_TOKEN, Value: []byte("test")}

	parser.insertToken(-1, &token)

	require.Equal(t, 1, len(parser.tokens))
	require.Equal(t, SCALAR_TOKEN, parser.tokens[0].Type)
}

func TestParserInsertTokenAtPosition(t *testing.T) {
	parser := NewParser()
	token1 := Token{Type: KEY_TOKEN}
	token2 := Token{Type: VALUE_TOKEN}
	token3 := Token{Type: SCALAR_TOKEN}

	parser.insertToken(-1, &token1)
	parser.insertToken(-1, &token3)
	parser.insertToken(1, &token2)

	require.Equal(t, 3, len(parser.tokens))
	require.Equal(t, KEY_TOKEN, parser.tokens[0].Type)
	require.Equal(t, VALUE_TOKEN, parser.tokens[1].Type)
	require.Equal(t, SCALAR_TOKEN, parser.tokens[2].Type)
}

//
// Copyright (c) 2011-2019 Canonical Ltd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package yaml implements a pure, dependency-light YAML 1.2 scanner,
// parser and loader for the Go language.
//
// Source code and other details for the project are available at GitHub:
//
//	https://github.com/yaml/go-yaml
package yaml

import (
	"io"

	"go.yaml.in/yaml/v4/internal/libyaml"
)

// Re-export the data model from internal/libyaml so callers never need
// to import it directly.
type (
	Mark         = libyaml.Mark
	Token        = libyaml.Token
	TokenType    = libyaml.TokenType
	Event        = libyaml.Event
	EventType    = libyaml.EventType
	Yaml         = libyaml.Yaml
	Kind         = libyaml.Kind
	HashEntry    = libyaml.HashEntry
	ScalarStyle  = libyaml.ScalarStyle
	ResolvedKind = libyaml.ResolvedKind
)

// Re-export node-kind constants.
const (
	BadNode    = libyaml.BadNode
	NullNode   = libyaml.NullNode
	BoolNode   = libyaml.BoolNode
	IntNode    = libyaml.IntNode
	RealNode   = libyaml.RealNode
	StringNode = libyaml.StringNode
	ArrayNode  = libyaml.ArrayNode
	HashNode   = libyaml.HashNode
	AliasNode  = libyaml.AliasNode
)

// Re-export event-type constants.
const (
	NO_EVENT             = libyaml.NO_EVENT
	STREAM_START_EVENT   = libyaml.STREAM_START_EVENT
	STREAM_END_EVENT     = libyaml.STREAM_END_EVENT
	DOCUMENT_START_EVENT = libyaml.DOCUMENT_START_EVENT
	DOCUMENT_END_EVENT   = libyaml.DOCUMENT_END_EVENT
	ALIAS_EVENT          = libyaml.ALIAS_EVENT
	SCALAR_EVENT         = libyaml.SCALAR_EVENT
	SEQUENCE_START_EVENT = libyaml.SEQUENCE_START_EVENT
	SEQUENCE_END_EVENT   = libyaml.SEQUENCE_END_EVENT
	MAPPING_START_EVENT  = libyaml.MAPPING_START_EVENT
	MAPPING_END_EVENT    = libyaml.MAPPING_END_EVENT
)

// Re-export error types.
type (
	MarkedYAMLError = libyaml.MarkedYAMLError
	ParserError     = libyaml.ParserError
	ScannerError    = libyaml.ScannerError
	ReaderError     = libyaml.ReaderError
)

// Scanner turns a byte stream into a sequence of Tokens. See spec.md
// §4.1 for the scanning rules it implements.
type Scanner struct {
	parser libyaml.Parser
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{parser: libyaml.NewParser()}
	s.parser.SetInputReader(r)
	return s
}

// NewScannerString returns a Scanner reading from data.
func NewScannerString(data []byte) *Scanner {
	s := &Scanner{parser: libyaml.NewParser()}
	s.parser.SetInputString(data)
	return s
}

// Next returns the next Token, or io.EOF once the stream is exhausted.
func (s *Scanner) Next() (Token, error) {
	var tok *libyaml.Token
	if err := s.parser.ScanToken(&tok); err != nil {
		return Token{}, err
	}
	if tok == nil {
		return Token{}, io.EOF
	}
	return *tok, nil
}

// Parser drives the full scanner+parser pipeline, producing a stream of
// Events. See spec.md §4.2 for the state machine it implements.
type Parser struct {
	parser libyaml.Parser
}

// NewParser returns a Parser reading from r.
func NewParser(r io.Reader) *Parser {
	p := &Parser{parser: libyaml.NewParser()}
	p.parser.SetInputReader(r)
	return p
}

// NewParserString returns a Parser reading from data.
func NewParserString(data []byte) *Parser {
	p := &Parser{parser: libyaml.NewParser()}
	p.parser.SetInputString(data)
	return p
}

// Next returns the next Event, or io.EOF once the stream is exhausted.
func (p *Parser) Next() (Event, error) {
	var event libyaml.Event
	if err := p.parser.Parse(&event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// Load parses the first YAML document in data and returns its tree.
func Load(data []byte) (Yaml, error) {
	return libyaml.Load(data)
}

// LoadAll parses every YAML document in data and returns their trees.
func LoadAll(data []byte) ([]Yaml, error) {
	return libyaml.LoadAll(data)
}

// LoadReader is LoadAll reading from r instead of a byte slice.
func LoadReader(r io.Reader) ([]Yaml, error) {
	return libyaml.LoadReader(r)
}

// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Loader: consumes the parser's event stream and materializes a document
// tree, resolving anchors/aliases and inferring scalar types.

package libyaml

import "io"

// Kind identifies the variant held by a Yaml value.
type Kind int8

const (
	BadNode Kind = iota
	NullNode
	BoolNode
	IntNode
	RealNode
	StringNode
	ArrayNode
	HashNode
	AliasNode
)

// HashEntry is one key/value pair of a mapping node. Order is preserved;
// the core schema does not sort keys.
type HashEntry struct {
	Key   Yaml
	Value Yaml
}

// Yaml is the loader's document tree: a tagged union over the core
// schema's scalar kinds plus sequences and mappings. A document tree is a
// value type; aliases are resolved by copying the anchored subtree, never
// by sharing a reference.
type Yaml struct {
	Kind Kind
	Mark Mark

	boolValue   bool
	intValue    int64
	realValue   float64
	stringValue string
	arrayValue  []Yaml
	hashValue   []HashEntry
}

func (y Yaml) IsBadValue() bool { return y.Kind == BadNode }
func (y Yaml) IsNull() bool     { return y.Kind == NullNode }

func (y Yaml) AsBool() (bool, bool)     { return y.boolValue, y.Kind == BoolNode }
func (y Yaml) AsInt() (int64, bool)     { return y.intValue, y.Kind == IntNode }
func (y Yaml) AsFloat() (float64, bool) { return y.realValue, y.Kind == RealNode }
func (y Yaml) AsString() (string, bool) {
	return y.stringValue, y.Kind == StringNode
}
func (y Yaml) AsArray() ([]Yaml, bool)     { return y.arrayValue, y.Kind == ArrayNode }
func (y Yaml) AsHash() ([]HashEntry, bool) { return y.hashValue, y.Kind == HashNode }

// Index looks up key in a hash node by string equality; returns a
// BadNode value if y is not a hash or the key is absent.
func (y Yaml) Index(key string) Yaml {
	if y.Kind != HashNode {
		return Yaml{Kind: BadNode}
	}
	for _, e := range y.hashValue {
		if s, ok := e.Key.AsString(); ok && s == key {
			return e.Value
		}
	}
	return Yaml{Kind: BadNode}
}

// At returns the i'th element of a sequence node, or a BadNode value if
// y is not a sequence or i is out of range.
func (y Yaml) At(i int) Yaml {
	if y.Kind != ArrayNode || i < 0 || i >= len(y.arrayValue) {
		return Yaml{Kind: BadNode}
	}
	return y.arrayValue[i]
}

func newNull(mark Mark) Yaml   { return Yaml{Kind: NullNode, Mark: mark} }
func newBad(mark Mark) Yaml    { return Yaml{Kind: BadNode, Mark: mark} }
func newBool(v bool, mark Mark) Yaml {
	return Yaml{Kind: BoolNode, Mark: mark, boolValue: v}
}
func newInt(v int64, mark Mark) Yaml {
	return Yaml{Kind: IntNode, Mark: mark, intValue: v}
}
func newReal(v float64, mark Mark) Yaml {
	return Yaml{Kind: RealNode, Mark: mark, realValue: v}
}
func newString(v string, mark Mark) Yaml {
	return Yaml{Kind: StringNode, Mark: mark, stringValue: v}
}

// loaderFrame is one entry of the document stack: a partial container
// under construction plus the anchor ID it was registered under (0 if
// none).
type loaderFrame struct {
	node     Yaml
	anchorID int
}

// Loader builds a document tree from a parser's event stream.
type Loader struct {
	docs      []Yaml
	docStack  []loaderFrame
	keyStack  []Yaml
	anchorMap map[int]Yaml
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{anchorMap: make(map[int]Yaml)}
}

// OnEvent feeds one parser event to the loader. It implements the
// event-receiver contract described in spec.md §6 ("a receiver interface
// with a single method").
func (l *Loader) OnEvent(event *Event, mark Mark) {
	switch event.Type {
	case DOCUMENT_END_EVENT:
		switch len(l.docStack) {
		case 0:
			l.docs = append(l.docs, newBad(mark))
		case 1:
			top := l.docStack[0]
			l.docStack = l.docStack[:0]
			l.docs = append(l.docs, top.node)
		default:
			// Unbalanced stack indicates a parser bug upstream; surface
			// as a bad value rather than panicking the loader.
			l.docs = append(l.docs, newBad(mark))
			l.docStack = l.docStack[:0]
		}

	case SEQUENCE_START_EVENT:
		l.docStack = append(l.docStack, loaderFrame{
			node:     Yaml{Kind: ArrayNode, Mark: mark},
			anchorID: event.AnchorID,
		})

	case SEQUENCE_END_EVENT:
		frame := l.pop()
		l.insert(frame)

	case MAPPING_START_EVENT:
		l.docStack = append(l.docStack, loaderFrame{
			node:     Yaml{Kind: HashNode, Mark: mark},
			anchorID: event.AnchorID,
		})
		l.keyStack = append(l.keyStack, newBad(mark))

	case MAPPING_END_EVENT:
		l.keyStack = l.keyStack[:len(l.keyStack)-1]
		frame := l.pop()
		l.insert(frame)

	case SCALAR_EVENT:
		l.insert(loaderFrame{node: l.resolveScalar(event, mark), anchorID: event.AnchorID})

	case ALIAS_EVENT:
		target, ok := l.anchorMap[event.AnchorID]
		if !ok {
			l.insert(loaderFrame{node: newBad(mark)})
			return
		}
		l.insert(loaderFrame{node: target})
	}
}

func (l *Loader) resolveScalar(event *Event, mark Mark) Yaml {
	if event.ScalarStyle() != PLAIN_SCALAR_STYLE {
		return newString(string(event.Value), mark)
	}
	if tag := string(event.Tag); tag != "" {
		switch tag {
		case NULL_TAG, BOOL_TAG, INT_TAG, FLOAT_TAG:
			if r, ok := ResolveExplicit(tag, event.Value); ok {
				return fromResolved(r, mark)
			}
			return newBad(mark)
		default:
			// STR_TAG and any unrecognized tag: treat the scalar as a
			// plain string (mirrors the core schema's catch-all).
			return newString(string(event.Value), mark)
		}
	}
	return fromResolved(ResolveImplicit(event.Value), mark)
}

func fromResolved(r Resolved, mark Mark) Yaml {
	switch r.Kind {
	case ResolvedNull:
		return newNull(mark)
	case ResolvedBool:
		return newBool(r.Bool, mark)
	case ResolvedInt:
		return newInt(r.Int, mark)
	case ResolvedReal:
		return newReal(r.Real, mark)
	default:
		return newString(r.String, mark)
	}
}

func (l *Loader) pop() loaderFrame {
	frame := l.docStack[len(l.docStack)-1]
	l.docStack = l.docStack[:len(l.docStack)-1]
	return frame
}

// insert registers frame's anchor (if any) and attaches it to the
// enclosing container, or pushes it as the new top if the stack is
// empty.
func (l *Loader) insert(frame loaderFrame) {
	if frame.anchorID > 0 {
		l.anchorMap[frame.anchorID] = frame.node
	}
	if len(l.docStack) == 0 {
		l.docStack = append(l.docStack, frame)
		return
	}
	parent := &l.docStack[len(l.docStack)-1]
	switch parent.node.Kind {
	case ArrayNode:
		parent.node.arrayValue = append(parent.node.arrayValue, frame.node)
	case HashNode:
		key := &l.keyStack[len(l.keyStack)-1]
		if key.IsBadValue() {
			*key = frame.node
		} else {
			parent.node.hashValue = append(parent.node.hashValue, HashEntry{Key: *key, Value: frame.node})
			*key = newBad(frame.node.Mark)
		}
	}
}

// Load parses a single document from data and builds its tree.
func Load(data []byte) (y Yaml, err error) {
	docs, err := LoadAll(data)
	if err != nil {
		return Yaml{}, err
	}
	if len(docs) == 0 {
		return newNull(Mark{}), nil
	}
	return docs[0], nil
}

// LoadAll parses every document in data and builds their trees.
func LoadAll(data []byte) ([]Yaml, error) {
	parser := NewParser()
	parser.SetInputString(data)
	return drive(&parser)
}

// LoadReader is LoadAll reading from r instead of a byte slice.
func LoadReader(r io.Reader) ([]Yaml, error) {
	parser := NewParser()
	parser.SetInputReader(r)
	return drive(&parser)
}

func drive(parser *Parser) ([]Yaml, error) {
	loader := NewLoader()
	var event Event
	for {
		if err := parser.Parse(&event); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		loader.OnEvent(&event, event.StartMark)
		if event.Type == STREAM_END_EVENT {
			break
		}
	}
	return loader.docs, nil
}

// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON projects a Yaml tree to its JSON equivalent: hashes become
// objects, arrays become arrays, scalars become the matching JSON
// primitive. A bad value has no JSON representation and marshals as
// null; its mark is not included in the output.
func (y Yaml) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := y.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y Yaml) writeJSON(buf *bytes.Buffer) error {
	switch y.Kind {
	case NullNode, BadNode:
		buf.WriteString("null")
	case BoolNode:
		if y.boolValue {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case IntNode:
		fmt.Fprintf(buf, "%d", y.intValue)
	case RealNode:
		fmt.Fprintf(buf, "%v", y.realValue)
	case StringNode:
		enc, err := json.Marshal(y.stringValue)
		if err != nil {
			return err
		}
		buf.Write(enc)
	case ArrayNode:
		buf.WriteByte('[')
		for i, elem := range y.arrayValue {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := elem.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case HashNode:
		buf.WriteByte('{')
		for i, entry := range y.hashValue {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, ok := entry.Key.AsString()
			if !ok {
				key = fmt.Sprint(entry.Key)
			}
			enc, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(enc)
			buf.WriteByte(':')
			if err := entry.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	return nil
}

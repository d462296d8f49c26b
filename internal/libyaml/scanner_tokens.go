// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Token-producing routines for the scanner: one fetchX per token kind,
// plus the scalar scanners and the indentation/simple-key bookkeeping
// they all share.

package libyaml

import "bytes"

func (parser *Parser) addToken(pos int, token Token) {
	traceToken(&token)
	parser.insertToken(pos, &token)
}

// --- indentation ----------------------------------------------------

// rollIndent pushes a new indentation level when column exceeds the
// current one, emitting a BLOCK-SEQUENCE-START or BLOCK-MAPPING-START.
func (parser *Parser) rollIndent(column, number int, typ TokenType, mark Mark) {
	if parser.flow_level > 0 {
		return
	}
	if parser.indentLevel() < column {
		parser.indents = append(parser.indents, indentEntry{indent: column, needs_block_end: true})
		tok := Token{Type: typ, StartMark: mark, EndMark: mark}
		if number == -1 {
			parser.addToken(-1, tok)
		} else {
			parser.addToken(number-parser.tokens_parsed, tok)
		}
	}
}

// unrollIndentTo pops indentation levels deeper than column, emitting a
// BLOCK-END for each.
func (parser *Parser) unrollIndentTo(column int) error {
	if parser.flow_level > 0 {
		return nil
	}
	for parser.indentLevel() > column {
		parser.indents = parser.indents[:len(parser.indents)-1]
		parser.addToken(-1, Token{Type: BLOCK_END_TOKEN, StartMark: parser.mark, EndMark: parser.mark})
	}
	return nil
}

// unrollIndent pops every remaining indentation level when called with -1;
// used at stream end, before directives and at document markers.
func (parser *Parser) unrollIndent(column int) error {
	return parser.unrollIndentTo(column)
}

// --- simple keys ------------------------------------------------------

func (parser *Parser) saveSimpleKey() error {
	required := parser.flow_level == 0 && parser.indentLevel() == parser.mark.Column
	if parser.simple_key_allowed {
		if err := parser.removeSimpleKey(); err != nil {
			return err
		}
		sk := simpleKey{
			possible:     true,
			required:     required,
			token_number: parser.tokens_parsed + len(parser.tokens) - parser.tokens_head,
			mark:         parser.mark,
		}
		if n := len(parser.simple_keys); n > 0 {
			parser.simple_keys[n-1] = sk
		} else {
			parser.simple_keys = append(parser.simple_keys, sk)
		}
	}
	return nil
}

func (parser *Parser) removeSimpleKey() error {
	if len(parser.simple_keys) == 0 {
		return nil
	}
	sk := &parser.simple_keys[len(parser.simple_keys)-1]
	if sk.possible && sk.required {
		return parser.setScannerError("while scanning a simple key", sk.mark,
			"could not find expected ':'")
	}
	sk.possible = false
	return nil
}

// maxFlowLevel bounds flow-collection nesting depth (8-bit saturating,
// spec.md §5); exceeding it is a fatal error rather than a stack
// overflow from unbounded recursion in scalar/token scanning.
const maxFlowLevel = 255

func (parser *Parser) increaseFlowLevel() error {
	if parser.flow_level >= maxFlowLevel {
		return parser.setScannerError("while scanning a flow node", parser.mark, "recursion limit exceeded")
	}
	parser.simple_keys = append(parser.simple_keys, simpleKey{})
	parser.flow_level++
	return nil
}

func (parser *Parser) decreaseFlowLevel() {
	if parser.flow_level > 0 {
		parser.flow_level--
		parser.simple_keys = parser.simple_keys[:len(parser.simple_keys)-1]
	}
}

// --- scan to next token: skip blanks, comments and line breaks --------

func (parser *Parser) scanToNextToken() error {
	for {
		if err := parser.cache(1); err != nil {
			return err
		}
		for parser.peek(0) == ' ' || ((parser.flow_level > 0 || !parser.simple_key_allowed) && parser.peek(0) == '\t') {
			parser.skip()
			if err := parser.cache(1); err != nil {
				return err
			}
		}
		if parser.peek(0) == '#' {
			for !isBreakz(parser.peek(0)) {
				parser.skip()
				if err := parser.cache(1); err != nil {
					return err
				}
			}
		}
		if !isBreak(parser.peek(0)) {
			break
		}
		if err := parser.cache(2); err != nil {
			return err
		}
		parser.skipLine()
		if parser.flow_level == 0 {
			parser.simple_key_allowed = true
		}
	}
	return nil
}

// --- STREAM-START / STREAM-END -----------------------------------------

func (parser *Parser) fetchStreamStart() error {
	if parser.peek(0) == 0xEF && parser.peek(1) == 0xBB && parser.peek(2) == 0xBF {
		parser.buffer_pos += 3
		parser.mark.Index += 3
	}
	parser.indents = parser.indents[:0]
	parser.simple_key_allowed = true
	parser.stream_start_produced = true
	mark := parser.mark
	parser.addToken(-1, Token{Type: STREAM_START_TOKEN, StartMark: mark, EndMark: mark, encoding: parser.encoding})
	return nil
}

func (parser *Parser) fetchStreamEnd() error {
	if err := parser.unrollIndent(-1); err != nil {
		return err
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false
	mark := parser.mark
	parser.addToken(-1, Token{Type: STREAM_END_TOKEN, StartMark: mark, EndMark: mark})
	return nil
}

// --- %YAML / %TAG directives --------------------------------------------

func (parser *Parser) fetchDirective() error {
	if err := parser.unrollIndent(-1); err != nil {
		return err
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false

	start_mark := parser.mark
	parser.skip()

	var name []byte
	for isAlpha(parser.peek(0)) {
		name = parser.read(name)
		if err := parser.cache(1); err != nil {
			return err
		}
	}

	var tok Token
	switch string(name) {
	case "YAML":
		tok = Token{Type: VERSION_DIRECTIVE_TOKEN}
		if err := parser.scanVersionDirectiveValue(start_mark, &tok); err != nil {
			return err
		}
	case "TAG":
		tok = Token{Type: TAG_DIRECTIVE_TOKEN}
		if err := parser.scanTagDirectiveValue(start_mark, &tok); err != nil {
			return err
		}
	default:
		return parser.setScannerError("while scanning a directive", start_mark, "found unknown directive name")
	}
	for isBlank(parser.peek(0)) {
		parser.skip()
		if err := parser.cache(1); err != nil {
			return err
		}
	}
	if parser.peek(0) == '#' {
		for !isBreakz(parser.peek(0)) {
			parser.skip()
			if err := parser.cache(1); err != nil {
				return err
			}
		}
	}
	if !isBreakz(parser.peek(0)) {
		return parser.setScannerError("while scanning a directive", start_mark, "did not find expected comment or line break")
	}
	if err := parser.cache(2); err != nil {
		return err
	}
	if isBreak(parser.peek(0)) {
		parser.skipLine()
	}
	tok.StartMark = start_mark
	tok.EndMark = parser.mark
	parser.addToken(-1, tok)
	return nil
}

func (parser *Parser) scanVersionDirectiveValue(start_mark Mark, tok *Token) error {
	for isBlank(parser.peek(0)) {
		parser.skip()
		if err := parser.cache(1); err != nil {
			return err
		}
	}
	major, err := parser.scanVersionDirectiveNumber(start_mark)
	if err != nil {
		return err
	}
	if parser.peek(0) != '.' {
		return parser.setScannerError("while scanning a %YAML directive", start_mark, "did not find expected digit or '.' character")
	}
	parser.skip()
	minor, err := parser.scanVersionDirectiveNumber(start_mark)
	if err != nil {
		return err
	}
	tok.major = int8(major)
	tok.minor = int8(minor)
	return nil
}

func (parser *Parser) scanVersionDirectiveNumber(start_mark Mark) (int, error) {
	value := 0
	length := 0
	for isDigit(parser.peek(0)) {
		length++
		if length > 9 {
			return 0, parser.setScannerError("while scanning a %YAML directive", start_mark, "found extremely long version number")
		}
		value = value*10 + asDigit(parser.peek(0))
		parser.skip()
		if err := parser.cache(1); err != nil {
			return 0, err
		}
	}
	if length == 0 {
		return 0, parser.setScannerError("while scanning a %YAML directive", start_mark, "did not find expected version number")
	}
	return value, nil
}

func (parser *Parser) scanTagDirectiveValue(start_mark Mark, tok *Token) error {
	for isBlank(parser.peek(0)) {
		parser.skip()
		if err := parser.cache(1); err != nil {
			return err
		}
	}
	handle, err := parser.scanTagHandle(start_mark)
	if err != nil {
		return err
	}
	if !isBlank(parser.peek(0)) {
		return parser.setScannerError("while scanning a %TAG directive", start_mark, "did not find expected whitespace")
	}
	for isBlank(parser.peek(0)) {
		parser.skip()
		if err := parser.cache(1); err != nil {
			return err
		}
	}
	prefix, err := parser.scanTagSuffix(false, start_mark)
	if err != nil {
		return err
	}
	if !isBlankz(parser.peek(0)) {
		return parser.setScannerError("while scanning a %TAG directive", start_mark, "did not find expected whitespace or line break")
	}
	tok.Value = handle
	tok.prefix = prefix
	return nil
}

// --- document markers, indicators --------------------------------------

func (parser *Parser) fetchDocumentIndicator(typ TokenType) error {
	if err := parser.unrollIndent(-1); err != nil {
		return err
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false
	start_mark := parser.mark
	parser.skip()
	parser.skip()
	parser.skip()
	parser.addToken(-1, Token{Type: typ, StartMark: start_mark, EndMark: parser.mark})
	return nil
}

func (parser *Parser) fetchFlowCollectionStart(typ TokenType) error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	if err := parser.increaseFlowLevel(); err != nil {
		return err
	}
	parser.simple_key_allowed = true
	start_mark := parser.mark
	parser.skip()
	parser.addToken(-1, Token{Type: typ, StartMark: start_mark, EndMark: parser.mark})
	return nil
}

func (parser *Parser) fetchFlowCollectionEnd(typ TokenType) error {
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.decreaseFlowLevel()
	parser.simple_key_allowed = false
	start_mark := parser.mark
	parser.skip()
	parser.addToken(-1, Token{Type: typ, StartMark: start_mark, EndMark: parser.mark})
	return nil
}

func (parser *Parser) fetchFlowEntry() error {
	parser.simple_key_allowed = true
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	start_mark := parser.mark
	parser.skip()
	parser.addToken(-1, Token{Type: FLOW_ENTRY_TOKEN, StartMark: start_mark, EndMark: parser.mark})
	return nil
}

func (parser *Parser) fetchBlockEntry() error {
	if parser.flow_level == 0 {
		if !parser.simple_key_allowed {
			return parser.setScannerError("", parser.mark, "block sequence entries are not allowed in this context")
		}
		parser.rollIndent(parser.mark.Column, -1, BLOCK_SEQUENCE_START_TOKEN, parser.mark)
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = true
	start_mark := parser.mark
	parser.skip()
	parser.addToken(-1, Token{Type: BLOCK_ENTRY_TOKEN, StartMark: start_mark, EndMark: parser.mark})
	return nil
}

func (parser *Parser) fetchKey() error {
	if parser.flow_level == 0 {
		if !parser.simple_key_allowed {
			return parser.setScannerError("", parser.mark, "mapping keys are not allowed in this context")
		}
		parser.rollIndent(parser.mark.Column, -1, BLOCK_MAPPING_START_TOKEN, parser.mark)
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = parser.flow_level == 0
	start_mark := parser.mark
	parser.skip()
	parser.addToken(-1, Token{Type: KEY_TOKEN, StartMark: start_mark, EndMark: parser.mark})
	return nil
}

func (parser *Parser) fetchValue() error {
	if len(parser.simple_keys) > 0 {
		sk := &parser.simple_keys[len(parser.simple_keys)-1]
		if sk.possible {
			parser.addToken(sk.token_number-parser.tokens_parsed,
				Token{Type: KEY_TOKEN, StartMark: sk.mark, EndMark: sk.mark})
			if parser.flow_level == 0 {
				parser.rollIndent(sk.mark.Column, sk.token_number, BLOCK_MAPPING_START_TOKEN, sk.mark)
			}
			sk.possible = false
			parser.simple_key_allowed = false
			start_mark := parser.mark
			parser.skip()
			parser.addToken(-1, Token{Type: VALUE_TOKEN, StartMark: start_mark, EndMark: parser.mark})
			return nil
		}
	}
	if parser.flow_level == 0 {
		if !parser.simple_key_allowed {
			return parser.setScannerError("", parser.mark, "mapping values are not allowed in this context")
		}
		parser.rollIndent(parser.mark.Column, -1, BLOCK_MAPPING_START_TOKEN, parser.mark)
	}
	parser.simple_key_allowed = parser.flow_level == 0
	start_mark := parser.mark
	parser.skip()
	parser.addToken(-1, Token{Type: VALUE_TOKEN, StartMark: start_mark, EndMark: parser.mark})
	return nil
}

// --- anchors, aliases, tags ---------------------------------------------

func (parser *Parser) fetchAnchor(typ TokenType) error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false
	start_mark := parser.mark
	parser.skip()
	var value []byte
	for isAnchorChar(parser.peek(0)) {
		value = parser.read(value)
		if err := parser.cache(1); err != nil {
			return err
		}
	}
	if len(value) == 0 {
		return parser.setScannerError("while scanning an anchor or alias", start_mark, "did not find expected alphabetic or numeric character")
	}
	parser.addToken(-1, Token{Type: typ, StartMark: start_mark, EndMark: parser.mark, Value: value})
	return nil
}

// fetchTag scans a TAG_TOKEN: "!" (non-specific), "!!suffix" (secondary
// handle), "!word!suffix" (named handle), "!suffix" (primary handle
// shorthand), or "!<verbatim-uri>".
func (parser *Parser) fetchTag() error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false
	start_mark := parser.mark
	parser.skip() // leading '!'

	if parser.peek(0) == '<' {
		parser.skip()
		suffix, err := parser.scanTagSuffix(true, start_mark)
		if err != nil {
			return err
		}
		if parser.peek(0) != '>' {
			return parser.setScannerError("while scanning a tag", start_mark, "did not find expected '>'")
		}
		parser.skip()
		parser.addToken(-1, Token{Type: TAG_TOKEN, StartMark: start_mark, EndMark: parser.mark, suffix: suffix})
		return nil
	}

	if isWordChar(parser.peek(0)) {
		save_pos, save_mark := parser.buffer_pos, parser.mark
		var word []byte
		for isWordChar(parser.peek(0)) {
			word = parser.read(word)
			if err := parser.cache(1); err != nil {
				return err
			}
		}
		if parser.peek(0) == '!' {
			parser.skip()
			suffix, err := parser.scanTagSuffix(false, start_mark)
			if err != nil {
				return err
			}
			handle := append([]byte{'!'}, word...)
			handle = append(handle, '!')
			parser.addToken(-1, Token{Type: TAG_TOKEN, StartMark: start_mark, EndMark: parser.mark, Value: handle, suffix: suffix})
			return nil
		}
		parser.buffer_pos, parser.mark = save_pos, save_mark
	}

	if parser.peek(0) == '!' {
		parser.skip()
		suffix, err := parser.scanTagSuffix(false, start_mark)
		if err != nil {
			return err
		}
		parser.addToken(-1, Token{Type: TAG_TOKEN, StartMark: start_mark, EndMark: parser.mark, Value: []byte("!!"), suffix: suffix})
		return nil
	}

	if isBlankz(parser.peek(0)) {
		parser.addToken(-1, Token{Type: TAG_TOKEN, StartMark: start_mark, EndMark: parser.mark, Value: []byte("!")})
		return nil
	}

	suffix, err := parser.scanTagSuffix(false, start_mark)
	if err != nil {
		return err
	}
	parser.addToken(-1, Token{Type: TAG_TOKEN, StartMark: start_mark, EndMark: parser.mark, Value: []byte("!"), suffix: suffix})
	return nil
}

// scanTagHandle scans the handle of a %TAG directive: "!", "!!", or
// "!word!". Unlike fetchTag's shorthand case, a bare trailing suffix is
// never valid here.
func (parser *Parser) scanTagHandle(start_mark Mark) ([]byte, error) {
	if parser.peek(0) != '!' {
		return nil, parser.setScannerError("while scanning a tag directive", start_mark, "did not find expected '!'")
	}
	value := parser.read([]byte(nil))
	for isWordChar(parser.peek(0)) {
		value = parser.read(value)
		if err := parser.cache(1); err != nil {
			return nil, err
		}
	}
	if parser.peek(0) == '!' {
		value = parser.read(value)
	} else if len(value) != 1 {
		return nil, parser.setScannerError("while scanning a tag directive", start_mark, "did not find expected '!'")
	}
	return value, nil
}

// scanTagSuffix scans a (possibly percent-escaped) tag suffix or URI.
// allowEmpty, used for the verbatim !<...> form, permits a zero-length
// result and accepts any non-blank byte up to the closing '>'.
func (parser *Parser) scanTagSuffix(allowEmpty bool, start_mark Mark) ([]byte, error) {
	var value []byte
	for isURIChar(parser.peek(0)) || (allowEmpty && parser.peek(0) != '>' && !isBlankz(parser.peek(0))) {
		if parser.peek(0) == '%' {
			parser.skip()
			hi, lo := parser.peek(0), parser.peek(1)
			if !isHex(hi) || !isHex(lo) {
				return nil, parser.setScannerError("while parsing a tag", start_mark, "did not find URI escaped octet")
			}
			value = append(value, byte(asHex(hi)*16+asHex(lo)))
			parser.skip()
			parser.skip()
		} else {
			value = parser.read(value)
		}
		if err := parser.cache(1); err != nil {
			return nil, err
		}
	}
	if len(value) == 0 && !allowEmpty {
		return nil, parser.setScannerError("while parsing a tag", start_mark, "did not find expected tag URI")
	}
	return value, nil
}

// --- block scalars (| and >) --------------------------------------------

func (parser *Parser) fetchBlockScalar(literal bool) error {
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = true
	start_mark := parser.mark
	parser.skip()

	var chomping int // 0 = clip, 1 = strip, 2 = keep
	increment := 0
	if parser.peek(0) == '+' || parser.peek(0) == '-' {
		if parser.peek(0) == '+' {
			chomping = 2
		} else {
			chomping = 1
		}
		parser.skip()
		if isDigit(parser.peek(0)) {
			increment = asDigit(parser.peek(0))
			parser.skip()
		}
	} else if isDigit(parser.peek(0)) {
		increment = asDigit(parser.peek(0))
		parser.skip()
		if parser.peek(0) == '+' || parser.peek(0) == '-' {
			if parser.peek(0) == '+' {
				chomping = 2
			} else {
				chomping = 1
			}
			parser.skip()
		}
	}

	for isBlank(parser.peek(0)) {
		parser.skip()
		if err := parser.cache(1); err != nil {
			return err
		}
	}
	if parser.peek(0) == '#' {
		for !isBreakz(parser.peek(0)) {
			parser.skip()
			if err := parser.cache(1); err != nil {
				return err
			}
		}
	}
	if !isBreakz(parser.peek(0)) {
		return parser.setScannerError("while scanning a block scalar", start_mark, "did not find expected comment or line break")
	}
	if err := parser.cache(2); err != nil {
		return err
	}
	if isBreak(parser.peek(0)) {
		parser.skipLine()
	}

	var indent int
	if increment > 0 {
		base := parser.indentLevel()
		if base < 0 {
			base = 0
		}
		indent = base + increment
	}

	var value []byte
	var leading_blank, trailing_blank bool
	end_mark := parser.mark
	first := true

	for {
		if err := parser.cache(1); err != nil {
			return err
		}
		cur_indent := 0
		for (indent == 0 || cur_indent < indent) && parser.peek(0) == ' ' {
			parser.skip()
			cur_indent++
			if err := parser.cache(1); err != nil {
				return err
			}
		}
		if indent == 0 {
			indent = cur_indent
			if indent < parser.indentLevel()+1 && !(parser.indentLevel() < 0 && indent == 0) {
				if !isBreakz(parser.peek(0)) {
					break
				}
			}
		}
		if cur_indent < indent && !isBreakz(parser.peek(0)) {
			break
		}
		if isBreakz(parser.peek(0)) && cur_indent < indent {
			if isBreak(parser.peek(0)) {
				if first || trailing_blank {
					value = append(value, '\n')
				} else if !leading_blank {
					value = append(value, '\n')
				} else {
					value = append(value, '\n')
				}
				leading_blank = true
				end_mark = parser.mark
				if err := parser.cache(2); err != nil {
					return err
				}
				parser.skipLine()
				first = false
				continue
			}
			break
		}
		if !literal {
			if leading_blank {
				leading_blank = false
			} else if !first && !trailing_blank {
				value = append(value, ' ')
			}
		}
		trailing_blank = false
		first = false
		for !isBreakz(parser.peek(0)) {
			value = parser.read(value)
			if err := parser.cache(1); err != nil {
				return err
			}
		}
		end_mark = parser.mark
		if err := parser.cache(2); err != nil {
			return err
		}
		if isBreakz(parser.peek(0)) {
			if isZ(parser.peek(0)) {
				break
			}
			trailing_blank = isBlank(parser.peek(0))
			_ = trailing_blank
		}
		if isBreak(parser.peek(0)) {
			if literal {
				value = append(value, '\n')
			} else {
				value = append(value, '\n')
			}
			parser.skipLine()
		} else {
			break
		}
	}

	switch chomping {
	case 1: // strip
		value = bytes.TrimRight(value, "\n")
	case 0: // clip
		value = bytes.TrimRight(value, "\n")
		if len(value) > 0 {
			value = append(value, '\n')
		}
	}

	style := LITERAL_SCALAR_STYLE
	if !literal {
		style = FOLDED_SCALAR_STYLE
	}
	parser.addToken(-1, Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     value,
		Style:     style,
	})
	return nil
}

// --- flow scalars (quoted) ----------------------------------------------

func (parser *Parser) fetchFlowScalar(single bool) error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false
	start_mark := parser.mark
	parser.skip()

	var value []byte
	for {
		if err := parser.cache(1); err != nil {
			return err
		}
		if isZ(parser.peek(0)) {
			return parser.setScannerError("while scanning a quoted scalar", start_mark, "found unexpected end of stream")
		}
		if isBreak(parser.peek(0)) {
			value = append(value, ' ')
			if err := parser.cache(2); err != nil {
				return err
			}
			parser.skipLine()
			for isBlank(parser.peek(0)) {
				parser.skip()
				if err := parser.cache(1); err != nil {
					return err
				}
			}
			continue
		}
		if single {
			if parser.peek(0) == '\'' {
				if parser.peek(1) == '\'' {
					value = append(value, '\'')
					parser.skip()
					parser.skip()
					continue
				}
				parser.skip()
				break
			}
		} else {
			if parser.peek(0) == '"' {
				parser.skip()
				break
			}
			if parser.peek(0) == '\\' {
				parser.skip()
				if err := parser.cache(1); err != nil {
					return err
				}
				if isBreak(parser.peek(0)) {
					if err := parser.cache(2); err != nil {
						return err
					}
					parser.skipLine()
					continue
				}
				esc, n, err := scanEscape(parser, start_mark)
				if err != nil {
					return err
				}
				value = append(value, esc...)
				_ = n
				continue
			}
		}
		value = parser.read(value)
	}

	style := DOUBLE_QUOTED_SCALAR_STYLE
	if single {
		style = SINGLE_QUOTED_SCALAR_STYLE
	}
	parser.addToken(-1, Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   parser.mark,
		Value:     value,
		Style:     style,
	})
	return nil
}

var simpleEscapes = map[byte]byte{
	'0': 0, 'a': '\a', 'b': '\b', 't': '\t', 'n': '\n', 'v': '\v', 'f': '\f',
	'r': '\r', 'e': 0x1B, ' ': ' ', '"': '"', '\'': '\'', '\\': '\\', '/': '/',
}

// scanEscape scans one backslash escape in a double-quoted scalar,
// already positioned just past the '\\'.
func scanEscape(parser *Parser, start_mark Mark) ([]byte, int, error) {
	c := parser.peek(0)
	var codeLen int
	switch c {
	case 'x':
		codeLen = 2
	case 'u':
		codeLen = 4
	case 'U':
		codeLen = 8
	default:
		if r, ok := simpleEscapes[c]; ok {
			parser.skip()
			return []byte{r}, 1, nil
		}
		return nil, 0, parser.setScannerError("while parsing a quoted scalar", start_mark, "found unknown escape character")
	}
	parser.skip()
	code := 0
	for i := 0; i < codeLen; i++ {
		if !isHex(parser.peek(0)) {
			return nil, 0, parser.setScannerError("while parsing a quoted scalar", start_mark, "did not find expected hexadecimal number")
		}
		code = code*16 + asHex(parser.peek(0))
		parser.skip()
	}
	return []byte(string(rune(code))), codeLen, nil
}

// --- plain scalars --------------------------------------------------

func (parser *Parser) fetchPlainScalar() error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false
	start_mark := parser.mark
	end_mark := parser.mark

	var value []byte
	var leading_blank bool
	var whitespaces []byte
	var breaks int

	for {
		if err := parser.cache(1); err != nil {
			return err
		}
		if parser.peek(0) == '#' && len(whitespaces) > 0 {
			break
		}
		for !isBlankz(parser.peek(0)) {
			if parser.flow_level > 0 && parser.peek(0) == ':' && isBlankz(parser.peek(1)) {
				break
			}
			if parser.flow_level > 0 && isFlow(parser.peek(0)) {
				break
			}
			if parser.peek(0) == ':' && isBlankz(parser.peek(1)) {
				break
			}
			if leading_blank || len(whitespaces) > 0 {
				if breaks == 1 {
					value = append(value, ' ')
				}
				for ; breaks > 1; breaks-- {
					value = append(value, '\n')
				}
				breaks = 0
				value = append(value, whitespaces...)
				whitespaces = whitespaces[:0]
				leading_blank = false
			}
			value = parser.read(value)
			end_mark = parser.mark
			if err := parser.cache(2); err != nil {
				return err
			}
		}
		if parser.flow_level > 0 && isFlow(parser.peek(0)) {
			break
		}
		if parser.peek(0) == ':' && isBlankz(parser.peek(1)) {
			break
		}
		if !isBlank(parser.peek(0)) && !isBreak(parser.peek(0)) {
			break
		}
		for isBlank(parser.peek(0)) {
			whitespaces = append(whitespaces, parser.peek(0))
			parser.skip()
			if err := parser.cache(1); err != nil {
				return err
			}
		}
		if isBreak(parser.peek(0)) {
			if err := parser.cache(2); err != nil {
				return err
			}
			breaks++
			parser.skipLine()
			leading_blank = true
			whitespaces = whitespaces[:0]
			for isBlank(parser.peek(0)) {
				parser.skip()
				if err := parser.cache(1); err != nil {
					return err
				}
			}
			if !isBreak(parser.peek(0)) && parser.mark.Column < parser.indentLevel()+1 && parser.flow_level == 0 {
				break
			}
			continue
		}
	}
	if leading_blank {
		parser.simple_key_allowed = true
	}

	parser.addToken(-1, Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     value,
		Style:     PLAIN_SCALAR_STYLE,
	})
	return nil
}

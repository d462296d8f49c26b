// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Scalar type inference for the core schema: classifies plain scalars
// into null/bool/int/real/string, and coerces explicitly tagged scalars
// strictly.

package libyaml

import (
	"strconv"
	"strings"
)

// ResolvedKind identifies the inferred or coerced type of a scalar.
type ResolvedKind int8

const (
	ResolvedString ResolvedKind = iota
	ResolvedNull
	ResolvedBool
	ResolvedInt
	ResolvedReal
)

// Resolved holds the outcome of resolving a scalar: its kind and, for
// non-string kinds, the parsed value.
type Resolved struct {
	Kind   ResolvedKind
	Bool   bool
	Int    int64
	Real   float64
	String string
}

// ResolveImplicit infers the type of a plain scalar with no explicit tag,
// per the core schema table (spec.md §4.4).
func ResolveImplicit(value []byte) Resolved {
	s := string(value)

	switch s {
	case "", "~", "null", "Null", "NULL":
		return Resolved{Kind: ResolvedNull}
	case "true", "True", "TRUE":
		return Resolved{Kind: ResolvedBool, Bool: true}
	case "false", "False", "FALSE":
		return Resolved{Kind: ResolvedBool, Bool: false}
	}

	if i, ok := resolveInt(s); ok {
		return Resolved{Kind: ResolvedInt, Int: i}
	}
	if f, ok := resolveFloat(s); ok {
		return Resolved{Kind: ResolvedReal, Real: f}
	}
	return Resolved{Kind: ResolvedString, String: s}
}

func resolveInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	rest := s
	switch rest[0] {
	case '+':
		rest = rest[1:]
	case '-':
		neg = true
		rest = rest[1:]
	}
	if rest == "" {
		return 0, false
	}

	var base int
	switch {
	case strings.HasPrefix(rest, "0x") || strings.HasPrefix(rest, "0X"):
		if neg {
			return 0, false
		}
		base, rest = 16, rest[2:]
	case strings.HasPrefix(rest, "0o") || strings.HasPrefix(rest, "0O"):
		if neg {
			return 0, false
		}
		base, rest = 8, rest[2:]
	default:
		base = 10
		for _, c := range rest {
			if !isDigit(byte(c)) {
				return 0, false
			}
		}
	}
	if rest == "" {
		return 0, false
	}

	v, err := strconv.ParseInt(rest, base, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

func resolveFloat(s string) (float64, bool) {
	switch s {
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return posInf(), true
	case "-.inf", "-.Inf", "-.INF":
		return negInf(), true
	case ".nan", ".NaN", ".NAN", "NaN":
		return nan(), true
	}
	if s == "" {
		return 0, false
	}
	// Require at least one digit and a decimal point or exponent so that
	// bare integers (already handled above) and non-numeric strings
	// don't fall through to strconv.ParseFloat's more permissive grammar.
	hasDigit := false
	hasSignal := false
	for _, c := range s {
		switch {
		case isDigit(byte(c)):
			hasDigit = true
		case c == '.' || c == 'e' || c == 'E':
			hasSignal = true
		case c == '+' || c == '-':
		default:
			return 0, false
		}
	}
	if !hasDigit || !hasSignal {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func posInf() float64 { v := 1.0; return v / zero() }
func negInf() float64 { v := -1.0; return v / zero() }
func nan() float64     { z := zero(); return z / z }
func zero() float64    { return 0 }

// ResolveExplicit coerces a scalar with an explicit core-schema tag
// strictly, returning ok=false if the value is not a valid member of the
// tagged type.
func ResolveExplicit(tag string, value []byte) (Resolved, bool) {
	s := string(value)
	switch tag {
	case NULL_TAG:
		if s == "" || s == "~" || strings.EqualFold(s, "null") {
			return Resolved{Kind: ResolvedNull}, true
		}
		return Resolved{}, false
	case BOOL_TAG:
		switch {
		case strings.EqualFold(s, "true"):
			return Resolved{Kind: ResolvedBool, Bool: true}, true
		case strings.EqualFold(s, "false"):
			return Resolved{Kind: ResolvedBool, Bool: false}, true
		}
		return Resolved{}, false
	case INT_TAG:
		if i, ok := resolveInt(s); ok {
			return Resolved{Kind: ResolvedInt, Int: i}, true
		}
		return Resolved{}, false
	case FLOAT_TAG:
		if f, ok := resolveFloat(s); ok {
			return Resolved{Kind: ResolvedReal, Real: f}, true
		}
		if _, ok := resolveInt(s); ok {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return Resolved{Kind: ResolvedReal, Real: f}, true
			}
		}
		return Resolved{}, false
	case STR_TAG:
		return Resolved{Kind: ResolvedString, String: s}, true
	default:
		return Resolved{}, false
	}
}

// Package parse provides JSON parsing support.
//
// Parse classifies a substring as one of the value variants and builds
// the corresponding ir.Object, recursing through objects and arrays.
// Object and array member boundaries are discovered with the locate
// package rather than by tokenizing the whole document.
package parse

import (
	"fmt"
	"strconv"

	"github.com/signadot/jsonobj/debug"
	"github.com/signadot/jsonobj/ir"
	"github.com/signadot/jsonobj/locate"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Object, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return parseText(string(d), 0, pOpts)
}

// parseText dispatches on the classification of s, in fixed priority
// order: array, object, float, int, bool, null, string.
func parseText(s string, depth int, opts *parseOpts) (*ir.Object, error) {
	if depth > opts.maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrParse, opts.maxDepth)
	}
	if debug.Parse() {
		debug.Logf("parse %q at depth %d\n", s, depth)
	}
	switch {
	case isArr(s):
		return parseArr(s, depth, opts)
	case isObj(s):
		return parseObj(s, depth, opts)
	case isFloat(s):
		return parseFloat(s)
	case isInt(s):
		return parseInt(s)
	case isBool(s):
		return ir.FromBool(s == "true"), nil
	case isNull(s):
		return ir.Null(), nil
	case isStr(s):
		return ir.FromString(stripQuotes(s)), nil
	}
	return nil, fmt.Errorf("%w: unknown token %q", ErrParse, s)
}

func parseObj(s string, depth int, opts *parseOpts) (*ir.Object, error) {
	buf := []byte(s)
	res := ir.FromMap(nil)

	key, err := findKey(s)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, fmt.Errorf("%w: can't find a key for object in input %q, keys must be quoted", ErrParse, s)
	}
	cursor := 0
	for {
		rng, err := lookupValue(buf, key)
		if err != nil {
			return nil, err
		}
		if rng.Off < cursor {
			// a repeated key resolves to its first occurrence; rescan
			// past the consumed region so the later value replaces it
			rng, err = lookupValueFrom(buf, key, cursor)
			if err != nil {
				return nil, err
			}
		}
		val, err := parseText(string(rng.Of(buf)), depth+1, opts)
		if err != nil {
			return nil, err
		}
		if _, err := res.AddProperty(nil, ir.Property{Name: key, Value: val}); err != nil {
			return nil, err
		}
		// resume the key scan just past the consumed value
		cursor = rng.Off + rng.Len
		key, err = findKey(s[cursor:])
		if err != nil {
			return nil, err
		}
		if key == "" {
			return res, nil
		}
	}
}

func parseArr(s string, depth int, opts *parseOpts) (*ir.Object, error) {
	buf := []byte(s)
	rngs, err := locate.All(buf)
	if err != nil {
		return nil, err
	}
	res := ir.FromSlice(make([]*ir.Object, 0, len(rngs)))
	for _, rng := range rngs {
		rng, err := rng.WidenQuotes(buf)
		if err != nil {
			return nil, err
		}
		val, err := parseText(string(rng.Of(buf)), depth+1, opts)
		if err != nil {
			return nil, err
		}
		if err := res.PushValue(val); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// lookupValue finds the value range for key, keeping string delimiters
// so that string values can be identified when recursively parsed.
func lookupValue(buf []byte, key string) (locate.Range, error) {
	rng, err := locate.Locate(buf, key)
	if err != nil {
		return locate.Range{}, err
	}
	return rng.WidenQuotes(buf)
}

// lookupValueFrom locates key in the unconsumed tail of buf, skipping
// the separator the tail starts with, and rebases the range to buf.
func lookupValueFrom(buf []byte, key string, off int) (locate.Range, error) {
	for off < len(buf) {
		switch buf[off] {
		case ' ', '\t', '\n', '\r', ',':
			off++
			continue
		}
		break
	}
	sub := make([]byte, 0, len(buf)-off+1)
	sub = append(sub, '{')
	sub = append(sub, buf[off:]...)
	rng, err := locate.Locate(sub, key)
	if err != nil {
		return locate.Range{}, err
	}
	rng.Off += off - 1
	return rng.WidenQuotes(buf)
}

// findKey scans for the next quoted key in s. It returns "" when the
// enclosing object ends before a key starts, and fails when a ':' is
// seen first: keys must be quoted.
func findKey(s string) (string, error) {
	start := -1
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == ':' && start < 0:
			return "", fmt.Errorf("%w: no key before the value started, looked in %q, keys must be quoted", ErrParse, s[:i])
		case c == '}' && start < 0:
			return "", nil
		case c == '"' && start >= 0 && s[i-1] != '\\':
			return s[start:i], nil
		case c == '"' && start < 0:
			start = i + 1
		}
	}
	if start >= 0 {
		return s[start:], nil
	}
	return "", nil
}

func parseInt(s string) (*ir.Object, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q as int: %v", ErrExtract, s, err)
	}
	return ir.FromInt(i), nil
}

func parseFloat(s string) (*ir.Object, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q as float: %v", ErrExtract, s, err)
	}
	return ir.FromFloat(f), nil
}

package locate

import (
	"errors"
	"fmt"

	"github.com/signadot/jsonobj/debug"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrMalformed   = errors.New("malformed input")
)

// Range is a byte offset and length into the buffer a lookup was made
// against.
type Range struct {
	Off, Len int
}

// Of returns the substring of buf that r refers to.
func (r Range) Of(buf []byte) []byte {
	return buf[r.Off : r.Off+r.Len]
}

// WidenQuotes grows a string value range by one character on each side
// so the surrounding quotes are included. A range whose preceding
// character is not '"' is returned unchanged. A string with no closing
// quote is malformed.
func (r Range) WidenQuotes(buf []byte) (Range, error) {
	if r.Off == 0 || buf[r.Off-1] != '"' {
		return r, nil
	}
	end := r.Off + r.Len
	if end >= len(buf) || buf[end] != '"' {
		return Range{}, fmt.Errorf("%w: string beginning at byte %d has no end", ErrMalformed, r.Off-1)
	}
	return Range{Off: r.Off - 1, Len: r.Len + 2}, nil
}

// Locate scans the top-level object in buf for key and returns the
// range of its value. String values come back unquoted. Locate fails
// with ErrKeyNotFound if the key is absent at the top level, and with
// ErrMalformed if buf cannot be scanned as an object.
func Locate(buf []byte, key string) (Range, error) {
	if debug.Locate() {
		debug.Logf("locate %q in %d bytes\n", key, len(buf))
	}
	s := &scanner{buf: buf}
	s.skipSpace()
	if !s.accept('{') {
		return Range{}, fmt.Errorf("%w: expected object at byte %d", ErrMalformed, s.pos)
	}
	for {
		s.skipSpace()
		if s.eof() {
			return Range{}, fmt.Errorf("%w: unterminated object", ErrMalformed)
		}
		if s.accept('}') {
			return Range{}, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		if s.peek() != '"' {
			return Range{}, fmt.Errorf("%w: expected quoted key at byte %d", ErrMalformed, s.pos)
		}
		k, err := s.scanString()
		if err != nil {
			return Range{}, err
		}
		s.skipSpace()
		if !s.accept(':') {
			return Range{}, fmt.Errorf("%w: expected ':' at byte %d", ErrMalformed, s.pos)
		}
		v, err := s.scanValue()
		if err != nil {
			return Range{}, err
		}
		if string(k.Of(buf)) == key {
			return v, nil
		}
		s.skipSpace()
		// trailing commas are tolerated
		s.accept(',')
	}
}

// All returns the ranges of every element of the top-level array in
// buf, in order. String elements come back unquoted.
func All(buf []byte) ([]Range, error) {
	if debug.Locate() {
		debug.Logf("locate all elements in %d bytes\n", len(buf))
	}
	s := &scanner{buf: buf}
	s.skipSpace()
	if !s.accept('[') {
		return nil, fmt.Errorf("%w: expected array at byte %d", ErrMalformed, s.pos)
	}
	var res []Range
	for {
		s.skipSpace()
		if s.eof() {
			return nil, fmt.Errorf("%w: unterminated array", ErrMalformed)
		}
		if s.accept(']') {
			return res, nil
		}
		v, err := s.scanValue()
		if err != nil {
			return nil, err
		}
		res = append(res, v)
		s.skipSpace()
		s.accept(',')
	}
}

// Path chains Locate through nested objects: each segment is looked up
// inside the value found for the previous one. The returned range is
// relative to buf.
func Path(buf []byte, path ...string) (Range, error) {
	if len(path) == 0 {
		return Range{}, fmt.Errorf("%w: empty path", ErrMalformed)
	}
	var (
		r    Range
		base int
		cur  = buf
	)
	for _, key := range path {
		var err error
		r, err = Locate(cur, key)
		if err != nil {
			return Range{}, err
		}
		r.Off += base
		base = r.Off
		cur = buf[r.Off : r.Off+r.Len]
	}
	return r, nil
}

type scanner struct {
	buf []byte
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.buf)
}

func (s *scanner) peek() byte {
	return s.buf[s.pos]
}

func (s *scanner) accept(c byte) bool {
	if s.eof() || s.buf[s.pos] != c {
		return false
	}
	s.pos++
	return true
}

func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.buf[s.pos]) {
		s.pos++
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// scanString consumes a quoted string starting at the current position
// and returns the range of its contents, quotes excluded. Escaped
// quotes do not terminate the scan.
func (s *scanner) scanString() (Range, error) {
	open := s.pos
	s.pos++
	start := s.pos
	for !s.eof() {
		switch s.buf[s.pos] {
		case '\\':
			s.pos += 2
		case '"':
			r := Range{Off: start, Len: s.pos - start}
			s.pos++
			return r, nil
		default:
			s.pos++
		}
	}
	return Range{}, fmt.Errorf("%w: unterminated string at byte %d", ErrMalformed, open)
}

func (s *scanner) scanValue() (Range, error) {
	s.skipSpace()
	if s.eof() {
		return Range{}, fmt.Errorf("%w: unexpected end of input", ErrMalformed)
	}
	switch s.peek() {
	case '"':
		return s.scanString()
	case '{', '[':
		return s.scanNested()
	default:
		start := s.pos
		for !s.eof() && !valueEnd(s.buf[s.pos]) {
			s.pos++
		}
		if s.pos == start {
			return Range{}, fmt.Errorf("%w: unexpected %q at byte %d", ErrMalformed, s.peek(), s.pos)
		}
		return Range{Off: start, Len: s.pos - start}, nil
	}
}

func valueEnd(c byte) bool {
	return isSpace(c) || c == ',' || c == '}' || c == ']'
}

// scanNested consumes a balanced {...} or [...] and returns its full
// range, brackets included. Brackets inside strings do not count.
func (s *scanner) scanNested() (Range, error) {
	start := s.pos
	depth := 0
	for !s.eof() {
		switch s.buf[s.pos] {
		case '"':
			if _, err := s.scanString(); err != nil {
				return Range{}, err
			}
		case '{', '[':
			depth++
			s.pos++
		case '}', ']':
			depth--
			s.pos++
			if depth == 0 {
				return Range{Off: start, Len: s.pos - start}, nil
			}
		default:
			s.pos++
		}
	}
	return Range{}, fmt.Errorf("%w: unbalanced brackets at byte %d", ErrMalformed, start)
}

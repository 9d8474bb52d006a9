package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/signadot/jsonobj/debug"
	"github.com/signadot/jsonobj/ir"
	"github.com/signadot/jsonobj/locate"
	"github.com/signadot/jsonobj/parse"
)

// Structured answers typed lookups against a raw JSON buffer without
// parsing the whole document. String results come back unquoted.
type Structured struct {
	buf []byte
}

func NewStructured(d []byte) *Structured {
	return &Structured{buf: d}
}

func (s *Structured) LookupString(path ...string) (string, error) {
	rng, err := locate.Path(s.buf, path...)
	if err != nil {
		return "", err
	}
	if debug.Config() {
		debug.Logf("lookup %v -> %q\n", path, string(rng.Of(s.buf)))
	}
	return string(rng.Of(s.buf)), nil
}

func (s *Structured) LookupInt(path ...string) (int64, error) {
	v, err := s.LookupString(path...)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as int: %v", ir.ErrExtract, v, err)
	}
	return i, nil
}

// LookupBool treats "0", "false" and "FALSE" as false and any other
// value as true.
func (s *Structured) LookupBool(path ...string) (bool, error) {
	v, err := s.LookupString(path...)
	if err != nil {
		return false, err
	}
	switch v {
	case "0", "false", "FALSE":
		return false, nil
	}
	return true, nil
}

// LookupDuration reads a value in seconds, integral or fractional.
func (s *Structured) LookupDuration(path ...string) (time.Duration, error) {
	v, err := s.LookupString(path...)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as seconds: %v", ir.ErrExtract, v, err)
	}
	return time.Duration(f * float64(time.Second)), nil
}

// LookupObject materializes the value at path as a tree.
func (s *Structured) LookupObject(path ...string) (*ir.Object, error) {
	rng, err := locate.Path(s.buf, path...)
	if err != nil {
		return nil, err
	}
	rng, err = rng.WidenQuotes(s.buf)
	if err != nil {
		return nil, err
	}
	return parse.Parse(rng.Of(s.buf))
}

// LookupStrings reads an array of strings at path.
func (s *Structured) LookupStrings(path ...string) ([]string, error) {
	rng, err := locate.Path(s.buf, path...)
	if err != nil {
		return nil, err
	}
	sub := rng.Of(s.buf)
	rngs, err := locate.All(sub)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(rngs))
	for _, r := range rngs {
		res = append(res, string(r.Of(sub)))
	}
	return res, nil
}

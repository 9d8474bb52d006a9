package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/jsonobj/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	compact       bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes o to w. Without options the output is the compact
// form produced by Serialize; the Indent option switches to the
// multi-line form.
func Encode(o *ir.Object, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:  4,
		compact: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(o, w, es)
}

// Serialize returns the compact form of o: keys in sorted order, no
// whitespace. An empty object serializes to "".
func Serialize(o *ir.Object) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(o, buf); err != nil {
		return ""
	}
	return buf.String()
}

// Pretty returns the multi-line form of o with the given indent step,
// one map entry per line, arrays on a single line.
func Pretty(o *ir.Object, indent int) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(o, buf, Indent(indent)); err != nil {
		return ""
	}
	return buf.String()
}

func encode(o *ir.Object, w io.Writer, es *EncState) error {
	switch o.Type {
	case ir.EmptyType:
		return nil
	case ir.NullType:
		return writeValue(w, es, ir.NullType, "null")
	case ir.BoolType:
		return writeValue(w, es, ir.BoolType, strconv.FormatBool(o.Bool))
	case ir.IntType:
		return writeValue(w, es, ir.IntType, strconv.FormatInt(o.Int, 10))
	case ir.FloatType:
		return writeValue(w, es, ir.FloatType, formatFloat(o.Float))
	case ir.StringType:
		return writeValue(w, es, ir.StringType, `"`+o.String+`"`)
	case ir.ArrayType:
		return encodeArr(o, w, es)
	case ir.MapType:
		return encodeMap(o, w, es)
	}
	return fmt.Errorf("%w: unknown type %d", ErrEncoding, o.Type)
}

func encodeArr(o *ir.Object, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	sep := ","
	if !es.compact {
		sep = ", "
	}
	for i, v := range o.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, sep); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeMap(o *ir.Object, w io.Writer, es *EncState) error {
	if es.compact || len(o.Fields) == 0 {
		return encodeMapCompact(o, w, es)
	}
	if err := writeSep(w, es, ir.MapType, "{"); err != nil {
		return err
	}
	es.depth++
	for i, k := range o.Fields {
		if i > 0 {
			if err := writeSep(w, es, ir.MapType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, es, o.Values[i].Type, `"`+k+`"`); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.MapType, ": "); err != nil {
			return err
		}
		if err := encode(o.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.MapType, "}")
}

func encodeMapCompact(o *ir.Object, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.MapType, "{"); err != nil {
		return err
	}
	for i, k := range o.Fields {
		if i > 0 {
			if err := writeSep(w, es, ir.MapType, ","); err != nil {
				return err
			}
		}
		if err := writeField(w, es, o.Values[i].Type, `"`+k+`"`); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.MapType, ":"); err != nil {
			return err
		}
		if err := encode(o.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.MapType, "}")
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeField(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, FieldColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	return writeString(w, s)
}

// formatFloat renders f so that the result still classifies as a
// float when parsed back: scientific "e+NN" loses the '+', and whole
// values gain a ".0" suffix.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	s = strings.Replace(s, "e+", "e", 1)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

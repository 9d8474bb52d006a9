package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAsMismatchGivesBadType(t *testing.T) {
	tests := []struct {
		name string
		o    *Object
		call func(o *Object) error
	}{
		{"string of int", FromInt(3), func(o *Object) error { _, err := o.AsString(); return err }},
		{"int of string", FromString("3"), func(o *Object) error { _, err := o.AsInt(); return err }},
		{"float of int", FromInt(3), func(o *Object) error { _, err := o.AsFloat(); return err }},
		{"int of float", FromFloat(3), func(o *Object) error { _, err := o.AsInt(); return err }},
		{"bool of null", Null(), func(o *Object) error { _, err := o.AsBool(); return err }},
		{"array of map", FromMap(nil), func(o *Object) error { _, err := o.AsArray(); return err }},
		{"map of array", FromSlice(nil), func(o *Object) error { _, err := o.AsMap(); return err }},
		{"keys of array", FromSlice(nil), func(o *Object) error { _, err := o.Keys(); return err }},
		{"len of map", FromMap(nil), func(o *Object) error { _, err := o.Len(); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(tt.o); !errors.Is(err, ErrBadType) {
				t.Errorf("got %v, want ErrBadType", err)
			}
		})
	}
}

func TestAsMatch(t *testing.T) {
	if s, err := FromString("hund").AsString(); err != nil || s != "hund" {
		t.Errorf("AsString: %q, %v", s, err)
	}
	if i, err := FromInt(-12).AsInt(); err != nil || i != -12 {
		t.Errorf("AsInt: %d, %v", i, err)
	}
	if f, err := FromFloat(1.5).AsFloat(); err != nil || f != 1.5 {
		t.Errorf("AsFloat: %v, %v", f, err)
	}
	if b, err := FromBool(true).AsBool(); err != nil || !b {
		t.Errorf("AsBool: %v, %v", b, err)
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	o := FromMap(map[string]*Object{
		"b": FromInt(1),
		"a": FromInt(2),
		"c": FromInt(3),
	})
	keys, err := o.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"a", "b", "c"}, keys); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
}

func TestCloneIsDeep(t *testing.T) {
	o := FromMap(map[string]*Object{
		"arr": FromSlice([]*Object{FromInt(1), FromInt(2)}),
	})
	c := o.Clone()
	if !Equal(o, c) {
		t.Fatal("clone not equal to original")
	}
	arr, err := c.Field("arr")
	if err != nil {
		t.Fatal(err)
	}
	if err := arr.PushValue(FromInt(3)); err != nil {
		t.Fatal(err)
	}
	orig, _ := o.Field("arr")
	if n, _ := orig.Len(); n != 2 {
		t.Errorf("mutating clone changed original, len %d", n)
	}
}

func TestMapOf(t *testing.T) {
	o := FromMap(map[string]*Object{
		"mjau": FromInt(3),
		"dog":  FromInt(2),
	})
	m, err := MapOf[int64](o)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(map[string]int64{"mjau": 3, "dog": 2}, m); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestMapOfMixedFails(t *testing.T) {
	o := FromMap(map[string]*Object{
		"a": FromInt(3),
		"b": FromString("x"),
	})
	if _, err := MapOf[int64](o); !errors.Is(err, ErrBadType) {
		t.Errorf("got %v, want ErrBadType", err)
	}
	if _, err := MapOf[string](FromSlice(nil)); !errors.Is(err, ErrBadType) {
		t.Errorf("non-map got %v, want ErrBadType", err)
	}
}

func TestToAnyFromAnyRoundTrip(t *testing.T) {
	o := FromMap(map[string]*Object{
		"s": FromString("x"),
		"i": FromInt(10),
		"f": FromFloat(1.25),
		"b": FromBool(false),
		"n": Null(),
		"a": FromSlice([]*Object{FromInt(1), FromString("two")}),
	})
	back, err := FromAny(ToAny(o))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(o, back) {
		t.Errorf("round trip changed tree")
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrExtract) {
		t.Errorf("got %v, want ErrExtract", err)
	}
}

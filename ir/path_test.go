package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func nested(t *testing.T) *Object {
	t.Helper()
	return FromMap(map[string]*Object{
		"test": FromMap(map[string]*Object{
			"nest": FromMap(map[string]*Object{
				"value": FromInt(10),
				"array": FromSlice([]*Object{FromInt(1), FromInt(2), FromInt(3)}),
			}),
		}),
		"addr":   FromString("ff01::1"),
		"enable": FromBool(false),
	})
}

func TestGet(t *testing.T) {
	o := nested(t)
	v, err := o.Get(Path{"test", "nest", "value"})
	if err != nil {
		t.Fatal(err)
	}
	if i, err := v.AsInt(); err != nil || i != 10 {
		t.Errorf("got %d, %v", i, err)
	}
	if self, err := o.Get(nil); err != nil || self != o {
		t.Errorf("empty path must return self")
	}
}

func TestGetMissingKey(t *testing.T) {
	o := nested(t)
	if _, err := o.Get(Path{"test", "nope"}); !errors.Is(err, ErrMissingKey) {
		t.Errorf("got %v, want ErrMissingKey", err)
	}
}

func TestGetThroughNonMap(t *testing.T) {
	o := nested(t)
	if _, err := o.Get(Path{"addr", "deeper"}); !errors.Is(err, ErrBadType) {
		t.Errorf("got %v, want ErrBadType", err)
	}
	// indexing into an array is not a path operation
	if _, err := o.Get(Path{"test", "nest", "array", "0"}); !errors.Is(err, ErrBadType) {
		t.Errorf("got %v, want ErrBadType", err)
	}
}

func TestAt(t *testing.T) {
	arr, err := nested(t).Get(Path{"test", "nest", "array"})
	if err != nil {
		t.Fatal(err)
	}
	v, err := arr.At(1)
	if err != nil {
		t.Fatal(err)
	}
	if i, _ := v.AsInt(); i != 2 {
		t.Errorf("got %d, want 2", i)
	}
	if _, err := arr.At(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v, want ErrOutOfRange", err)
	}
	if _, err := arr.At(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v, want ErrOutOfRange", err)
	}
	if _, err := FromInt(0).At(0); !errors.Is(err, ErrBadType) {
		t.Errorf("got %v, want ErrBadType", err)
	}
}

func TestGetOrInsert(t *testing.T) {
	o := Empty()
	res, err := o.GetOrInsert(Path{"a", "path"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := res.AddProperty(nil, Property{Name: "test", Value: FromInt(10)}); err != nil {
		t.Fatal(err)
	}
	v, err := o.Get(Path{"a", "path", "test"})
	if err != nil {
		t.Fatal(err)
	}
	if i, _ := v.AsInt(); i != 10 {
		t.Errorf("got %d, want 10", i)
	}
}

func TestGetOrInsertConflict(t *testing.T) {
	o := nested(t)
	if _, err := o.GetOrInsert(Path{"addr", "x"}); !errors.Is(err, ErrBadType) {
		t.Errorf("got %v, want ErrBadType", err)
	}
}

func TestAddProperty(t *testing.T) {
	o := Empty()
	existed, err := o.AddProperty(Path{"a", "path"}, Property{Name: "test", Value: FromInt(10)})
	if err != nil {
		t.Fatal(err)
	}
	if existed {
		t.Error("new key reported as existing")
	}
	existed, err = o.AddProperty(Path{"a", "path"}, Property{Name: "test", Value: FromInt(11)})
	if err != nil {
		t.Fatal(err)
	}
	if !existed {
		t.Error("overwrite not reported as existing")
	}
	v, err := o.Get(Path{"a", "path", "test"})
	if err != nil {
		t.Fatal(err)
	}
	if i, _ := v.AsInt(); i != 11 {
		t.Errorf("got %d, want 11", i)
	}
	tgt, err := o.Get(Path{"a", "path"})
	if err != nil {
		t.Fatal(err)
	}
	keys, err := tgt.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"test"}, keys); d != "" {
		t.Errorf("repeated AddProperty duplicated keys (-want +got):\n%s", d)
	}
}

func TestAddPropertyOnEmptySelf(t *testing.T) {
	// the original contract: resolving an empty path does not convert
	// an empty node, so inserting into it fails
	o := Empty()
	if _, err := o.AddProperty(nil, Property{Name: "x", Value: Null()}); !errors.Is(err, ErrBadType) {
		t.Errorf("got %v, want ErrBadType", err)
	}
}

func TestPush(t *testing.T) {
	o := nested(t)
	if err := o.Push(Path{"test", "nest", "array"}, FromString("hello")); err != nil {
		t.Fatal(err)
	}
	arr, err := o.Get(Path{"test", "nest", "array"})
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := arr.Len(); n != 4 {
		t.Fatalf("len %d, want 4", n)
	}
	last, err := arr.At(3)
	if err != nil {
		t.Fatal(err)
	}
	if !last.IsString() {
		t.Errorf("last element type %s, want String", last.Type)
	}
}

func TestPushDoesNotAutoCreate(t *testing.T) {
	o := Empty()
	if err := o.Push(Path{"nope"}, FromInt(1)); !errors.Is(err, ErrBadType) {
		t.Errorf("got %v, want ErrBadType", err)
	}
	if err := nested(t).Push(Path{"addr"}, FromInt(1)); !errors.Is(err, ErrBadType) {
		t.Errorf("got %v, want ErrBadType", err)
	}
}

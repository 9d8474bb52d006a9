package locate

import (
	"errors"
	"testing"
)

const doc = `{"foo":"bar","barbar":[1,2,3],"obj":{"a":"b"}}`

func TestLocate(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"string value unquoted", "foo", "bar"},
		{"array value with brackets", "barbar", "[1,2,3]"},
		{"object value with braces", "obj", `{"a":"b"}`},
	}
	buf := []byte(doc)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Locate(buf, tt.key)
			if err != nil {
				t.Fatal(err)
			}
			if got := string(r.Of(buf)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocateKeyNotFound(t *testing.T) {
	if _, err := Locate([]byte(doc), "nope"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("got %v, want ErrKeyNotFound", err)
	}
}

func TestLocateTopLevelOnly(t *testing.T) {
	// "a" only exists inside "obj", not at the top level
	if _, err := Locate([]byte(doc), "a"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("got %v, want ErrKeyNotFound", err)
	}
}

func TestLocateMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not an object", `[1,2]`},
		{"empty", ``},
		{"unquoted key", `{foo: 1}`},
		{"unterminated string", `{"foo": "ba`},
		{"unterminated object", `{"bar": 1`},
		{"unbalanced nesting", `{"foo": {"a": 1`},
		{"missing colon", `{"foo" 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Locate([]byte(tt.in), "foo"); !errors.Is(err, ErrMalformed) {
				t.Errorf("got %v, want ErrMalformed", err)
			}
		})
	}
}

func TestLocateTrailingComma(t *testing.T) {
	buf := []byte(`{
    "port": 26000,
    "addr": "ff01::1",
}`)
	r, err := Locate(buf, "addr")
	if err != nil {
		t.Fatal(err)
	}
	if got := string(r.Of(buf)); got != "ff01::1" {
		t.Errorf("got %q", got)
	}
}

func TestAll(t *testing.T) {
	buf := []byte(`["foo","bar",[1,2,3],{"a":"b"},42]`)
	rs, err := All(buf)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"foo", "bar", "[1,2,3]", `{"a":"b"}`, "42"}
	if len(rs) != len(want) {
		t.Fatalf("got %d elements, want %d", len(rs), len(want))
	}
	for i, r := range rs {
		if got := string(r.Of(buf)); got != want[i] {
			t.Errorf("element %d: got %q, want %q", i, got, want[i])
		}
	}
}

func TestAllEmptyAndTrailingComma(t *testing.T) {
	rs, err := All([]byte(`[ ]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(rs) != 0 {
		t.Errorf("got %d elements, want 0", len(rs))
	}
	buf := []byte(`["hund", "mjau", 12,]`)
	rs, err = All(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(rs) != 3 {
		t.Fatalf("got %d elements, want 3", len(rs))
	}
	if got := string(rs[2].Of(buf)); got != "12" {
		t.Errorf("got %q, want 12", got)
	}
}

func TestAllMalformed(t *testing.T) {
	if _, err := All([]byte(`{"a":1}`)); !errors.Is(err, ErrMalformed) {
		t.Errorf("got %v, want ErrMalformed", err)
	}
	if _, err := All([]byte(`[1, 2`)); !errors.Is(err, ErrMalformed) {
		t.Errorf("got %v, want ErrMalformed", err)
	}
}

func TestPath(t *testing.T) {
	buf := []byte(`{"a": {"b": 10}}`)
	r, err := Path(buf, "a", "b")
	if err != nil {
		t.Fatal(err)
	}
	if got := string(r.Of(buf)); got != "10" {
		t.Errorf("got %q, want 10", got)
	}
	if _, err := Path(buf, "a", "c"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("got %v, want ErrKeyNotFound", err)
	}
	if _, err := Path(buf); !errors.Is(err, ErrMalformed) {
		t.Errorf("empty path: got %v, want ErrMalformed", err)
	}
}

func TestWidenQuotes(t *testing.T) {
	buf := []byte(`{"k": "value"}`)
	r, err := Locate(buf, "k")
	if err != nil {
		t.Fatal(err)
	}
	w, err := r.WidenQuotes(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(w.Of(buf)); got != `"value"` {
		t.Errorf("got %q, want quoted value", got)
	}
	// non-string ranges come back unchanged
	buf = []byte(`{"k": 12}`)
	r, err = Locate(buf, "k")
	if err != nil {
		t.Fatal(err)
	}
	w, err = r.WidenQuotes(buf)
	if err != nil {
		t.Fatal(err)
	}
	if w != r {
		t.Errorf("got %+v, want %+v", w, r)
	}
}

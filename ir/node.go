package ir

import (
	"maps"
	"slices"
)

// Object is a tagged union over JSON-style values. The Type field names
// the active variant; the remaining fields carry that variant's payload
// and are meaningful only while their variant is active.
//
// For MapType, Fields[i] is the key for the value at Values[i], so there
// are always as many fields as values, and Fields is kept in sorted
// order. For ArrayType only Values is used, in insertion order.
type Object struct {
	Type Type

	String string
	Int    int64
	Float  float64
	Bool   bool

	Fields []string
	Values []*Object
}

// Empty returns the "no value yet" Object. It is distinct from Null and
// compares unequal to every other Object, including other empties.
func Empty() *Object {
	return &Object{}
}

func Null() *Object {
	return &Object{Type: NullType}
}

func FromString(v string) *Object {
	return &Object{Type: StringType, String: v}
}

func FromInt(v int64) *Object {
	return &Object{Type: IntType, Int: v}
}

func FromFloat(v float64) *Object {
	return &Object{Type: FloatType, Float: v}
}

func FromBool(v bool) *Object {
	return &Object{Type: BoolType, Bool: v}
}

func FromSlice(vs []*Object) *Object {
	return &Object{Type: ArrayType, Values: vs}
}

// FromMap builds a MapType Object whose entries iterate in sorted key
// order regardless of the order of m.
func FromMap(m map[string]*Object) *Object {
	res := &Object{Type: MapType}
	res.Fields = slices.Sorted(maps.Keys(m))
	res.Values = make([]*Object, len(res.Fields))
	for i, key := range res.Fields {
		res.Values[i] = m[key]
	}
	return res
}

func (o *Object) Clone() *Object {
	res := &Object{}
	return o.CloneTo(res)
}

func (o *Object) CloneTo(dst *Object) *Object {
	dst.Type = o.Type
	dst.String = o.String
	dst.Int = o.Int
	dst.Float = o.Float
	dst.Bool = o.Bool
	dst.Fields = slices.Clone(o.Fields)
	if o.Values != nil {
		dst.Values = make([]*Object, len(o.Values))
		for i, v := range o.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func (o *Object) IsEmpty() bool  { return o.Type == EmptyType }
func (o *Object) IsNull() bool   { return o.Type == NullType }
func (o *Object) IsString() bool { return o.Type == StringType }
func (o *Object) IsInt() bool    { return o.Type == IntType }
func (o *Object) IsFloat() bool  { return o.Type == FloatType }
func (o *Object) IsBool() bool   { return o.Type == BoolType }
func (o *Object) IsArray() bool  { return o.Type == ArrayType }
func (o *Object) IsMap() bool    { return o.Type == MapType }

// AsString returns the string payload, or ErrBadType naming the actual
// variant. The As* accessors never coerce: AsFloat on an IntType fails.
func (o *Object) AsString() (string, error) {
	if o.Type != StringType {
		return "", badType(StringType, o.Type)
	}
	return o.String, nil
}

func (o *Object) AsInt() (int64, error) {
	if o.Type != IntType {
		return 0, badType(IntType, o.Type)
	}
	return o.Int, nil
}

func (o *Object) AsFloat() (float64, error) {
	if o.Type != FloatType {
		return 0, badType(FloatType, o.Type)
	}
	return o.Float, nil
}

func (o *Object) AsBool() (bool, error) {
	if o.Type != BoolType {
		return false, badType(BoolType, o.Type)
	}
	return o.Bool, nil
}

func (o *Object) AsArray() ([]*Object, error) {
	if o.Type != ArrayType {
		return nil, badType(ArrayType, o.Type)
	}
	return o.Values, nil
}

func (o *Object) AsMap() (map[string]*Object, error) {
	if o.Type != MapType {
		return nil, badType(MapType, o.Type)
	}
	res := make(map[string]*Object, len(o.Fields))
	for i, key := range o.Fields {
		res[key] = o.Values[i]
	}
	return res, nil
}

// Keys returns the keys of a MapType Object in iteration (sorted)
// order.
func (o *Object) Keys() ([]string, error) {
	if o.Type != MapType {
		return nil, badType(MapType, o.Type)
	}
	return slices.Clone(o.Fields), nil
}

// Len returns the number of elements of an ArrayType Object.
func (o *Object) Len() (int, error) {
	if o.Type != ArrayType {
		return 0, badType(ArrayType, o.Type)
	}
	return len(o.Values), nil
}

// set inserts or replaces key in a MapType Object, keeping Fields
// sorted, and reports whether the key existed.
func (o *Object) set(key string, v *Object) bool {
	i, ok := slices.BinarySearch(o.Fields, key)
	if ok {
		o.Values[i] = v
		return true
	}
	o.Fields = slices.Insert(o.Fields, i, key)
	o.Values = slices.Insert(o.Values, i, v)
	return false
}

func (o *Object) lookup(key string) (*Object, bool) {
	i, ok := slices.BinarySearch(o.Fields, key)
	if !ok {
		return nil, false
	}
	return o.Values[i], true
}

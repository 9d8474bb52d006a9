package ir

import (
	"fmt"
)

// ToAny converts an Object tree to the generic map[string]any / []any
// shape used by encoding/json and expression environments. Empty and
// null both map to nil.
func ToAny(o *Object) any {
	switch o.Type {
	case MapType:
		res := make(map[string]any, len(o.Fields))
		for i, key := range o.Fields {
			res[key] = ToAny(o.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(o.Values))
		for i, elt := range o.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return o.String
	case IntType:
		return o.Int
	case FloatType:
		return o.Float
	case BoolType:
		return o.Bool
	case NullType, EmptyType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts generic decoded data (as produced by encoding/json
// or yaml unmarshalling into any) to an Object tree.
func FromAny(v any) (*Object, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Object:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		vs := make([]*Object, len(x))
		for i, elt := range x {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vs[i] = y
		}
		return FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*Object, len(x))
		for key, elt := range x {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			m[key] = y
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrExtract, v)
	}
}

// Primitive constrains the element types MapOf can extract.
type Primitive interface {
	string | int64 | float64 | bool
}

// MapOf converts a MapType Object to a homogeneous map whose values are
// all of primitive type T. It fails on the first value that does not
// hold T; no partial result is returned.
func MapOf[T Primitive](o *Object) (map[string]T, error) {
	if o.Type != MapType {
		return nil, badType(MapType, o.Type)
	}
	res := make(map[string]T, len(o.Fields))
	for i, key := range o.Fields {
		var v T
		if err := extractInto(o.Values[i], &v); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		res[key] = v
	}
	return res, nil
}

func extractInto[T Primitive](o *Object, out *T) error {
	switch p := any(out).(type) {
	case *string:
		s, err := o.AsString()
		if err != nil {
			return err
		}
		*p = s
	case *int64:
		i, err := o.AsInt()
		if err != nil {
			return err
		}
		*p = i
	case *float64:
		f, err := o.AsFloat()
		if err != nil {
			return err
		}
		*p = f
	case *bool:
		b, err := o.AsBool()
		if err != nil {
			return err
		}
		*p = b
	}
	return nil
}

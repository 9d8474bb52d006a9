package ir

import (
	"fmt"
	"strings"
)

// Path is an ordered list of map keys identifying a nested location in
// a chain of MapType Objects.
type Path = []string

// Property is a transient key/value pair used as the argument to
// AddProperty.
type Property struct {
	Name  string
	Value *Object
}

// Get dereferences path. An empty path returns o itself. A non-empty
// path requires o to be a map, looks up the first segment and recurses
// with the rest. Absent segments give ErrMissingKey, non-map nodes
// along the way give ErrBadType.
func (o *Object) Get(path Path) (*Object, error) {
	res := o
	for i, seg := range path {
		if res.Type != MapType {
			return nil, badType(MapType, res.Type)
		}
		v, ok := res.lookup(seg)
		if !ok {
			return nil, fmt.Errorf("%w: %q at %q", ErrMissingKey, seg, strings.Join(path[:i+1], "."))
		}
		res = v
	}
	return res, nil
}

// Field looks up a single key in a MapType Object.
func (o *Object) Field(name string) (*Object, error) {
	return o.Get(Path{name})
}

// At returns the index-th element of an ArrayType Object.
func (o *Object) At(index int) (*Object, error) {
	if o.Type != ArrayType {
		return nil, badType(ArrayType, o.Type)
	}
	if index < 0 || index >= len(o.Values) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, index, len(o.Values))
	}
	return o.Values[index], nil
}

// GetOrInsert dereferences path like Get, but an empty node becomes a
// map and each missing segment gets an empty map inserted under it
// before traversal continues. A concrete non-map node along the path
// gives ErrBadType; GetOrInsert never converts those.
func (o *Object) GetOrInsert(path Path) (*Object, error) {
	res := o
	for _, seg := range path {
		if res.Type == EmptyType {
			res.Type = MapType
		}
		if res.Type != MapType {
			return nil, badType(MapType, res.Type)
		}
		v, ok := res.lookup(seg)
		if !ok {
			v = &Object{Type: MapType}
			res.set(seg, v)
		}
		res = v
	}
	return res, nil
}

// AddProperty resolves (creating as needed) a map at path and inserts
// or overwrites prop.Name there. It reports whether the key previously
// existed.
func (o *Object) AddProperty(path Path, prop Property) (bool, error) {
	tgt, err := o.GetOrInsert(path)
	if err != nil {
		return false, err
	}
	if tgt.Type != MapType {
		return false, badType(MapType, tgt.Type)
	}
	return tgt.set(prop.Name, prop.Value), nil
}

// Push appends v to the array at path. Unlike AddProperty, Push does
// not auto-create: the target must already be an array.
func (o *Object) Push(path Path, v *Object) error {
	tgt, err := o.Get(path)
	if err != nil {
		return err
	}
	return tgt.PushValue(v)
}

// PushValue appends v to an ArrayType Object.
func (o *Object) PushValue(v *Object) error {
	if o.Type != ArrayType {
		return badType(ArrayType, o.Type)
	}
	o.Values = append(o.Values, v)
	return nil
}

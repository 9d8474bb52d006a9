package ir

import "fmt"

type Type int

const (
	EmptyType Type = iota
	NullType
	StringType
	IntType
	FloatType
	BoolType
	ArrayType
	MapType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		EmptyType:  "Empty",
		NullType:   "Null",
		StringType: "String",
		IntType:    "Int",
		FloatType:  "Float",
		BoolType:   "Bool",
		ArrayType:  "Array",
		MapType:    "Map",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Empty":  EmptyType,
		"Null":   NullType,
		"String": StringType,
		"Int":    IntType,
		"Float":  FloatType,
		"Bool":   BoolType,
		"Array":  ArrayType,
		"Map":    MapType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		EmptyType,
		NullType,
		StringType,
		IntType,
		FloatType,
		BoolType,
		ArrayType,
		MapType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, MapType:
		return false
	default:
		return true
	}
}

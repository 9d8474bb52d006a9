package ir

// Equal reports deep equality of two Objects: same active variant with
// equal contents, recursively for arrays and maps. An empty Object
// equals nothing, not even another empty Object, unless a and b are the
// same instance.
func Equal(a, b *Object) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case EmptyType:
		return false
	case NullType:
		return true
	case StringType:
		return a.String == b.String
	case IntType:
		return a.Int == b.Int
	case FloatType:
		return a.Float == b.Float
	case BoolType:
		return a.Bool == b.Bool
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case MapType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i] != b.Fields[i] {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

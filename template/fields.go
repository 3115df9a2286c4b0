package template

// Fields is a mapping of key name to typed value, produced by
// [Template.GetFields] and consumed by [Template.Apply].
type Fields map[string]any

// Equal reports whether f and other contain the same set of key names
// each bound to an equal value, per Go's == on the underlying types.
// Used to collapse ambiguous parser leaves whose field mappings coincide.
func (f Fields) Equal(other Fields) bool {
	if len(f) != len(other) {
		return false
	}

	for k, v := range f {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}

	return true
}

// clone returns a shallow copy of f.
func (f Fields) clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}

	return out
}

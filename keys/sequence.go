package keys

import (
	"fmt"

	"go.pathkit.dev/pathkit/template"
)

// sequenceFormatPlaceholder is the literal value a SequenceKey accepts in
// place of an integer, used by render-farm frame-number substitution
// tooling that defers the actual frame number to render time.
const sequenceFormatPlaceholder = "FORMAT"

// SequenceKey is an [IntegerKey] variant that additionally accepts the
// literal placeholder "FORMAT" as a value, standing in for an
// as-yet-unresolved frame number.
//
// Construct with [NewSequenceKey] and zero or more IntegerKeyOption
// values (the same options [IntegerKey] accepts).
type SequenceKey struct {
	IntegerKey
}

// NewSequenceKey constructs a SequenceKey named name.
func NewSequenceKey(name string, opts ...IntegerKeyOption) *SequenceKey {
	return &SequenceKey{IntegerKey: *NewIntegerKey(name, opts...)}
}

func (k *SequenceKey) ValueFromStr(s string) (any, error) {
	if s == sequenceFormatPlaceholder {
		return s, nil
	}

	return k.IntegerKey.ValueFromStr(s)
}

func (k *SequenceKey) StrFromValue(v any, ignoreType bool) (string, error) {
	if s, ok := v.(string); ok {
		if s != sequenceFormatPlaceholder {
			return "", fmt.Errorf("%w: key %q: %q is not %q or an int", template.ErrConversion, k.Name(), s, sequenceFormatPlaceholder)
		}

		return s, nil
	}

	return k.IntegerKey.StrFromValue(v, ignoreType)
}

func (k *SequenceKey) Equal(other template.Key) bool {
	o, ok := other.(*SequenceKey)

	return ok && k.IntegerKey.Equal(&o.IntegerKey)
}

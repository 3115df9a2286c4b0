package keys

import (
	"fmt"
	"slices"
	"strings"

	"go.pathkit.dev/pathkit/template"
)

// EnumKey is a [template.Key] restricted to a fixed set of choices, with
// optional case-insensitive matching. It canonicalizes to the matching
// entry from choices regardless of the input's case.
//
// Construct with [NewEnumKey].
type EnumKey struct {
	name          string
	choices       []string
	caseSensitive bool
	def           string
	hasDef        bool
}

// NewEnumKey constructs an EnumKey named name restricted to choices.
// When caseSensitive is false, ValueFromStr matches choices
// case-insensitively and canonicalizes to the stored casing.
func NewEnumKey(name string, caseSensitive bool, choices ...string) *EnumKey {
	return &EnumKey{name: name, choices: choices, caseSensitive: caseSensitive}
}

// WithEnumDefault sets the key's default value.
func (k *EnumKey) WithEnumDefault(def string) *EnumKey {
	k.def = def
	k.hasDef = true

	return k
}

func (k *EnumKey) Name() string { return k.name }

func (k *EnumKey) Length() (int, bool) { return 0, false }

func (k *EnumKey) Default() (any, bool) {
	if !k.hasDef {
		return nil, false
	}

	return k.def, true
}

func (k *EnumKey) ValueFromStr(s string) (any, error) {
	if k.caseSensitive {
		if slices.Contains(k.choices, s) {
			return s, nil
		}
	} else {
		for _, c := range k.choices {
			if strings.EqualFold(c, s) {
				return c, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: key %q: %q is not one of %v", template.ErrConversion, k.name, s, k.choices)
}

func (k *EnumKey) StrFromValue(v any, ignoreType bool) (string, error) {
	s, ok := v.(string)
	if !ok {
		if ignoreType {
			return fmt.Sprint(v), nil
		}

		return "", fmt.Errorf("%w: key %q: %v is not a string", template.ErrConversion, k.name, v)
	}

	return s, nil
}

func (k *EnumKey) Equal(other template.Key) bool {
	o, ok := other.(*EnumKey)

	return ok && o.name == k.name && o.caseSensitive == k.caseSensitive && slices.Equal(o.choices, k.choices)
}

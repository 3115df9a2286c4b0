package keys

import (
	"fmt"
	"strconv"

	"go.pathkit.dev/pathkit/template"
)

// IntegerKey is a [template.Key] whose value is an int, optionally
// zero-padded to a fixed string length and/or bounded to [min, max].
//
// Construct with [NewIntegerKey] and zero or more IntegerKeyOption
// values.
type IntegerKey struct {
	name      string
	length    int
	hasLength bool
	min, max  int
	hasMin    bool
	hasMax    bool
	def       int
	hasDef    bool
}

// IntegerKeyOption configures an [IntegerKey] at construction time.
type IntegerKeyOption func(*IntegerKey)

// WithLength zero-pads the key's string form to length digits, and
// requires candidate substrings to be at least that long when parsing.
func WithLength(length int) IntegerKeyOption {
	return func(k *IntegerKey) {
		k.length = length
		k.hasLength = true
	}
}

// WithMin sets an inclusive lower bound.
func WithMin(min int) IntegerKeyOption {
	return func(k *IntegerKey) {
		k.min = min
		k.hasMin = true
	}
}

// WithMax sets an inclusive upper bound.
func WithMax(max int) IntegerKeyOption {
	return func(k *IntegerKey) {
		k.max = max
		k.hasMax = true
	}
}

// WithIntegerDefault sets the key's default value.
func WithIntegerDefault(def int) IntegerKeyOption {
	return func(k *IntegerKey) {
		k.def = def
		k.hasDef = true
	}
}

// NewIntegerKey constructs an IntegerKey named name.
func NewIntegerKey(name string, opts ...IntegerKeyOption) *IntegerKey {
	k := &IntegerKey{name: name}

	for _, opt := range opts {
		opt(k)
	}

	return k
}

func (k *IntegerKey) Name() string { return k.name }

func (k *IntegerKey) Length() (int, bool) { return k.length, k.hasLength }

func (k *IntegerKey) Default() (any, bool) {
	if !k.hasDef {
		return nil, false
	}

	return k.def, true
}

func (k *IntegerKey) ValueFromStr(s string) (any, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: key %q: %w", template.ErrConversion, k.name, err)
	}

	if k.hasMin && n < k.min {
		return nil, fmt.Errorf("%w: key %q: %d is below minimum %d", template.ErrConversion, k.name, n, k.min)
	}

	if k.hasMax && n > k.max {
		return nil, fmt.Errorf("%w: key %q: %d is above maximum %d", template.ErrConversion, k.name, n, k.max)
	}

	return n, nil
}

func (k *IntegerKey) StrFromValue(v any, ignoreType bool) (string, error) {
	n, ok := v.(int)
	if !ok {
		if ignoreType {
			return fmt.Sprint(v), nil
		}

		return "", fmt.Errorf("%w: key %q: %v is not an int", template.ErrConversion, k.name, v)
	}

	if k.hasLength {
		return fmt.Sprintf("%0*d", k.length, n), nil
	}

	return strconv.Itoa(n), nil
}

func (k *IntegerKey) Equal(other template.Key) bool {
	o, ok := other.(*IntegerKey)

	return ok && o.name == k.name && o.length == k.length && o.hasLength == k.hasLength &&
		o.min == k.min && o.hasMin == k.hasMin && o.max == k.max && o.hasMax == k.hasMax
}

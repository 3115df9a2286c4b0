package keys

import (
	"fmt"
	"regexp"
	"slices"

	"go.pathkit.dev/pathkit/template"
)

// StringKey is a [template.Key] whose value is a plain string, optionally
// constrained by a regular expression filter and/or a fixed set of
// choices.
//
// Construct with [NewStringKey] and zero or more StringKeyOption values.
type StringKey struct {
	name    string
	filter  *regexp.Regexp
	choices []string
	def     string
	hasDef  bool
}

// StringKeyOption configures a [StringKey] at construction time.
type StringKeyOption func(*StringKey) error

// WithFilter restricts values to those matching the given regular
// expression, anchored at both ends.
func WithFilter(pattern string) StringKeyOption {
	return func(k *StringKey) error {
		re, err := regexp.Compile("^(?:" + pattern + ")$")
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}

		k.filter = re

		return nil
	}
}

// WithChoices restricts values to one of the given strings.
func WithChoices(choices ...string) StringKeyOption {
	return func(k *StringKey) error {
		if len(choices) == 0 {
			return fmt.Errorf("%w: choices must be non-empty", ErrInvalidOption)
		}

		k.choices = choices

		return nil
	}
}

// WithStringDefault sets the key's default value.
func WithStringDefault(def string) StringKeyOption {
	return func(k *StringKey) error {
		k.def = def
		k.hasDef = true

		return nil
	}
}

// NewStringKey constructs a StringKey named name.
func NewStringKey(name string, opts ...StringKeyOption) (*StringKey, error) {
	k := &StringKey{name: name}

	for _, opt := range opts {
		if err := opt(k); err != nil {
			return nil, err
		}
	}

	return k, nil
}

func (k *StringKey) Name() string { return k.name }

func (k *StringKey) Length() (int, bool) { return 0, false }

func (k *StringKey) Default() (any, bool) {
	if !k.hasDef {
		return nil, false
	}

	return k.def, true
}

func (k *StringKey) ValueFromStr(s string) (any, error) {
	if k.filter != nil && !k.filter.MatchString(s) {
		return nil, fmt.Errorf("%w: key %q: %q does not match filter", template.ErrConversion, k.name, s)
	}

	if len(k.choices) > 0 && !slices.Contains(k.choices, s) {
		return nil, fmt.Errorf("%w: key %q: %q is not one of %v", template.ErrConversion, k.name, s, k.choices)
	}

	return s, nil
}

func (k *StringKey) StrFromValue(v any, ignoreType bool) (string, error) {
	s, ok := v.(string)
	if !ok {
		if ignoreType {
			return fmt.Sprint(v), nil
		}

		return "", fmt.Errorf("%w: key %q: %v is not a string", template.ErrConversion, k.name, v)
	}

	return s, nil
}

func (k *StringKey) Equal(other template.Key) bool {
	o, ok := other.(*StringKey)
	if !ok || o.name != k.name {
		return false
	}

	if (k.filter == nil) != (o.filter == nil) {
		return false
	}

	if k.filter != nil && k.filter.String() != o.filter.String() {
		return false
	}

	return slices.Equal(k.choices, o.choices)
}

package keys

import (
	"fmt"
	"time"

	"go.pathkit.dev/pathkit/template"
)

// TimestampKey is a [template.Key] whose value is a [time.Time],
// formatted and parsed using a configurable Go layout string.
//
// Construct with [NewTimestampKey].
type TimestampKey struct {
	name   string
	layout string
	def    time.Time
	hasDef bool
}

// NewTimestampKey constructs a TimestampKey named name using layout (a Go
// time-format layout string, e.g. "20060102") for both directions.
func NewTimestampKey(name, layout string) *TimestampKey {
	return &TimestampKey{name: name, layout: layout}
}

// WithTimestampDefault sets the key's default value.
func (k *TimestampKey) WithTimestampDefault(def time.Time) *TimestampKey {
	k.def = def
	k.hasDef = true

	return k
}

func (k *TimestampKey) Name() string { return k.name }

func (k *TimestampKey) Length() (int, bool) {
	return len(k.layout), true
}

func (k *TimestampKey) Default() (any, bool) {
	if !k.hasDef {
		return nil, false
	}

	return k.def, true
}

func (k *TimestampKey) ValueFromStr(s string) (any, error) {
	t, err := time.Parse(k.layout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: key %q: %w", template.ErrConversion, k.name, err)
	}

	return t, nil
}

func (k *TimestampKey) StrFromValue(v any, ignoreType bool) (string, error) {
	t, ok := v.(time.Time)
	if !ok {
		if ignoreType {
			return fmt.Sprint(v), nil
		}

		return "", fmt.Errorf("%w: key %q: %v is not a time.Time", template.ErrConversion, k.name, v)
	}

	return t.Format(k.layout), nil
}

func (k *TimestampKey) Equal(other template.Key) bool {
	o, ok := other.(*TimestampKey)

	return ok && o.name == k.name && o.layout == k.layout
}

package template

import (
	"fmt"
	"regexp"
	"strconv"
)

// testKey is a minimal [Key] implementation used only by this package's
// tests; the keys package supplies the production implementations.
type testKey struct {
	name       string
	length     int
	hasLength  bool
	def        any
	hasDefault bool
	filter     *regexp.Regexp
	integer    bool
}

func stringKey(name string) *testKey {
	return &testKey{name: name}
}

func filteredKey(name, pattern string) *testKey {
	return &testKey{name: name, filter: regexp.MustCompile("^" + pattern + "$")}
}

func intKey(name string, length int) *testKey {
	return &testKey{name: name, integer: true, length: length, hasLength: length > 0}
}

func (k *testKey) Name() string { return k.name }

func (k *testKey) Length() (int, bool) { return k.length, k.hasLength }

func (k *testKey) Default() (any, bool) { return k.def, k.hasDefault }

func (k *testKey) ValueFromStr(s string) (any, error) {
	if k.filter != nil && !k.filter.MatchString(s) {
		return nil, fmt.Errorf("%w: %q rejected by filter", ErrConversion, s)
	}

	if !k.integer {
		return s, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversion, err)
	}

	return n, nil
}

func (k *testKey) StrFromValue(v any, ignoreType bool) (string, error) {
	if !k.integer {
		s, ok := v.(string)
		if !ok {
			if ignoreType {
				return fmt.Sprint(v), nil
			}

			return "", fmt.Errorf("%w: %v is not a string", ErrConversion, v)
		}

		return s, nil
	}

	n, ok := v.(int)
	if !ok {
		if ignoreType {
			return fmt.Sprint(v), nil
		}

		return "", fmt.Errorf("%w: %v is not an int", ErrConversion, v)
	}

	if k.hasLength {
		return fmt.Sprintf("%0*d", k.length, n), nil
	}

	return strconv.Itoa(n), nil
}

func (k *testKey) Equal(other Key) bool {
	o, ok := other.(*testKey)

	return ok && o == k
}

func keyTable(keys ...*testKey) map[string]Key {
	m := make(map[string]Key, len(keys))
	for _, k := range keys {
		m[k.name] = k
	}

	return m
}

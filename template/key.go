package template

// Key is the capability contract a typed template key must satisfy.
//
// Concrete key kinds (string, integer, sequence, timestamp, enum) live
// outside this package; Key only names what the engine needs from them.
// Two Key values bound to the same Name but differing in any other
// attribute are considered distinct keys, and a single definition must
// never reference both under the same name (see [ErrDefinition]).
type Key interface {
	// Name returns the key's identifier, matching the grammar
	// [a-zA-Z_ 0-9.]+.
	Name() string

	// Length returns the key's fixed string length and true if the key
	// constrains its string form to an exact length (for example,
	// zero-padded integers); otherwise returns 0, false.
	Length() (int, bool)

	// Default returns the key's default value and true if one is
	// configured; otherwise returns nil, false.
	Default() (any, bool)

	// ValueFromStr converts a candidate substring into a typed value.
	// It returns a wrapped [ErrConversion] on rejection.
	ValueFromStr(s string) (any, error)

	// StrFromValue renders a typed value back to its string form. When
	// ignoreType is true the key should accept and stringify values
	// outside its normal type (used for formatting defaults and
	// passthrough placeholders). It returns a wrapped [ErrConversion] on
	// rejection.
	StrFromValue(v any, ignoreType bool) (string, error)

	// Equal reports whether other is the same key: same name and same
	// validation behavior.
	Equal(other Key) bool
}

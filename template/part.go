package template

// Part is one element of a Variation's parsed body: either a literal
// substring or a reference to a Key. Exactly one of Literal/IsKey holds.
//
// This is the sum type the re-architecture notes call for in place of
// runtime type switches on an untyped parts slice.
type Part struct {
	literal string
	key     Key
}

// LiteralPart constructs a literal text Part.
func LiteralPart(s string) Part {
	return Part{literal: s}
}

// KeyPart constructs a Part referencing key.
func KeyPart(key Key) Part {
	return Part{key: key}
}

// IsKey reports whether p references a Key rather than literal text.
func (p Part) IsKey() bool {
	return p.key != nil
}

// Literal returns the literal text of p. Only meaningful when !p.IsKey().
func (p Part) Literal() string {
	return p.literal
}

// Key returns the Key referenced by p, or nil if p is a literal.
func (p Part) Key() Key {
	return p.key
}

package template

import (
	"fmt"
	"strings"
)

// Variation is one concrete definition obtained by resolving every
// optional section's inclusion. It is immutable after construction.
type Variation struct {
	original string
	fixed    string
	expanded string
	cleaned  string
	prefix   string

	parts       []Part
	orderedKeys []Key
	namedKeys   map[string]Key
	staticTokens []string
}

// newVariation builds a Variation from one expanded (alias-unresolved)
// definition string, a lookup table from the alias used in {name}
// references to the Key it binds, a template name (for error messages),
// and the path/string prefix to prepend for the expanded form.
func newVariation(definition string, keys map[string]Key, templateName, prefix string) (*Variation, error) {
	v := &Variation{
		original: definition,
		prefix:   prefix,
	}

	if err := v.repopulateKeys(keys, templateName); err != nil {
		return nil, err
	}

	v.updateFixedDefinition(keys)
	v.updateExpandedDefinition()
	v.updateCleanedDefinition()

	if err := v.repopulateParts(); err != nil {
		return nil, err
	}

	return v, nil
}

// repopulateKeys scans v.original for key references and populates
// namedKeys/orderedKeys, rejecting duplicate-name collisions between
// distinct Key values (I4) and references to undefined keys (I3).
func (v *Variation) repopulateKeys(keys map[string]Key, templateName string) error {
	named := make(map[string]Key)

	var ordered []Key

	for _, m := range keyRefRegexp.FindAllStringSubmatch(v.original, -1) {
		alias := m[1]

		key, ok := keys[alias]
		if !ok {
			return fmt.Errorf("%w: template %q refers to key %q which is not supplied",
				ErrDefinition, templateName, alias)
		}

		if existing, ok := named[key.Name()]; ok && !existing.Equal(key) {
			return fmt.Errorf("%w: template %q uses two distinct keys named %q",
				ErrDefinition, templateName, key.Name())
		}

		named[key.Name()] = key
		ordered = append(ordered, key)
	}

	v.namedKeys = named
	v.orderedKeys = ordered

	return nil
}

// updateFixedDefinition substitutes each {alias} with {canonicalName},
// performing key-alias normalisation.
func (v *Variation) updateFixedDefinition(keys map[string]Key) {
	v.fixed = keyRefRegexp.ReplaceAllStringFunc(v.original, func(ref string) string {
		alias := ref[1 : len(ref)-1]

		key, ok := keys[alias]
		if !ok {
			return ref
		}

		return "{" + key.Name() + "}"
	})
}

// updateExpandedDefinition prepends the prefix to the fixed definition.
func (v *Variation) updateExpandedDefinition() {
	if v.fixed == "" {
		v.expanded = v.prefix

		return
	}

	if v.prefix == "" {
		v.expanded = v.fixed

		return
	}

	v.expanded = joinPrefix(v.prefix, v.fixed)
}

// joinPrefix joins a prefix and a fixed definition body with exactly one
// separating slash.
func joinPrefix(prefix, body string) string {
	switch {
	case strings.HasSuffix(prefix, "/") && strings.HasPrefix(body, "/"):
		return prefix + body[1:]
	case strings.HasSuffix(prefix, "/") || strings.HasPrefix(body, "/"):
		return prefix + body
	default:
		return prefix + "/" + body
	}
}

// updateCleanedDefinition replaces each {name} with a %(name)s-style
// positional render token, consumed by apply's substitution step.
func (v *Variation) updateCleanedDefinition() {
	v.cleaned = keyRefRegexp.ReplaceAllString(v.fixed, "%($1)s")
}

// repopulateParts rebuilds parts and staticTokens from the expanded
// definition, rejecting two adjacent key references with no separating
// literal (no token boundary could ever anchor a parse between them).
func (v *Variation) repopulateParts() error {
	var parts []Part

	var tokens []string

	cursor := 0
	lastWasKey := false

	for _, loc := range keyRefRegexp.FindAllStringSubmatchIndex(v.expanded, -1) {
		start, end := loc[0], loc[1]
		nameStart, nameEnd := loc[2], loc[3]

		if start > cursor {
			literal := v.expanded[cursor:start]
			parts = append(parts, LiteralPart(literal))
			tokens = append(tokens, strings.ToLower(literal))
			lastWasKey = false
		} else if lastWasKey {
			return fmt.Errorf("%w: adjacent key references with no separating literal in %q",
				ErrDefinition, v.expanded)
		}

		name := v.expanded[nameStart:nameEnd]
		key := v.namedKeys[name]
		parts = append(parts, KeyPart(key))
		lastWasKey = true
		cursor = end
	}

	if cursor < len(v.expanded) {
		literal := v.expanded[cursor:]
		parts = append(parts, LiteralPart(literal))
		tokens = append(tokens, strings.ToLower(literal))
	}

	v.parts = parts
	v.staticTokens = tokens

	return nil
}

// Original returns the source form of this variation with optional
// brackets already resolved for the chosen sections.
func (v *Variation) Original() string { return v.original }

// Fixed returns Original after alias normalisation.
func (v *Variation) Fixed() string { return v.fixed }

// Expanded returns Fixed prefixed with the platform root or sentinel.
func (v *Variation) Expanded() string { return v.expanded }

// Cleaned returns Fixed with each {name} replaced by a positional
// render token.
func (v *Variation) Cleaned() string { return v.cleaned }

// Parts returns the ordered sequence of literal and key elements of the
// expanded definition.
func (v *Variation) Parts() []Part { return v.parts }

// OrderedKeys returns the subsequence of Parts restricted to keys, in
// order, with duplicates if a key is referenced more than once.
func (v *Variation) OrderedKeys() []Key { return v.orderedKeys }

// NamedKeys returns the unique keys of this variation keyed by name.
func (v *Variation) NamedKeys() map[string]Key { return v.namedKeys }

// StaticTokens returns the lowercase literal substrings between keys,
// in order, derived from the expanded (prefix-included) form.
func (v *Variation) StaticTokens() []string { return v.staticTokens }

// HasKey reports whether name is bound in this variation.
func (v *Variation) HasKey(name string) bool {
	_, ok := v.namedKeys[name]

	return ok
}

package template

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var renderTokenRegexp = regexp.MustCompile(`%\((` + keyNamePattern + `)\)s`)

// Template is the public entity wrapping a non-empty, longest-first
// ordered set of [Variation]s derived from one definition string. It is
// immutable after construction.
type Template struct {
	name       string
	definition string
	variations []*Variation
	prefix     string
}

// newTemplate builds a Template from a raw definition string and a
// lookup table from the alias used in {name} references to the Key it
// binds. prefix is prepended to every variation's expanded form (a
// platform root for path templates, a sentinel for string templates).
func newTemplate(name, definition string, keys map[string]Key, prefix string) (*Template, error) {
	defs, err := expandVariations(definition)
	if err != nil {
		return nil, err
	}

	variations := make([]*Variation, 0, len(defs))

	for _, def := range defs {
		v, err := newVariation(def, keys, name, prefix)
		if err != nil {
			return nil, err
		}

		variations = append(variations, v)
	}

	sort.SliceStable(variations, func(i, j int) bool {
		return len(variations[i].Original()) > len(variations[j].Original())
	})

	return &Template{
		name:       name,
		definition: variations[0].Original(),
		variations: variations,
		prefix:     prefix,
	}, nil
}

// NewTemplate constructs a plain Template (no path/string facet) from a
// definition string and a lookup table from the alias used in {name}
// references to the Key it binds.
func NewTemplate(name, definition string, keys map[string]Key) (*Template, error) {
	return newTemplate(name, definition, keys, "")
}

// Name returns the template's configured name.
func (t *Template) Name() string { return t.name }

// Definition returns the longest variation's original definition.
func (t *Template) Definition() string { return t.definition }

// Variations returns the template's variations, longest-first.
func (t *Template) Variations() []*Variation { return t.variations }

// shortest returns the variation with the fewest keys, used for
// missing-keys and optionality queries.
func (t *Template) shortest() *Variation {
	shortest := t.variations[0]
	for _, v := range t.variations[1:] {
		if len(v.NamedKeys()) < len(shortest.NamedKeys()) {
			shortest = v
		}
	}

	return shortest
}

// IsOptional reports whether name is absent from the shortest variation,
// i.e. whether some variation of the template omits it.
func (t *Template) IsOptional(name string) bool {
	return !t.shortest().HasKey(name)
}

// MissingKeys returns the names required by the shortest variation that
// are absent from fields. When skipDefaults is true, keys with a
// configured default are not considered required.
func (t *Template) MissingKeys(fields Fields, skipDefaults bool) []string {
	var missing []string

	for name, key := range t.shortest().NamedKeys() {
		if _, ok := fields[name]; ok {
			continue
		}

		if _, hasDefault := key.Default(); hasDefault && skipDefaults {
			continue
		}

		missing = append(missing, name)
	}

	sort.Strings(missing)

	return missing
}

// Apply renders the longest variation whose required keys are all
// satisfied by fields, substituting each key's stringified value.
func (t *Template) Apply(fields Fields) (string, error) {
	return t.applyRendered(fields)
}

// applyRendered selects the longest satisfied variation and renders it.
// Shared by Template.Apply and TemplatePath.Apply, which additionally
// joins the result with a platform-specific root and separator.
func (t *Template) applyRendered(fields Fields) (string, error) {
	for _, v := range t.variations {
		satisfied := true

		for name, key := range v.NamedKeys() {
			if _, ok := fields[name]; ok {
				continue
			}

			if _, hasDefault := key.Default(); hasDefault {
				continue
			}

			satisfied = false

			break
		}

		if !satisfied {
			continue
		}

		return t.render(v, fields)
	}

	return "", fmt.Errorf("%w: template %q requires %v", ErrMissingFields, t.name, t.MissingKeys(fields, true))
}

// render substitutes fields (falling back to each key's default) into
// v's cleaned render template.
func (t *Template) render(v *Variation, fields Fields) (string, error) {
	var renderErr error

	out := renderTokenRegexp.ReplaceAllStringFunc(v.Cleaned(), func(token string) string {
		name := token[2 : len(token)-2]

		key := v.NamedKeys()[name]

		value, ok := fields[name]
		if !ok {
			value, ok = key.Default()
			if !ok {
				renderErr = fmt.Errorf("%w: %s", ErrMissingFields, name)

				return token
			}
		}

		s, err := key.StrFromValue(value, false)
		if err != nil {
			renderErr = fmt.Errorf("%w: key %q: %w", ErrConversion, name, err)

			return token
		}

		return s
	})

	if renderErr != nil {
		return "", renderErr
	}

	return out, nil
}

// GetFields parses input against each variation longest-first and
// returns the first fully resolved field mapping. skipKeys are accepted
// verbatim and excluded from the returned mapping and from consistency
// checks.
func (t *Template) GetFields(input string, skipKeys ...string) (Fields, error) {
	var lastErr error

	for _, v := range t.variations {
		fields, err := parse(v, input, skipKeys)
		if err == nil {
			return fields, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

// Validate reports whether input parses against the template and, when
// fields is non-empty, whether every name present in fields equals the
// parsed value for that name. Names in skipKeys are ignored.
func (t *Template) Validate(input string, fields Fields, skipKeys ...string) bool {
	parsed, err := t.GetFields(input, skipKeys...)
	if err != nil {
		return false
	}

	skip := make(map[string]bool, len(skipKeys))
	for _, k := range skipKeys {
		skip[k] = true
	}

	for name, want := range fields {
		if skip[name] {
			continue
		}

		got, ok := parsed[name]
		if !ok || got != want {
			return false
		}
	}

	return true
}

// ValidateAndGetFields returns the parsed fields and true on success, or
// nil, false if input does not resolve to a unique consistent mapping.
// It converts [ErrParseFailure] and [ErrAmbiguousParse] into a null
// result rather than propagating them.
func (t *Template) ValidateAndGetFields(input string, skipKeys ...string) (Fields, bool) {
	fields, err := t.GetFields(input, skipKeys...)
	if err != nil {
		return nil, false
	}

	return fields, true
}

// normalizeSeparators collapses runs of sep into a single separator,
// used to bring an input path to OS-canonical form before parsing.
func normalizeSeparators(input string, sep byte) string {
	var sb strings.Builder

	prevSep := false

	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == sep {
			if prevSep {
				continue
			}

			prevSep = true
		} else {
			prevSep = false
		}

		sb.WriteByte(c)
	}

	return sb.String()
}

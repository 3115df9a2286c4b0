package template

// stringPrefix is the sentinel prefix used to anchor string templates'
// parts/static-token computation, standing in for the absent filesystem
// root a path template would otherwise carry.
const stringPrefix = "@"

// TemplateString is a Template specialised for non-path strings (for
// example a configurable filename or shot-name format). It has no
// parent, and can carry a cross-validation Template that
// [TemplateString.Validate] also checks input against; GetFields and Apply
// do not consult it.
type TemplateString struct {
	*Template

	validateWith *Template
}

// NewTemplateString constructs a TemplateString. validateWith, if
// non-nil, is an additional Template that input to
// [TemplateString.Validate] must also satisfy; GetFields and Apply do not
// check against it.
func NewTemplateString(name, definition string, keys map[string]Key, validateWith *Template) (*TemplateString, error) {
	base, err := newTemplate(name, definition, keys, stringPrefix)
	if err != nil {
		return nil, err
	}

	return &TemplateString{Template: base, validateWith: validateWith}, nil
}

// ValidateWith returns the cross-validation Template, or nil if none is
// configured.
func (ts *TemplateString) ValidateWith() *Template { return ts.validateWith }

// GetFields extracts field values from input, anchoring the parse to the
// synthetic string prefix the way the underlying variations expect.
func (ts *TemplateString) GetFields(input string, skipKeys ...string) (Fields, error) {
	return ts.Template.GetFields(joinPrefix(stringPrefix, input), skipKeys...)
}

// Validate reports whether input parses against the template, matches
// fields (skip rules as in [Template.Validate]), and, when a
// cross-validation template is configured, also validates against it.
func (ts *TemplateString) Validate(input string, fields Fields, skipKeys ...string) bool {
	parsed, err := ts.GetFields(input, skipKeys...)
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

	if ts.validateWith != nil {
		if !ts.validateWith.Validate(input, nil, skipKeys...) {
			return false
		}
	}

	return true
}

package template

import (
	"fmt"
	"strings"
)

// OS identifiers used as keys into a TemplatePath's root mapping, matching
// the os_id vocabulary of roots.yml (section 6/11 of the expanded spec).
const (
	OSWindows = "win32"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// TemplatePath is a Template specialised for filesystem paths: it carries
// a per-OS root mapping and renders with the platform-appropriate
// separator. Its parsing representation (parts, static tokens) is
// anchored to one designated "local" OS root.
type TemplatePath struct {
	*Template

	roots   map[string]string
	localOS string
}

// NewTemplatePath constructs a TemplatePath. roots maps an OS identifier
// (see OSWindows/OSDarwin/OSLinux) to that platform's absolute root path;
// localOS selects which root anchors the definition used for parsing.
func NewTemplatePath(name, definition string, keys map[string]Key, roots map[string]string, localOS string) (*TemplatePath, error) {
	prefix, ok := roots[localOS]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no root registered for %q", ErrNoRoot, name, localOS)
	}

	base, err := newTemplate(name, definition, keys, prefix)
	if err != nil {
		return nil, err
	}

	cloned := make(map[string]string, len(roots))
	for k, v := range roots {
		cloned[k] = v
	}

	return &TemplatePath{Template: base, roots: cloned, localOS: localOS}, nil
}

// Roots returns the template's OS-identifier-to-root-path mapping.
func (tp *TemplatePath) Roots() map[string]string { return tp.roots }

// Apply renders fields for the given platform (an OS identifier per
// OSWindows/OSDarwin/OSLinux; empty selects the template's local OS),
// joining the rendered body with that platform's root path using its
// native separator. Fails with [ErrNoRoot] if platform has no root.
func (tp *TemplatePath) Apply(fields Fields, platform string) (string, error) {
	if platform == "" {
		platform = tp.localOS
	}

	root, ok := tp.roots[platform]
	if !ok {
		return "", fmt.Errorf("%w: %q has no root registered for %q", ErrNoRoot, tp.Name(), platform)
	}

	body, err := tp.Template.applyRendered(fields)
	if err != nil {
		return "", err
	}

	sep := separatorFor(platform)
	if sep == '\\' {
		body = strings.ReplaceAll(body, "/", "\\")
	}

	return joinRootAndBody(root, body, sep), nil
}

// Parent returns a Template over the directory-stripped definition (the
// portion before the final "/"), sharing this template's keys and roots,
// or nil if the definition has no directory component.
func (tp *TemplatePath) Parent() (*TemplatePath, error) {
	def := tp.Definition()

	i := strings.LastIndexByte(def, '/')
	if i < 0 {
		return nil, nil //nolint:nilnil // absence of a parent is not an error
	}

	keys := make(map[string]Key)

	for _, k := range tp.Variations()[0].OrderedKeys() {
		keys[k.Name()] = k
	}

	return NewTemplatePath(tp.Name()+".parent", def[:i], keys, tp.roots, tp.localOS)
}

// separatorFor returns the path separator byte conventionally used by the
// given OS identifier: backslash for windows, forward slash otherwise.
func separatorFor(platform string) byte {
	if platform == OSWindows {
		return '\\'
	}

	return '/'
}

// joinRootAndBody joins root and body with exactly one sep between them.
func joinRootAndBody(root, body string, sep byte) string {
	s := string(sep)

	switch {
	case strings.HasSuffix(root, s) && strings.HasPrefix(body, s):
		return root + body[1:]
	case strings.HasSuffix(root, s) || strings.HasPrefix(body, s) || body == "":
		return root + body
	default:
		return root + s + body
	}
}

package config

import (
	"context"
	"fmt"

	"github.com/goccy/go-yaml"

	"go.pathkit.dev/pathkit/keys"
	"go.pathkit.dev/pathkit/template"
)

// TemplateSet is the result of loading templates.yml: the resolved key
// table plus every path and string template it defines.
type TemplateSet struct {
	Keys    map[string]template.Key
	Paths   map[string]*template.TemplatePath
	Strings map[string]*template.TemplateString
}

// rawTemplatesFile mirrors templates.yml's top-level shape.
type rawTemplatesFile struct {
	Keys    map[string]map[string]any `yaml:"keys"`
	Paths   map[string]any            `yaml:"paths"`
	Strings map[string]any            `yaml:"strings"`
}

// LoadTemplates reads and parses the templates.yml document at path,
// resolving its keys/paths/strings sections into a [TemplateSet] against
// the given roots.
func LoadTemplates(ctx context.Context, path string, roots *Roots) (*TemplateSet, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	var raw rawTemplatesFile

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrConfig, path, err)
	}

	keyTable, err := buildKeys(raw.Keys)
	if err != nil {
		return nil, err
	}

	paths, err := buildPaths(raw.Paths, keyTable, roots)
	if err != nil {
		return nil, err
	}

	strings, err := buildStrings(raw.Strings, keyTable, paths)
	if err != nil {
		return nil, err
	}

	for name := range paths {
		if _, dup := strings[name]; dup {
			return nil, fmt.Errorf("%w: %q is defined as both a path and a string template", ErrConfig, name)
		}
	}

	return &TemplateSet{Keys: keyTable, Paths: paths, Strings: strings}, nil
}

func buildKeys(raw map[string]map[string]any) (map[string]template.Key, error) {
	out := make(map[string]template.Key, len(raw))

	for name, attrs := range raw {
		key, err := buildKey(name, attrs)
		if err != nil {
			return nil, err
		}

		out[name] = key
	}

	return out, nil
}

func buildKey(name string, attrs map[string]any) (template.Key, error) {
	kind, _ := attrs["type"].(string)

	switch kind {
	case "string":
		var opts []keys.StringKeyOption

		if filter, ok := attrs["filter"].(string); ok {
			opts = append(opts, keys.WithFilter(filter))
		}

		if choices, ok := stringSlice(attrs["choices"]); ok {
			opts = append(opts, keys.WithChoices(choices...))
		}

		if def, ok := attrs["default"].(string); ok {
			opts = append(opts, keys.WithStringDefault(def))
		}

		return keys.NewStringKey(name, opts...)

	case "integer":
		return keys.NewIntegerKey(name, integerOptions(attrs)...), nil

	case "sequence":
		return keys.NewSequenceKey(name, integerOptions(attrs)...), nil

	case "timestamp":
		layout, _ := attrs["layout"].(string)

		return keys.NewTimestampKey(name, layout), nil

	case "enum":
		choices, _ := stringSlice(attrs["choices"])
		caseSensitive, _ := attrs["case_sensitive"].(bool)
		k := keys.NewEnumKey(name, caseSensitive, choices...)

		if def, ok := attrs["default"].(string); ok {
			k.WithEnumDefault(def)
		}

		return k, nil

	default:
		return nil, fmt.Errorf("%w: key %q has unknown type %q", ErrConfig, name, kind)
	}
}

func integerOptions(attrs map[string]any) []keys.IntegerKeyOption {
	var opts []keys.IntegerKeyOption

	if v, ok := intFromAny(attrs["length"]); ok {
		opts = append(opts, keys.WithLength(v))
	}

	if v, ok := intFromAny(attrs["min"]); ok {
		opts = append(opts, keys.WithMin(v))
	}

	if v, ok := intFromAny(attrs["max"]); ok {
		opts = append(opts, keys.WithMax(v))
	}

	if v, ok := intFromAny(attrs["default"]); ok {
		opts = append(opts, keys.WithIntegerDefault(v))
	}

	return opts
}

func intFromAny(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func stringSlice(v any) ([]string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}

	out := make([]string, 0, len(arr))

	for _, e := range arr {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}

		out = append(out, s)
	}

	return out, true
}

// templateData is the conformed shape of one templates.yml entry: either
// a bare definition string or a mapping with at least a definition.
type templateData struct {
	definition  string
	rootName    string
	validateWith string
}

func conformTemplateData(name string, raw any) (templateData, error) {
	switch v := raw.(type) {
	case string:
		return templateData{definition: v}, nil
	case map[string]any:
		def, ok := v["definition"].(string)
		if !ok {
			return templateData{}, fmt.Errorf("%w: template %q missing definition", ErrConfig, name)
		}

		rootName, _ := v["root_name"].(string)
		validateWith, _ := v["validate_with"].(string)

		return templateData{definition: def, rootName: rootName, validateWith: validateWith}, nil
	default:
		return templateData{}, fmt.Errorf("%w: template %q is not a string or mapping", ErrConfig, name)
	}
}

// detectDuplicates rejects two template names sharing the same
// (rootName, definition) pair.
func detectDuplicates(data map[string]templateData) error {
	seen := make(map[string]string, len(data))

	for name, d := range data {
		key := d.rootName + "\x00" + d.definition

		if other, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q and %q share the same definition %q", ErrConfig, other, name, d.definition)
		}

		seen[key] = name
	}

	return nil
}

func buildPaths(raw map[string]any, keyTable map[string]template.Key, roots *Roots) (map[string]*template.TemplatePath, error) {
	data := make(map[string]templateData, len(raw))

	for name, entry := range raw {
		d, err := conformTemplateData(name, entry)
		if err != nil {
			return nil, err
		}

		data[name] = d
	}

	if err := detectDuplicates(data); err != nil {
		return nil, err
	}

	out := make(map[string]*template.TemplatePath, len(data))

	for name, d := range data {
		rootName := d.rootName
		if rootName == "" {
			if roots == nil || roots.Default == "" {
				return nil, fmt.Errorf(
					"%w: template %q (%s) has no root_name and no default root is configured; "+
						"mark a storage `default: true` in roots.yml", ErrConfig, name, d.definition)
			}

			rootName = roots.Default
		}

		if !containsSlash(d.definition) {
			return nil, fmt.Errorf("%w: template %q (%s) is not a valid path; did you mean to put it under strings?",
				ErrConfig, name, d.definition)
		}

		platformRoots, ok := roots.Storages[rootName]
		if !ok {
			return nil, fmt.Errorf("%w: template %q refers to undefined storage %q", ErrConfig, name, rootName)
		}

		localOS := localOSID(platformRoots)

		tp, err := template.NewTemplatePath(name, d.definition, keyTable, platformRoots, localOS)
		if err != nil {
			return nil, err
		}

		out[name] = tp
	}

	return out, nil
}

func buildStrings(raw map[string]any, keyTable map[string]template.Key, paths map[string]*template.TemplatePath) (map[string]*template.TemplateString, error) {
	data := make(map[string]templateData, len(raw))

	for name, entry := range raw {
		d, err := conformTemplateData(name, entry)
		if err != nil {
			return nil, err
		}

		data[name] = d
	}

	out := make(map[string]*template.TemplateString, len(data))

	for name, d := range data {
		var validator *template.Template

		if d.validateWith != "" {
			tp, ok := paths[d.validateWith]
			if !ok {
				return nil, fmt.Errorf("%w: template %q validate_with refers to undefined template %q",
					ErrConfig, name, d.validateWith)
			}

			validator = tp.Template
		}

		ts, err := template.NewTemplateString(name, d.definition, keyTable, validator)
		if err != nil {
			return nil, err
		}

		out[name] = ts
	}

	return out, nil
}

func containsSlash(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			return true
		}
	}

	return false
}

// localOSID picks which OS identifier in platformRoots anchors a path
// template's parsing representation, preferring the conventional
// identifiers in order.
func localOSID(platformRoots map[string]string) string {
	for _, id := range []string{template.OSLinux, template.OSDarwin, template.OSWindows} {
		if _, ok := platformRoots[id]; ok {
			return id
		}
	}

	for id := range platformRoots {
		return id
	}

	return ""
}

package main

import (
	"fmt"
	"strings"

	"go.pathkit.dev/pathkit/template"
)

// parseFields converts a list of "name=value" strings into a [template.Fields]
// mapping, converting each value via the matching key's ValueFromStr.
func parseFields(raw []string, keys map[string]template.Key) (template.Fields, error) {
	fields := make(template.Fields, len(raw))

	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --field %q, expected name=value", kv)
		}

		key, ok := keys[name]
		if !ok {
			return nil, fmt.Errorf("unknown key %q", name)
		}

		converted, err := key.ValueFromStr(value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}

		fields[name] = converted
	}

	return fields, nil
}

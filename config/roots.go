package config

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// PrimaryStorageName is the conventional name a storage root is given
// when it is meant to serve as the default for path templates that omit
// root_name.
const PrimaryStorageName = "primary"

// Roots holds the parsed contents of a roots.yml document: a mapping
// from storage name to its per-OS root paths, plus the name of the
// default storage, if any.
type Roots struct {
	// Storages maps storage name to {os_id: path}.
	Storages map[string]map[string]string
	// Default is the storage name flagged `default: true`, or inferred
	// from [PrimaryStorageName]. Empty when no default is determined.
	Default string
}

// LoadRoots reads and parses the roots.yml document at path.
func LoadRoots(ctx context.Context, path string) (*Roots, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	var raw map[string]map[string]any

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrConfig, path, err)
	}

	roots := &Roots{Storages: make(map[string]map[string]string, len(raw))}

	for name, entry := range raw {
		paths := make(map[string]string, len(entry))

		isDefault := false

		for osID, v := range entry {
			if osID == "default" {
				b, ok := v.(bool)
				if ok {
					isDefault = b
				}

				continue
			}

			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: storage %q: path for %q is not a string", ErrConfig, name, osID)
			}

			paths[osID] = s
		}

		roots.Storages[name] = paths

		if isDefault {
			if roots.Default != "" {
				return nil, fmt.Errorf("%w: multiple default roots: %q and %q", ErrConfig, roots.Default, name)
			}

			roots.Default = name
		}
	}

	if roots.Default == "" {
		if _, ok := roots.Storages[PrimaryStorageName]; ok {
			roots.Default = PrimaryStorageName
		}
	}

	return roots, nil
}

// readFile reads path, honoring ctx cancellation before doing the I/O.
func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // config path is an operator-supplied input, not user input.
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrConfig, path, err)
	}

	return data, nil
}

package template

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// keyNamePattern matches the key-name grammar: letters, digits,
// underscore, space, and dot.
const keyNamePattern = `[a-zA-Z_ 0-9.]+`

var keyRefRegexp = regexp.MustCompile(`\{(` + keyNamePattern + `)\}`)

// segment is one piece of a raw definition string: either fixed
// (always present) or optional (present only when its bracketed section
// is chosen for inclusion).
type segment struct {
	text     string
	optional bool
}

// splitSegments scans a definition string into an ordered sequence of
// fixed and optional segments. Brackets must appear only as paired,
// non-nested section delimiters (I2); every optional section must
// contain at least one key reference (I1).
func splitSegments(definition string) ([]segment, error) {
	var segments []segment

	var buf strings.Builder

	depth := 0
	start := 0

	flush := func(end int, optional bool) error {
		text := definition[start:end]
		if optional {
			if !keyRefRegexp.MatchString(text) {
				return fmt.Errorf("%w: optional section %q has no key reference", ErrDefinition, text)
			}
		} else if strings.ContainsAny(text, "[]") {
			return fmt.Errorf("%w: unbalanced bracket in %q", ErrDefinition, definition)
		}

		if text != "" {
			segments = append(segments, segment{text: text, optional: optional})
		}

		return nil
	}

	for i, r := range definition {
		switch r {
		case '[':
			if depth == 0 {
				if err := flush(i, false); err != nil {
					return nil, err
				}

				start = i + 1
			} else {
				return nil, fmt.Errorf("%w: nested brackets in %q", ErrDefinition, definition)
			}

			depth++
		case ']':
			depth--

			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced bracket in %q", ErrDefinition, definition)
			}

			if depth == 0 {
				if err := flush(i, true); err != nil {
					return nil, err
				}

				start = i + 1
			}
		default:
			buf.WriteRune(r)
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced bracket in %q", ErrDefinition, definition)
	}

	if err := flush(len(definition), false); err != nil {
		return nil, err
	}

	return segments, nil
}

// expandVariations enumerates every inclusion combination of the optional
// segments in definition, concatenates each combination in source order,
// and returns the distinct resulting strings sorted longest-first
// (stable: ties keep enumeration order, duplicates dropped keeping the
// first occurrence).
func expandVariations(definition string) ([]string, error) {
	segments, err := splitSegments(definition)
	if err != nil {
		return nil, err
	}

	var optionalIdx []int

	for i, seg := range segments {
		if seg.optional {
			optionalIdx = append(optionalIdx, i)
		}
	}

	k := len(optionalIdx)
	if k > 20 {
		return nil, fmt.Errorf("%w: too many optional sections (%d) in %q", ErrDefinition, k, definition)
	}

	combos := 1 << k
	seen := make(map[string]struct{}, combos)

	results := make([]string, 0, combos)

	for mask := 0; mask < combos; mask++ {
		included := make(map[int]bool, k)
		for bit, idx := range optionalIdx {
			included[idx] = mask&(1<<bit) != 0
		}

		var sb strings.Builder

		for i, seg := range segments {
			if seg.optional && !included[i] {
				continue
			}

			sb.WriteString(seg.text)
		}

		s := sb.String()
		if _, ok := seen[s]; ok {
			continue
		}

		seen[s] = struct{}{}

		results = append(results, s)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return len(results[i]) > len(results[j])
	})

	return results, nil
}

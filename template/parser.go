package template

import (
	"fmt"
	"sort"
	"strings"
)

// leaf is one terminal outcome of the parser's depth-first search: either
// a fully resolved field mapping, or a failure with the input position
// at which it occurred (used to pick the most specific error when every
// branch fails).
type leaf struct {
	ok       bool
	fields   Fields
	err      error
	progress int
}

// parseState carries the read-only context shared across one GetFields
// call's recursive search.
type parseState struct {
	parts     []Part
	input     string
	lowerIn   string
	skip      map[string]bool
}

// parse inverts variation against input, returning the unique consistent
// field mapping or a wrapped [ErrParseFailure]/[ErrAmbiguousParse].
func parse(v *Variation, input string, skipKeys []string) (Fields, error) {
	normalized := normalizeSeparators(input, '/')
	normalized = normalizeSeparators(normalized, '\\')

	skip := make(map[string]bool, len(skipKeys))
	for _, k := range skipKeys {
		skip[k] = true
	}

	st := &parseState{
		parts:   v.Parts(),
		input:   normalized,
		lowerIn: strings.ToLower(normalized),
		skip:    skip,
	}

	leaves := st.resolve(0, 0, Fields{})

	var successes []Fields

	var bestErr error

	bestProgress := -1

	for _, l := range leaves {
		if l.ok {
			dup := false

			for _, s := range successes {
				if s.Equal(l.fields) {
					dup = true

					break
				}
			}

			if !dup {
				successes = append(successes, l.fields)
			}

			continue
		}

		if l.progress > bestProgress {
			bestProgress = l.progress
			bestErr = l.err
		}
	}

	switch len(successes) {
	case 0:
		if bestErr == nil {
			bestErr = fmt.Errorf("%w: %q does not match %q", ErrParseFailure, input, v.Expanded())
		}

		return nil, bestErr
	case 1:
		return stripSkipped(successes[0], skip), nil
	default:
		return nil, fmt.Errorf("%w: %q matches %d distinct field mappings against %q",
			ErrAmbiguousParse, input, len(successes), v.Expanded())
	}
}

func stripSkipped(fields Fields, skip map[string]bool) Fields {
	if len(skip) == 0 {
		return fields
	}

	out := make(Fields, len(fields))

	for k, v := range fields {
		if skip[k] {
			continue
		}

		out[k] = v
	}

	return out
}

// resolve explores the search tree from parts[idx] at input position
// cursor, with fields already bound by the ancestor path, returning every
// terminal outcome reachable from this node.
func (st *parseState) resolve(idx, cursor int, fields Fields) []leaf {
	if idx == len(st.parts) {
		if cursor == len(st.input) {
			return []leaf{{ok: true, fields: fields, progress: cursor}}
		}

		return []leaf{{
			err:      fmt.Errorf("%w: unconsumed input %q remains", ErrParseFailure, st.input[cursor:]),
			progress: cursor,
		}}
	}

	part := st.parts[idx]
	if !part.IsKey() {
		return st.resolveLiteral(part, idx, cursor, fields)
	}

	return st.resolveKey(part.Key(), idx, cursor, fields)
}

func (st *parseState) resolveLiteral(part Part, idx, cursor int, fields Fields) []leaf {
	tok := strings.ToLower(part.Literal())

	if cursor+len(tok) > len(st.input) || st.lowerIn[cursor:cursor+len(tok)] != tok {
		return []leaf{{
			err:      fmt.Errorf("%w: expected %q at position %d", ErrParseFailure, part.Literal(), cursor),
			progress: cursor,
		}}
	}

	return st.resolve(idx+1, cursor+len(tok), fields)
}

func (st *parseState) resolveKey(key Key, idx, cursor int, fields Fields) []leaf {
	var ends []int

	if idx+1 < len(st.parts) {
		tok := strings.ToLower(st.parts[idx+1].Literal())
		ends = findOccurrences(st.lowerIn, tok, cursor)
	} else {
		ends = []int{len(st.input)}
	}

	if bound, ok := fields[key.Name()]; ok && !st.skip[key.Name()] {
		return st.resolveBoundKey(key, bound, idx, cursor, ends, fields)
	}

	var leaves []leaf

	for _, end := range ends {
		if end < cursor {
			continue
		}

		candidate := st.input[cursor:end]

		if st.skip[key.Name()] {
			next := fields.clone()
			next[key.Name()] = candidate
			leaves = append(leaves, st.resolve(idx+1, end, next)...)

			continue
		}

		if strings.ContainsAny(candidate, "/\\") {
			leaves = append(leaves, leaf{
				err:      fmt.Errorf("%w: key %q candidate %q crosses a path separator", ErrParseFailure, key.Name(), candidate),
				progress: cursor,
			})

			continue
		}

		if length, ok := key.Length(); ok && len(candidate) < length {
			leaves = append(leaves, leaf{
				err:      fmt.Errorf("%w: key %q candidate %q is shorter than required length %d", ErrParseFailure, key.Name(), candidate, length),
				progress: cursor,
			})

			continue
		}

		value, err := key.ValueFromStr(candidate)
		if err != nil {
			leaves = append(leaves, leaf{
				err:      fmt.Errorf("%w: key %q: %w", ErrConversion, key.Name(), err),
				progress: cursor,
			})

			continue
		}

		next := fields.clone()
		next[key.Name()] = value
		leaves = append(leaves, st.resolve(idx+1, end, next)...)
	}

	return leaves
}

// resolveBoundKey handles a key already bound by an ancestor branch: the
// candidate substring must equal the bound value's string form, and when
// it does this is the only expansion tried at this step (sibling
// candidate ends are pruned).
func (st *parseState) resolveBoundKey(key Key, bound any, idx, cursor int, ends []int, fields Fields) []leaf {
	boundStr, err := key.StrFromValue(bound, true)
	if err != nil {
		return []leaf{{err: fmt.Errorf("%w: key %q: %w", ErrConversion, key.Name(), err), progress: cursor}}
	}

	for _, end := range ends {
		if end < cursor {
			continue
		}

		if st.input[cursor:end] == boundStr {
			return st.resolve(idx+1, end, fields)
		}
	}

	return []leaf{{
		err:      fmt.Errorf("%w: key %q conflicts with previously bound value %q", ErrParseFailure, key.Name(), boundStr),
		progress: cursor,
	}}
}

// findOccurrences returns every start index of tok in s at or after from,
// in ascending order.
func findOccurrences(s, tok string, from int) []int {
	if tok == "" {
		return []int{from}
	}

	var out []int

	for i := from; ; {
		j := strings.Index(s[i:], tok)
		if j < 0 {
			break
		}

		pos := i + j
		out = append(out, pos)
		i = pos + 1
	}

	sort.Ints(out)

	return out
}

package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSegments(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		def     string
		want    []segment
		wantErr bool
	}{
		"no optional sections": {
			def:  "foo/bar",
			want: []segment{{text: "foo/bar"}},
		},
		"one optional section": {
			def: "{Shot}[_{name}]",
			want: []segment{
				{text: "{Shot}"},
				{text: "_{name}", optional: true},
			},
		},
		"empty optional section rejected": {
			def:     "foo[]bar",
			wantErr: true,
		},
		"optional section without key rejected": {
			def:     "foo[bar]baz",
			wantErr: true,
		},
		"unbalanced open bracket rejected": {
			def:     "foo[{bar}",
			wantErr: true,
		},
		"unbalanced close bracket rejected": {
			def:     "foo{bar}]",
			wantErr: true,
		},
		"nested brackets rejected": {
			def:     "foo[{a}[{b}]]",
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := splitSegments(tc.def)
			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExpandVariations(t *testing.T) {
	t.Parallel()

	got, err := expandVariations("{Shot}[_{name}]")
	require.NoError(t, err)
	assert.Equal(t, []string{"{Shot}_{name}", "{Shot}"}, got)
}

func TestExpandVariationsTwoOptionalSections(t *testing.T) {
	t.Parallel()

	got, err := expandVariations("{a}[_{b}][_{c}]")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "{a}_{b}_{c}", got[0])
}

package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sceneKeys() map[string]Key {
	return keyTable(
		filteredKey("Sequence", `[a-zA-Z0-9_]+`),
		filteredKey("Shot", `[a-zA-Z0-9_]+`),
		filteredKey("Step", `[a-zA-Z0-9_]+`),
		filteredKey("name", `[a-zA-Z0-9_]+`),
		intKey("version", 3),
	)
}

func TestTemplatePathApplyAndParse(t *testing.T) {
	t.Parallel()

	roots := map[string]string{
		OSLinux:   "/studio",
		OSWindows: `Z:\studio`,
	}

	tpl, err := NewTemplatePath("scene", "shots/{Sequence}/{Shot}/{Step}/work/{name}.v{version}.ma", sceneKeys(), roots, OSLinux)
	require.NoError(t, err)

	fields, err := tpl.GetFields("/studio/shots/seq_1/shot_2/comp/work/henry.v003.ma")
	require.NoError(t, err)
	assert.Equal(t, Fields{
		"Sequence": "seq_1",
		"Shot":     "shot_2",
		"Step":     "comp",
		"name":     "henry",
		"version":  3,
	}, fields)

	out, err := tpl.Apply(Fields{
		"Sequence": "s", "Shot": "sh", "Step": "c", "name": "n", "version": 3,
	}, OSWindows)
	require.NoError(t, err)
	assert.Equal(t, `Z:\studio\shots\s\sh\c\work\n.v003.ma`, out)
}

func TestTemplatePathNoRootForPlatform(t *testing.T) {
	t.Parallel()

	roots := map[string]string{OSLinux: "/studio"}

	tpl, err := NewTemplatePath("scene", "shots/{Shot}", keyTable(stringKey("Shot")), roots, OSLinux)
	require.NoError(t, err)

	_, err = tpl.Apply(Fields{"Shot": "sh010"}, OSWindows)
	require.ErrorIs(t, err, ErrNoRoot)
}

func TestTemplatePathParent(t *testing.T) {
	t.Parallel()

	roots := map[string]string{OSLinux: "/studio"}

	tpl, err := NewTemplatePath("scene", "shots/{Shot}/work/{name}.ma", keyTable(stringKey("Shot"), stringKey("name")), roots, OSLinux)
	require.NoError(t, err)

	parent, err := tpl.Parent()
	require.NoError(t, err)
	require.NotNil(t, parent)
	assert.Equal(t, "shots/{Shot}/work", parent.Definition())

	grandparent, err := parent.Parent()
	require.NoError(t, err)
	require.NotNil(t, grandparent)
	assert.Equal(t, "shots/{Shot}", grandparent.Definition())

	root, err := grandparent.Parent()
	require.NoError(t, err)
	require.NotNil(t, root)
	assert.Equal(t, "shots", root.Definition())

	noParent, err := root.Parent()
	require.NoError(t, err)
	assert.Nil(t, noParent)
}

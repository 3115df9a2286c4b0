package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.pathkit.dev/pathkit/stringtest"
)

var sampleRoots = stringtest.Input(`
	primary:
	  linux: /studio
	  win32: Z:\studio
	`)

var sampleTemplates = stringtest.Input(`
	keys:
	  Sequence:
	    type: string
	    filter: "[a-zA-Z0-9_]+"
	  Shot:
	    type: string
	    filter: "[a-zA-Z0-9_]+"
	  Step:
	    type: string
	    filter: "[a-zA-Z0-9_]+"
	  name:
	    type: string
	    filter: "[a-zA-Z0-9_]+"
	  version:
	    type: integer
	    length: 3

	paths:
	  scene_work:
	    definition: shots/{Sequence}/{Shot}/{Step}/work/{name}.v{version}.ma

	strings:
	  filename:
	    definition: "{name}.v{version}.ma"
	    validate_with: scene_work
	`)

func TestLoadTemplates(t *testing.T) {
	t.Parallel()

	rootsPath := writeTemp(t, "roots.yml", sampleRoots)
	templatesPath := writeTemp(t, "templates.yml", sampleTemplates)

	roots, err := LoadRoots(context.Background(), rootsPath)
	require.NoError(t, err)

	set, err := LoadTemplates(context.Background(), templatesPath, roots)
	require.NoError(t, err)

	require.Contains(t, set.Paths, "scene_work")
	require.Contains(t, set.Strings, "filename")

	fields, err := set.Paths["scene_work"].GetFields("/studio/shots/seq_1/shot_2/comp/work/henry.v003.ma")
	require.NoError(t, err)
	assert.Equal(t, "seq_1", fields["Sequence"])
	assert.Equal(t, 3, fields["version"])
}

func TestLoadTemplatesMissingRootName(t *testing.T) {
	t.Parallel()

	templatesPath := writeTemp(t, "templates.yml", `
paths:
  scene_work:
    definition: shots/{name}
keys:
  name:
    type: string
`)

	roots := &Roots{Storages: map[string]map[string]string{"other": {"linux": "/x"}}}

	_, err := LoadTemplates(context.Background(), templatesPath, roots)
	require.ErrorIs(t, err, ErrConfig)
}

func TestLoadTemplatesNonPathDefinitionRejected(t *testing.T) {
	t.Parallel()

	rootsPath := writeTemp(t, "roots.yml", sampleRoots)
	roots, err := LoadRoots(context.Background(), rootsPath)
	require.NoError(t, err)

	templatesPath := writeTemp(t, "templates.yml", `
keys:
  name:
    type: string
paths:
  bad:
    definition: "{name}"
`)

	_, err = LoadTemplates(context.Background(), templatesPath, roots)
	require.ErrorIs(t, err, ErrConfig)
}

func TestLoadTemplatesUnknownValidateWith(t *testing.T) {
	t.Parallel()

	rootsPath := writeTemp(t, "roots.yml", sampleRoots)
	roots, err := LoadRoots(context.Background(), rootsPath)
	require.NoError(t, err)

	templatesPath := writeTemp(t, "templates.yml", `
keys:
  name:
    type: string
strings:
  filename:
    definition: "{name}"
    validate_with: nope
`)

	_, err = LoadTemplates(context.Background(), templatesPath, roots)
	require.ErrorIs(t, err, ErrConfig)
}

package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceKeyFormatPlaceholder(t *testing.T) {
	t.Parallel()

	k := NewSequenceKey("frame", WithLength(4))

	v, err := k.ValueFromStr("FORMAT")
	require.NoError(t, err)
	assert.Equal(t, "FORMAT", v)

	s, err := k.StrFromValue("FORMAT", false)
	require.NoError(t, err)
	assert.Equal(t, "FORMAT", s)
}

func TestSequenceKeyInteger(t *testing.T) {
	t.Parallel()

	k := NewSequenceKey("frame", WithLength(4))

	v, err := k.ValueFromStr("0042")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	s, err := k.StrFromValue(42, false)
	require.NoError(t, err)
	assert.Equal(t, "0042", s)
}

func TestSequenceKeyRejectsOtherStrings(t *testing.T) {
	t.Parallel()

	k := NewSequenceKey("frame")

	_, err := k.StrFromValue("nope", false)
	require.Error(t, err)
}

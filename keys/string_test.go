package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringKeyFilter(t *testing.T) {
	t.Parallel()

	k, err := NewStringKey("name", WithFilter(`[a-z]+`))
	require.NoError(t, err)

	v, err := k.ValueFromStr("henry")
	require.NoError(t, err)
	assert.Equal(t, "henry", v)

	_, err = k.ValueFromStr("Henry1")
	require.Error(t, err)
}

func TestStringKeyChoices(t *testing.T) {
	t.Parallel()

	k, err := NewStringKey("step", WithChoices("comp", "light", "anim"))
	require.NoError(t, err)

	_, err = k.ValueFromStr("comp")
	require.NoError(t, err)

	_, err = k.ValueFromStr("nope")
	require.Error(t, err)
}

func TestStringKeyInvalidFilter(t *testing.T) {
	t.Parallel()

	_, err := NewStringKey("name", WithFilter("("))
	require.ErrorIs(t, err, ErrInvalidOption)
}

func TestStringKeyDefault(t *testing.T) {
	t.Parallel()

	k, err := NewStringKey("name", WithStringDefault("unknown"))
	require.NoError(t, err)

	def, ok := k.Default()
	require.True(t, ok)
	assert.Equal(t, "unknown", def)
}

func TestStringKeyEqual(t *testing.T) {
	t.Parallel()

	a, err := NewStringKey("name", WithFilter("[a-z]+"))
	require.NoError(t, err)

	b, err := NewStringKey("name", WithFilter("[a-z]+"))
	require.NoError(t, err)

	c, err := NewStringKey("name", WithFilter("[0-9]+"))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumKeyCaseInsensitive(t *testing.T) {
	t.Parallel()

	k := NewEnumKey("step", false, "comp", "light", "anim")

	v, err := k.ValueFromStr("COMP")
	require.NoError(t, err)
	assert.Equal(t, "comp", v)
}

func TestEnumKeyCaseSensitive(t *testing.T) {
	t.Parallel()

	k := NewEnumKey("step", true, "comp", "light", "anim")

	_, err := k.ValueFromStr("COMP")
	require.Error(t, err)

	v, err := k.ValueFromStr("comp")
	require.NoError(t, err)
	assert.Equal(t, "comp", v)
}

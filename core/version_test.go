package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	t.Run("major and minor", func(t *testing.T) {
		v, err := ParseVersion("3.2")
		require.NoError(t, err)
		assert.Equal(t, Version{Major: 3, Minor: 2}, v)
	})

	t.Run("v prefix", func(t *testing.T) {
		v, err := ParseVersion("v4.1")
		require.NoError(t, err)
		assert.Equal(t, Version{Major: 4, Minor: 1}, v)
	})

	t.Run("bare major", func(t *testing.T) {
		v, err := ParseVersion("4")
		require.NoError(t, err)
		assert.Equal(t, Version{Major: 4, Minor: 0}, v)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		v, err := ParseVersion(" 3.4 ")
		require.NoError(t, err)
		assert.Equal(t, Version{Major: 3, Minor: 4}, v)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseVersion("")
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseVersion("latest")
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})

	t.Run("negative minor", func(t *testing.T) {
		_, err := ParseVersion("3.-1")
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})
}

func TestVersionCompare(t *testing.T) {
	assert.Equal(t, 0, Version{3, 2}.Compare(Version{3, 2}))
	assert.Equal(t, -1, Version{3, 2}.Compare(Version{3, 3}))
	assert.Equal(t, 1, Version{4, 0}.Compare(Version{3, 9}))
	assert.Equal(t, -1, Version{3, 9}.Compare(Version{4, 0}))
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "3.2", Version{3, 2}.String())
	assert.Equal(t, "4.0", Version{4, 0}.String())
}

func TestVersionTextRoundTrip(t *testing.T) {
	var v Version
	require.NoError(t, v.UnmarshalText([]byte("3.4")))
	assert.Equal(t, Version{3, 4}, v)

	text, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "3.4", string(text))
}

func TestTailwindCompatibilityContains(t *testing.T) {
	r := TailwindCompatibility{Min: Version{3, 0}, Max: Version{3, 4}}

	assert.True(t, r.Contains(Version{3, 0}))
	assert.True(t, r.Contains(Version{3, 3}))
	assert.True(t, r.Contains(Version{3, 4}))
	assert.False(t, r.Contains(Version{2, 9}))
	assert.False(t, r.Contains(Version{3, 5}))
	assert.False(t, r.Contains(Version{4, 0}))
}

package catalog

import (
	"testing"

	"github.com/stencilui/stencil/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDataset = `{
	"schemaVersion": 1,
	"builtAt": "2026-07-18",
	"categories": [
		{"name": "marketing", "children": [{"name": "hero-sections"}]}
	],
	"components": [
		{
			"id": "hero-centered",
			"name": "Simple centered",
			"category": ["marketing", "hero-sections"],
			"framework": "react",
			"version": "4.0",
			"mode": "light",
			"snippets": [
				{"code": "<section/>", "language": "jsx", "framework": "react", "version": "4.0", "mode": "light"}
			],
			"extracted": {
				"dependencies": {"packages": ["react"]},
				"tokens": {"colors": ["indigo-600"], "typography": ["text-4xl"]},
				"tailwind": {"min": "3.0", "max": "4.1"}
			},
			"intel": {"style": "soft", "scale": "large", "context": "hero", "position": "top"}
		}
	]
}`

func TestLoad(t *testing.T) {
	t.Run("valid dataset", func(t *testing.T) {
		store, err := Load([]byte(validDataset))
		require.NoError(t, err)
		assert.Equal(t, 1, store.Len())
		assert.Equal(t, "2026-07-18", store.BuiltAt())

		c, err := store.Lookup("hero-centered")
		require.NoError(t, err)
		assert.Equal(t, core.Version{Major: 4, Minor: 0}, c.Version)
		assert.Equal(t, core.TailwindCompatibility{
			Min: core.Version{Major: 3, Minor: 0},
			Max: core.Version{Major: 4, Minor: 1},
		}, c.Extracted.Tailwind)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := Load([]byte("not json"))
		assert.ErrorIs(t, err, ErrMalformedData)
	})

	t.Run("wrong schema version", func(t *testing.T) {
		_, err := Load([]byte(`{"schemaVersion": 99, "categories": [{"name": "x"}], "components": []}`))
		assert.ErrorIs(t, err, ErrMalformedData)
	})

	t.Run("bad version string", func(t *testing.T) {
		bad := []byte(`{
			"schemaVersion": 1,
			"categories": [{"name": "marketing"}],
			"components": [{"id": "a", "name": "A", "category": ["marketing"],
				"framework": "react", "version": "latest", "mode": "light"}]
		}`)
		_, err := Load(bad)
		assert.ErrorIs(t, err, ErrMalformedData)
	})
}

func TestLoadEmbedded(t *testing.T) {
	store, err := LoadEmbedded()
	require.NoError(t, err)

	assert.NotZero(t, store.Len())
	assert.NotEmpty(t, store.BuiltAt())

	// Every shipped record must already satisfy the domain invariants;
	// NewStore would have rejected it otherwise. Spot-check the projection.
	for _, c := range store.Components() {
		require.NoError(t, core.ValidateComponent(c), "component %s", c.ID)
	}
}

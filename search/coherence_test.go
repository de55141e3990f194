package search

import (
	"testing"

	"github.com/stencilui/stencil/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoherentSetSingleSlot(t *testing.T) {
	engine := buildEngine(t, defaultSpecs())

	t.Run("anchored scale narrows the slot", func(t *testing.T) {
		// Both hero components fit version 3.3, but anchoring the set to
		// the large scale leaves exactly one.
		set, err := engine.CoherentSet([]Slot{
			{Name: "hero", Query: Query{Context: "hero", Version: "3.3", Scale: "large"}},
		})
		require.NoError(t, err)
		require.Len(t, set, 1)
		assert.Equal(t, "hero", set[0].Slot)
		assert.Equal(t, core.ID("hero-bold"), set[0].Result.ID)
	})

	t.Run("no slots", func(t *testing.T) {
		_, err := engine.CoherentSet(nil)
		assert.Equal(t, ErrNoSlots, err)
	})

	t.Run("empty slot fails early", func(t *testing.T) {
		_, err := engine.CoherentSet([]Slot{
			{Name: "hero", Query: Query{Context: "hero", Version: "9.0"}},
		})
		require.ErrorIs(t, err, ErrNoCoherentSet)

		var nce *NoCoherentSetError
		require.ErrorAs(t, err, &nce)
		assert.Equal(t, []string{"hero"}, nce.Slots)
	})

	t.Run("invalid slot query propagates", func(t *testing.T) {
		_, err := engine.CoherentSet([]Slot{
			{Name: "hero", Query: Query{Framework: "angular"}},
		})
		assert.ErrorIs(t, err, ErrInvalidQuery)
	})
}

func TestCoherentSetScaleEquality(t *testing.T) {
	engine := buildEngine(t, defaultSpecs())

	// hero-small, navbar-flat and footer-flat share the small scale;
	// hero-bold (large) must not be chosen even though it is the better
	// single-slot hero.
	set, err := engine.CoherentSet([]Slot{
		{Name: "hero", Query: Query{Context: "hero"}},
		{Name: "nav", Query: Query{Context: "nav"}},
		{Name: "footer", Query: Query{Context: "footer"}},
	})
	require.NoError(t, err)
	require.Len(t, set, 3)
	assert.Equal(t, core.ID("hero-small"), set[0].Result.ID)
	assert.Equal(t, core.ID("navbar-flat"), set[1].Result.ID)
	assert.Equal(t, core.ID("footer-flat"), set[2].Result.ID)
}

func TestCoherentSetNoAlignment(t *testing.T) {
	engine := buildEngine(t, defaultSpecs())

	// The only pricing component is medium scale; no hero shares it.
	_, err := engine.CoherentSet([]Slot{
		{Name: "hero", Query: Query{Context: "hero"}},
		{Name: "pricing", Query: Query{Context: "pricing"}},
	})
	require.ErrorIs(t, err, ErrNoCoherentSet)

	var nce *NoCoherentSetError
	require.ErrorAs(t, err, &nce)
	assert.Equal(t, []string{"hero", "pricing"}, nce.Slots)
}

func TestCoherentSetProfileAffinity(t *testing.T) {
	hero := []string{"marketing", "hero-sections"}
	nav := []string{"application-ui", "navbars"}
	specs := []spec{
		// Two navbars at the same scale: the ornate one is declared first
		// (and so wins catalog-order ties), but pairs worse with a bold
		// hero than the soft one does.
		{"hero-bold", "Launch hero", hero, core.FrameworkReact,
			core.StyleBold, core.ScaleLarge, core.ContextHero, core.PositionTop, v(3, 0), v(4, 0), nil},
		{"navbar-ornate", "Ornate navbar", nav, core.FrameworkReact,
			core.StyleOrnate, core.ScaleLarge, core.ContextNav, core.PositionTop, v(3, 0), v(4, 0), nil},
		{"navbar-soft", "Soft navbar", nav, core.FrameworkReact,
			core.StyleSoft, core.ScaleLarge, core.ContextNav, core.PositionTop, v(3, 0), v(4, 0), nil},
		{"navbar-bold", "Bold navbar", nav, core.FrameworkReact,
			core.StyleBold, core.ScaleLarge, core.ContextNav, core.PositionTop, v(3, 0), v(4, 0), nil},
	}
	engine := buildEngine(t, specs)

	set, err := engine.CoherentSet([]Slot{
		{Name: "hero", Query: Query{Context: "hero"}},
		{Name: "nav", Query: Query{Context: "nav"}},
	})
	require.NoError(t, err)
	require.Len(t, set, 2)

	// Identical profiles outrank any cross-profile pairing.
	assert.Equal(t, core.ID("hero-bold"), set[0].Result.ID)
	assert.Equal(t, core.ID("navbar-bold"), set[1].Result.ID)
}

func TestCoherentSetExcludedPairing(t *testing.T) {
	hero := []string{"marketing", "hero-sections"}
	nav := []string{"application-ui", "navbars"}
	specs := []spec{
		{"hero-flat", "Plain hero", hero, core.FrameworkReact,
			core.StyleFlat, core.ScaleMedium, core.ContextHero, core.PositionTop, v(3, 0), v(4, 0), nil},
		{"navbar-ornate", "Ornate navbar", nav, core.FrameworkReact,
			core.StyleOrnate, core.ScaleMedium, core.ContextNav, core.PositionTop, v(3, 0), v(4, 0), nil},
	}
	engine := buildEngine(t, specs)

	// flat and ornate never pair, so despite matching scales the set fails.
	_, err := engine.CoherentSet([]Slot{
		{Name: "hero", Query: Query{Context: "hero"}},
		{Name: "nav", Query: Query{Context: "nav"}},
	})
	assert.ErrorIs(t, err, ErrNoCoherentSet)
}

func TestProfileAffinity(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		a, ok := profileAffinity(core.StyleFlat, core.StyleFlat)
		assert.True(t, ok)
		assert.Equal(t, 1.0, a)
	})

	t.Run("symmetric", func(t *testing.T) {
		ab, okAB := profileAffinity(core.StyleSoft, core.StyleBold)
		ba, okBA := profileAffinity(core.StyleBold, core.StyleSoft)
		assert.True(t, okAB)
		assert.True(t, okBA)
		assert.Equal(t, ab, ba)
	})

	t.Run("excluded", func(t *testing.T) {
		_, ok := profileAffinity(core.StyleFlat, core.StyleOrnate)
		assert.False(t, ok)
	})
}

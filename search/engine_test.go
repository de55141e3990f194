package search

import (
	"testing"

	"github.com/stencilui/stencil/catalog"
	"github.com/stencilui/stencil/core"
	"github.com/stencilui/stencil/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v(major, minor int) core.Version { return core.Version{Major: major, Minor: minor} }

type spec struct {
	id       string
	name     string
	category []string
	fw       core.Framework
	style    core.StyleProfile
	scale    core.TypographyScale
	ctx      core.UsageContext
	pos      core.PagePosition
	min, max core.Version
	colors   []string
}

func buildEngine(t *testing.T, specs []spec) *Engine {
	t.Helper()

	tree := []*core.CategoryNode{
		{Name: "marketing", Children: []*core.CategoryNode{
			{Name: "hero-sections"},
			{Name: "pricing-sections"},
			{Name: "footers"},
		}},
		{Name: "application-ui", Children: []*core.CategoryNode{
			{Name: "navbars"},
		}},
	}

	components := make([]*core.Component, len(specs))
	for i, s := range specs {
		components[i] = &core.Component{
			ID: core.ID(s.id), Name: s.name, Category: s.category,
			Framework: s.fw, Version: s.max, Mode: core.ModeLight,
			Snippets: []core.Snippet{{Code: "<div/>", Language: "html", Framework: s.fw, Version: s.max, Mode: core.ModeLight}},
			Extracted: core.ExtractedMeta{
				Tokens:   core.TokenInfo{Colors: s.colors},
				Tailwind: core.TailwindCompatibility{Min: s.min, Max: s.max},
			},
			Intel: core.ComponentIntelligence{Style: s.style, Scale: s.scale, Context: s.ctx, Position: s.pos},
		}
	}

	store, err := catalog.NewStore(components, tree)
	require.NoError(t, err)

	engine, err := NewEngine(store, index.Build(store))
	require.NoError(t, err)
	return engine
}

func defaultSpecs() []spec {
	hero := []string{"marketing", "hero-sections"}
	return []spec{
		{"hero-bold", "Split with image", hero, core.FrameworkReact,
			core.StyleBold, core.ScaleLarge, core.ContextHero, core.PositionTop, v(3, 0), v(3, 4), []string{"indigo-600"}},
		{"hero-small", "Compact hero", hero, core.FrameworkReact,
			core.StyleFlat, core.ScaleSmall, core.ContextHero, core.PositionTop, v(3, 2), v(4, 0), []string{"indigo-600"}},
		{"navbar-flat", "Simple navbar", []string{"application-ui", "navbars"}, core.FrameworkReact,
			core.StyleFlat, core.ScaleSmall, core.ContextNav, core.PositionTop, v(3, 0), v(4, 1), []string{"gray-900"}},
		{"pricing-soft", "Three tiers", []string{"marketing", "pricing-sections"}, core.FrameworkHTML,
			core.StyleSoft, core.ScaleMedium, core.ContextPricing, core.PositionMid, v(3, 0), v(3, 4), []string{"indigo-600"}},
		{"footer-flat", "Minimal footer", []string{"marketing", "footers"}, core.FrameworkReact,
			core.StyleFlat, core.ScaleSmall, core.ContextFooter, core.PositionBottom, v(3, 0), v(4, 1), []string{"gray-400"}},
	}
}

func TestNewEngine(t *testing.T) {
	engine := buildEngine(t, defaultSpecs())
	assert.NotNil(t, engine)

	t.Run("nil store", func(t *testing.T) {
		_, err := NewEngine(nil, nil)
		assert.Equal(t, ErrStoreRequired, err)
	})

	t.Run("nil index", func(t *testing.T) {
		_, err := NewEngine(engine.store, nil)
		assert.Equal(t, ErrIndexRequired, err)
	})
}

func TestSearchUnfiltered(t *testing.T) {
	engine := buildEngine(t, defaultSpecs())

	results, err := engine.Search(Query{})
	require.NoError(t, err)

	// Every component exactly once, catalog declaration order.
	ids := make([]core.ID, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	assert.Equal(t, []core.ID{"hero-bold", "hero-small", "navbar-flat", "pricing-soft", "footer-flat"}, ids)
	for _, r := range results {
		assert.Equal(t, "filters", r.Reason)
	}
}

func TestSearchLimit(t *testing.T) {
	engine := buildEngine(t, defaultSpecs())

	results, err := engine.Search(Query{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, core.ID("hero-bold"), results[0].ID)
}

func TestSearchConjunctiveFilters(t *testing.T) {
	engine := buildEngine(t, defaultSpecs())

	results, err := engine.Search(Query{Framework: "react", Position: "top", Context: "hero"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, core.ID("hero-bold"), results[0].ID)
	assert.Equal(t, core.ID("hero-small"), results[1].ID)
}

func TestSearchVersionContainment(t *testing.T) {
	engine := buildEngine(t, defaultSpecs())

	t.Run("hero components at 3.3", func(t *testing.T) {
		// Ranges 3.0-3.4 and 3.2-4.0 both contain 3.3.
		results, err := engine.Search(Query{Context: "hero", Version: "3.3"})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, core.ID("hero-bold"), results[0].ID)
		assert.Equal(t, core.ID("hero-small"), results[1].ID)
	})

	t.Run("no candidate outside its range", func(t *testing.T) {
		results, err := engine.Search(Query{Version: "4.1"})
		require.NoError(t, err)
		for _, r := range results {
			c, err := engine.store.Lookup(r.ID)
			require.NoError(t, err)
			assert.True(t, c.Extracted.Tailwind.Contains(v(4, 1)), "component %s", r.ID)
		}
		assert.Len(t, results, 2)
	})

	t.Run("version above every range", func(t *testing.T) {
		results, err := engine.Search(Query{Version: "5.0"})
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestSearchInvalidFilters(t *testing.T) {
	engine := buildEngine(t, defaultSpecs())

	t.Run("unknown framework", func(t *testing.T) {
		_, err := engine.Search(Query{Framework: "angular"})
		require.ErrorIs(t, err, ErrInvalidQuery)

		var qe *QueryError
		require.ErrorAs(t, err, &qe)
		assert.Equal(t, "framework", qe.Field)
		assert.Equal(t, "angular", qe.Value)
	})

	t.Run("unparseable version", func(t *testing.T) {
		_, err := engine.Search(Query{Version: "latest"})
		assert.ErrorIs(t, err, ErrInvalidQuery)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := engine.Search(Query{Profile: "brutalist"})
		assert.ErrorIs(t, err, ErrInvalidQuery)
	})

	t.Run("unknown scale", func(t *testing.T) {
		_, err := engine.Search(Query{Scale: "gigantic"})
		assert.ErrorIs(t, err, ErrInvalidQuery)
	})
}

func TestSearchTermScoring(t *testing.T) {
	engine := buildEngine(t, defaultSpecs())

	t.Run("name beats category beats token", func(t *testing.T) {
		results, err := engine.Search(Query{Term: "hero"})
		require.NoError(t, err)
		require.NotEmpty(t, results)

		// "Compact hero" matches by name word; hero-bold only via its
		// category segment; name outranks category.
		assert.Equal(t, core.ID("hero-small"), results[0].ID)
		assert.Equal(t, "name", results[0].Reason)
	})

	t.Run("exact name match ranks first", func(t *testing.T) {
		results, err := engine.Search(Query{Term: "Simple navbar"})
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, core.ID("navbar-flat"), results[0].ID)
		assert.Equal(t, "name", results[0].Reason)
	})

	t.Run("token match", func(t *testing.T) {
		results, err := engine.Search(Query{Term: "gray-400"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, core.ID("footer-flat"), results[0].ID)
		assert.Equal(t, "token", results[0].Reason)
	})

	t.Run("no match is empty, not error", func(t *testing.T) {
		results, err := engine.Search(Query{Term: "zzzz"})
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestSearchDeterminism(t *testing.T) {
	engine := buildEngine(t, defaultSpecs())

	q := Query{Term: "hero", Framework: "react", Version: "3.3"}
	first, err := engine.Search(q)
	require.NoError(t, err)
	second, err := engine.Search(q)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

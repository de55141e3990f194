package preview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stencilui/stencil/catalog"
	"github.com/stencilui/stencil/core"
	"github.com/stencilui/stencil/storage"
	badgerstore "github.com/stencilui/stencil/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	cache *Cache
	hits  *atomic.Int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/previews/missing.png":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte("png bytes for " + r.URL.Path))
		}
	}))
	t.Cleanup(server.Close)

	version := core.Version{Major: 4, Minor: 0}
	component := func(id, url string) *core.Component {
		return &core.Component{
			ID: core.ID(id), Name: id, Category: []string{"marketing", "hero-sections"},
			Framework: core.FrameworkHTML, Version: version, Mode: core.ModeLight,
			PreviewURL: url,
			Snippets: []core.Snippet{{Code: "<div/>", Language: "html",
				Framework: core.FrameworkHTML, Version: version, Mode: core.ModeLight}},
			Extracted: core.ExtractedMeta{Tailwind: core.TailwindCompatibility{
				Min: core.Version{Major: 3}, Max: version}},
			Intel: core.ComponentIntelligence{Style: core.StyleFlat, Scale: core.ScaleMedium,
				Context: core.ContextHero, Position: core.PositionTop},
		}
	}

	tree := []*core.CategoryNode{
		{Name: "marketing", Children: []*core.CategoryNode{{Name: "hero-sections"}}},
	}
	store, err := catalog.NewStore([]*core.Component{
		component("hero-one", server.URL+"/previews/hero-one.png"),
		component("hero-two", server.URL+"/previews/hero-two.png"),
		component("hero-broken", server.URL+"/previews/missing.png"),
		component("hero-bare", ""),
	}, tree)
	require.NoError(t, err)

	previews, credentials, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		previews.Close()
		credentials.Close()
		backend.Close()
	})

	cache, err := NewCache(store, previews, WithHTTPClient(server.Client()))
	require.NoError(t, err)
	t.Cleanup(cache.Release)

	return &fixture{cache: cache, hits: &hits}
}

func TestCacheGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, err := f.cache.Get(ctx, "hero-one")
	require.NoError(t, err)
	assert.Equal(t, "hero-one", record.ComponentID)
	assert.Equal(t, "image/png", record.ContentType)
	assert.NotEmpty(t, record.Data)
	assert.Positive(t, record.FetchedAt)

	// Second read is served from the cache.
	again, err := f.cache.Get(ctx, "hero-one")
	require.NoError(t, err)
	assert.Equal(t, record, again)
	assert.Equal(t, int64(1), f.hits.Load())
}

func TestCacheGetUnknownComponent(t *testing.T) {
	f := newFixture(t)

	_, err := f.cache.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCacheGetNoPreviewURL(t *testing.T) {
	f := newFixture(t)

	_, err := f.cache.Get(context.Background(), "hero-bare")
	assert.ErrorIs(t, err, ErrNoPreviewURL)
}

func TestCacheGetDownloadFailure(t *testing.T) {
	f := newFixture(t)

	_, err := f.cache.Get(context.Background(), "hero-broken")
	require.ErrorIs(t, err, ErrDownloadFailed)

	var de *DownloadError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, http.StatusNotFound, de.Status)
	assert.Equal(t, "hero-broken", de.ComponentID)

	// Nothing is cached for the failed fetch.
	stats, err := f.cache.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Entries)
}

func TestCachePrefetch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// hero-bare has no URL and is skipped; hero-broken fails and is
	// counted but not cached.
	fetched, err := f.cache.Prefetch(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched)

	stats, err := f.cache.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Entries)

	// A second pass finds everything fetchable already cached.
	fetched, err = f.cache.Prefetch(ctx, []core.ID{"hero-one", "hero-two"})
	require.NoError(t, err)
	assert.Equal(t, 0, fetched)
}

func TestCachePrefetchUnknownID(t *testing.T) {
	f := newFixture(t)

	_, err := f.cache.Prefetch(context.Background(), []core.ID{"no-such-id"})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCacheClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.cache.Get(ctx, "hero-one")
	require.NoError(t, err)
	_, err = f.cache.Get(ctx, "hero-two")
	require.NoError(t, err)

	dropped, err := f.cache.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dropped)

	stats, err := f.cache.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, storage.CacheStats{}, stats)
}

func TestNewCacheValidation(t *testing.T) {
	t.Run("nil store", func(t *testing.T) {
		_, err := NewCache(nil, nil)
		assert.Equal(t, ErrStoreRequired, err)
	})
}

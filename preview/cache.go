package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/stencilui/stencil/catalog"
	"github.com/stencilui/stencil/core"
	"github.com/stencilui/stencil/storage"
)

// maxPreviewBytes bounds a single preview payload. Anything larger is not
// a preview image and gets rejected.
const maxPreviewBytes = 8 << 20

const defaultFetchTimeout = 30 * time.Second

// Cache serves preview images for catalog components, fetching them from
// the asset host on first access and persisting them in the preview
// repository. Fetches are single attempts; a failed download surfaces to
// the caller rather than being retried.
type Cache struct {
	store      *catalog.Store
	repository storage.PreviewRepository
	client     *http.Client
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache) error

// WithHTTPClient sets the client used for preview downloads.
// Default is an http.Client with a 30 second timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Cache) error {
		if client == nil {
			client = &http.Client{Timeout: defaultFetchTimeout}
		}
		c.client = client
		return nil
	}
}

// WithPoolSize sets the worker pool size for prefetching.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(c *Cache) error {
		if size < 1 {
			size = 1
		}

		if c.pool != nil {
			c.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		c.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewCache creates a preview cache over a catalog store and a preview
// repository.
func NewCache(store *catalog.Store, repository storage.PreviewRepository, opts ...Option) (*Cache, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	c := &Cache{
		store:      store,
		repository: repository,
		client:     &http.Client{Timeout: defaultFetchTimeout},
		pool:       pool,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(c); optErr != nil {
			c.Release()
			return nil, optErr
		}
	}

	return c, nil
}

// Release shuts down the prefetch pool. The repository stays open; its
// owner closes it.
func (c *Cache) Release() {
	c.pool.Release()
}

// Get returns the preview image for a component, fetching and caching it
// on a miss. A component without a preview URL fails with ErrNoPreviewURL.
func (c *Cache) Get(ctx context.Context, id core.ID) (*storage.PreviewRecord, error) {
	component, err := c.store.Lookup(id)
	if err != nil {
		return nil, err
	}

	record, err := c.repository.GetPreview(ctx, string(id))
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	return c.fetch(ctx, component)
}

// Prefetch warms the cache for the given components concurrently. A nil
// id list means every component that declares a preview URL. Individual
// fetch failures are logged and counted, not fatal; the return value is
// the number of previews actually downloaded.
func (c *Cache) Prefetch(ctx context.Context, ids []core.ID) (int, error) {
	if ids == nil {
		for _, component := range c.store.Components() {
			if component.PreviewURL != "" {
				ids = append(ids, component.ID)
			}
		}
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		fetched int
		failed  int
	)
	for _, id := range ids {
		component, err := c.store.Lookup(id)
		if err != nil {
			return 0, err
		}

		wg.Add(1)
		submitErr := c.pool.Submit(func() {
			defer wg.Done()

			if _, err := c.repository.GetPreview(ctx, string(component.ID)); err == nil {
				return
			}
			if _, err := c.fetch(ctx, component); err != nil {
				c.logger.Warn("prefetch failed", "component", component.ID, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			mu.Lock()
			fetched++
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			return 0, submitErr
		}
	}
	wg.Wait()

	c.logger.Info("prefetch complete", "requested", len(ids), "fetched", fetched, "failed", failed)
	return fetched, nil
}

// Stats reports the cache entry count and total payload size.
func (c *Cache) Stats(ctx context.Context) (storage.CacheStats, error) {
	return c.repository.PreviewStats(ctx)
}

// Clear drops every cached preview and returns how many were removed.
func (c *Cache) Clear(ctx context.Context) (int, error) {
	return c.repository.ClearPreviews(ctx)
}

// fetch downloads a component's preview image and stores it.
func (c *Cache) fetch(ctx context.Context, component *core.Component) (*storage.PreviewRecord, error) {
	if component.PreviewURL == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoPreviewURL, component.ID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, component.PreviewURL, nil)
	if err != nil {
		return nil, &DownloadError{ComponentID: string(component.ID), URL: component.PreviewURL, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &DownloadError{ComponentID: string(component.ID), URL: component.PreviewURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &DownloadError{ComponentID: string(component.ID), URL: component.PreviewURL, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPreviewBytes+1))
	if err != nil {
		return nil, &DownloadError{ComponentID: string(component.ID), URL: component.PreviewURL, Err: err}
	}
	if len(data) > maxPreviewBytes {
		return nil, &DownloadError{ComponentID: string(component.ID), URL: component.PreviewURL,
			Err: fmt.Errorf("payload exceeds %d bytes", maxPreviewBytes)}
	}

	record := &storage.PreviewRecord{
		ComponentID: string(component.ID),
		URL:         component.PreviewURL,
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
		FetchedAt:   time.Now().UTC().UnixMicro(),
	}
	if err := c.repository.PutPreview(ctx, record); err != nil {
		return nil, err
	}

	c.logger.Debug("preview cached", "component", component.ID, "bytes", len(data))
	return record, nil
}

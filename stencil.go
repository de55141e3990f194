// Copyright 2026 Stencil Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package stencil

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/stencilui/stencil/auth"
	"github.com/stencilui/stencil/catalog"
	"github.com/stencilui/stencil/config"
	"github.com/stencilui/stencil/index"
	"github.com/stencilui/stencil/preview"
	"github.com/stencilui/stencil/rpc"
	"github.com/stencilui/stencil/search"
	"github.com/stencilui/stencil/storage"
	badgerstore "github.com/stencilui/stencil/storage/badger"
)

// System wires the embedded catalog, its indices and the mutable cache
// side into one assembled instance.
type System struct {
	cfg            *config.Config
	store          *catalog.Store
	engine         *search.Engine
	backend        *badgerstore.Backend
	previewRepo    storage.PreviewRepository
	credentialRepo storage.CredentialRepository
	previews       *preview.Cache
	auth           *auth.Manager
	logger         *slog.Logger
}

// OpenOption configures Open.
type OpenOption func(*openOptions)

type openOptions struct {
	inMemory bool
}

// WithInMemoryCache keeps the BadgerDB cache off disk. Used by tests and
// throwaway sessions.
func WithInMemoryCache() OpenOption {
	return func(o *openOptions) {
		o.inMemory = true
	}
}

// Open loads the embedded catalog, builds the metadata index and opens
// the cache backend. A nil cfg uses the defaults.
func Open(cfg *config.Config, opts ...OpenOption) (*System, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &openOptions{}
	for _, opt := range opts {
		opt(options)
	}

	store, err := catalog.LoadEmbedded()
	if err != nil {
		return nil, err
	}

	engine, err := search.NewEngine(store, index.Build(store))
	if err != nil {
		return nil, err
	}

	cacheDir := ""
	if !options.inMemory {
		cacheDir, err = cfg.CacheDir()
		if err != nil {
			return nil, err
		}
	}
	backend, err := badgerstore.OpenBackend(cacheDir, options.inMemory)
	if err != nil {
		return nil, err
	}

	previewRepo := badgerstore.NewPreviewRepository(backend)
	credentialRepo := badgerstore.NewCredentialRepository(backend)

	previews, err := preview.NewCache(store, previewRepo,
		preview.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.AssetTimeout)}),
		preview.WithPoolSize(cfg.PrefetchWorkers),
	)
	if err != nil {
		backend.Close()
		return nil, err
	}

	manager, err := auth.NewManager(credentialRepo)
	if err != nil {
		previews.Release()
		backend.Close()
		return nil, err
	}

	return &System{
		cfg:            cfg,
		store:          store,
		engine:         engine,
		backend:        backend,
		previewRepo:    previewRepo,
		credentialRepo: credentialRepo,
		previews:       previews,
		auth:           manager,
		logger:         slog.Default(),
	}, nil
}

// Close releases the preview pool and the cache backend.
func (s *System) Close() error {
	s.previews.Release()

	if err := s.previewRepo.Close(); err != nil {
		s.logger.Error("error closing preview repository", "err", err)
		return err
	}
	if err := s.credentialRepo.Close(); err != nil {
		s.logger.Error("error closing credential repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing cache backend", "err", err)
		return err
	}
	return nil
}

// Store returns the loaded catalog.
func (s *System) Store() *catalog.Store {
	return s.store
}

// Engine returns the query engine.
func (s *System) Engine() *search.Engine {
	return s.engine
}

// PreviewCache returns the preview image cache.
func (s *System) PreviewCache() *preview.Cache {
	return s.previews
}

// AuthManager returns the license credential manager.
func (s *System) AuthManager() *auth.Manager {
	return s.auth
}

// NewServer assembles the JSON-RPC server over this system.
func (s *System) NewServer(opts ...rpc.Option) (*rpc.Server, error) {
	base := []rpc.Option{
		rpc.WithPreviewCache(s.previews),
		rpc.WithAuthManager(s.auth),
	}
	return rpc.NewServer(s.store, s.engine, append(base, opts...)...)
}

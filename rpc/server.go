package rpc

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/stencilui/stencil/auth"
	"github.com/stencilui/stencil/catalog"
	"github.com/stencilui/stencil/core"
	"github.com/stencilui/stencil/preview"
	"github.com/stencilui/stencil/search"
)

// Server exposes the catalog over JSON-RPC 2.0, speaking either stdio or
// TCP. Every method is stateless; connections share the same underlying
// store and engine.
type Server struct {
	store    *catalog.Store
	engine   *search.Engine
	previews *preview.Cache
	auth     *auth.Manager
	version  string
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithPreviewCache enables the preview/get method.
func WithPreviewCache(cache *preview.Cache) Option {
	return func(s *Server) error {
		s.previews = cache
		return nil
	}
}

// WithAuthManager lets server/info report license status.
func WithAuthManager(manager *auth.Manager) Option {
	return func(s *Server) error {
		s.auth = manager
		return nil
	}
}

// WithVersion sets the version string reported by server/info.
func WithVersion(version string) Option {
	return func(s *Server) error {
		s.version = version
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewServer creates an RPC server over a loaded store and engine.
func NewServer(store *catalog.Store, engine *search.Engine, opts ...Option) (*Server, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}

	s := &Server{
		store:   store,
		engine:  engine,
		version: "dev",
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Handler returns the jsonrpc2 handler for one connection.
func (s *Server) Handler() jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(s.handle)
}

func (s *Server) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	s.logger.Debug("rpc request", "method", req.Method)

	result, err := s.dispatch(ctx, req)
	if err != nil {
		return nil, rpcError(err)
	}
	return result, nil
}

func (s *Server) dispatch(ctx context.Context, req *jsonrpc2.Request) (any, error) {
	switch req.Method {
	case MethodSearch:
		var params SearchParams
		if err := decodeParams(req, &params); err != nil {
			return nil, err
		}
		results, err := s.engine.Search(params.toQuery())
		if err != nil {
			return nil, err
		}
		return &SearchResult{Results: results}, nil

	case MethodGet:
		var params GetParams
		if err := decodeParams(req, &params); err != nil {
			return nil, err
		}
		component, err := s.store.Lookup(core.ID(params.ID))
		if err != nil {
			return nil, err
		}
		result := &GetResult{Component: component}
		if params.Mode != "" {
			mode := core.Mode(strings.ToLower(params.Mode))
			if !mode.Valid() {
				return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams,
					Message: "unknown mode " + params.Mode}
			}
			result.Snippet = component.Snippet(mode)
		}
		return result, nil

	case MethodList:
		var params ListParams
		if err := decodeParams(req, &params); err != nil {
			return nil, err
		}
		filter := catalog.ListFilter{Category: params.Category}
		if params.Framework != "" {
			fw := core.Framework(strings.ToLower(params.Framework))
			if !fw.Valid() {
				return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams,
					Message: "unknown framework " + params.Framework}
			}
			filter.Framework = fw
		}
		result := &ListResult{Components: []core.ComponentMeta{}}
		for meta := range s.store.List(filter) {
			result.Components = append(result.Components, meta)
		}
		return result, nil

	case MethodCategories:
		return &CategoriesResult{Categories: s.store.Categories()}, nil

	case MethodCoherentSet:
		var params ComposeParams
		if err := decodeParams(req, &params); err != nil {
			return nil, err
		}
		slots := make([]search.Slot, len(params.Slots))
		for i, slot := range params.Slots {
			slots[i] = search.Slot{Name: slot.Name, Query: slot.Query.toQuery()}
		}
		set, err := s.engine.CoherentSet(slots)
		if err != nil {
			return nil, err
		}
		return &ComposeResult{Set: set}, nil

	case MethodPreview:
		var params PreviewParams
		if err := decodeParams(req, &params); err != nil {
			return nil, err
		}
		if s.previews == nil {
			return nil, ErrPreviewsDisabled
		}
		record, err := s.previews.Get(ctx, core.ID(params.ID))
		if err != nil {
			return nil, err
		}
		return &PreviewResult{
			ComponentID: record.ComponentID,
			ContentType: record.ContentType,
			Data:        record.Data,
			FetchedAt:   record.FetchedAt,
		}, nil

	case MethodInfo:
		frameworks := make(map[string]int)
		for _, component := range s.store.Components() {
			frameworks[string(component.Framework)]++
		}
		info := &InfoResult{
			Name:       "stencil",
			Version:    s.version,
			Components: s.store.Len(),
			Frameworks: frameworks,
			Categories: countCategories(s.store.Categories()),
			BuiltAt:    s.store.BuiltAt(),
		}
		if s.auth != nil {
			status, err := s.auth.Status(ctx)
			if err != nil {
				return nil, err
			}
			info.Licensed = status.Configured
		}
		return info, nil

	default:
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound,
			Message: "method not found: " + req.Method}
	}
}

func decodeParams(req *jsonrpc2.Request, out any) error {
	if req.Params == nil {
		return nil
	}
	if err := json.Unmarshal(*req.Params, out); err != nil {
		return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	}
	return nil
}

func countCategories(nodes []*core.CategoryNode) int {
	count := 0
	for _, node := range nodes {
		count += 1 + countCategories(node.Children)
	}
	return count
}

// ServeConn starts serving one JSON-RPC connection and returns it. The
// caller owns the connection lifetime.
func (s *Server) ServeConn(ctx context.Context, rwc io.ReadWriteCloser) *jsonrpc2.Conn {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})
	return jsonrpc2.NewConn(ctx, stream, s.Handler())
}

// ServeStdio serves a single connection over stdin/stdout and blocks
// until the peer disconnects or the context is canceled.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info("serving json-rpc on stdio")
	conn := s.ServeConn(ctx, stdrwc{})
	defer conn.Close()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-conn.DisconnectNotify():
		return nil
	}
}

// ServeTCP accepts connections on addr until the context is canceled.
func (s *Server) ServeTCP(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.logger.Info("serving json-rpc on tcp", "addr", listener.Addr().String())

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		s.ServeConn(ctx, conn)
	}
}

// stdrwc glues stdin and stdout into one ReadWriteCloser for the stdio
// transport.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

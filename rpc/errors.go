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


package rpc

import (
	"errors"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/stencilui/stencil/catalog"
	"github.com/stencilui/stencil/preview"
	"github.com/stencilui/stencil/search"
)

// Application error codes, outside the range reserved by JSON-RPC.
const (
	CodeNotFound       = -32004
	CodeNoCoherentSet  = -32005
	CodeNoPreview      = -32006
	CodeDownloadFailed = -32007
)

var (
	// ErrStoreRequired indicates that a catalog store was not provided.
	ErrStoreRequired = errors.New("catalog store is required")

	// ErrEngineRequired indicates that a search engine was not provided.
	ErrEngineRequired = errors.New("search engine is required")

	// ErrPreviewsDisabled indicates that the server runs without a preview cache.
	ErrPreviewsDisabled = errors.New("preview cache not configured")
)

// rpcError translates domain errors into JSON-RPC error responses so
// clients can dispatch on stable codes instead of message strings.
func rpcError(err error) error {
	switch {
	case errors.Is(err, search.ErrInvalidQuery):
		return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	case errors.Is(err, catalog.ErrNotFound):
		return &jsonrpc2.Error{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, search.ErrNoCoherentSet), errors.Is(err, search.ErrNoSlots):
		return &jsonrpc2.Error{Code: CodeNoCoherentSet, Message: err.Error()}
	case errors.Is(err, preview.ErrNoPreviewURL), errors.Is(err, ErrPreviewsDisabled):
		return &jsonrpc2.Error{Code: CodeNoPreview, Message: err.Error()}
	case errors.Is(err, preview.ErrDownloadFailed):
		return &jsonrpc2.Error{Code: CodeDownloadFailed, Message: err.Error()}
	default:
		return err
	}
}

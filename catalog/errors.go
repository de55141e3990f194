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


package catalog

import (
	"errors"
	"fmt"

	"github.com/stencilui/stencil/core"
)

var (
	// ErrNotFound indicates that no component exists for the requested ID.
	ErrNotFound = errors.New("component not found")

	// ErrEmptyCatalog indicates the dataset contains no components.
	ErrEmptyCatalog = errors.New("catalog has no components")

	// ErrDuplicateID indicates two components share the same ID.
	ErrDuplicateID = errors.New("duplicate component id")

	// ErrUnknownCategory indicates a component references a category path
	// that does not resolve to a node in the hierarchy.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrMalformedData indicates the embedded dataset failed to decode.
	ErrMalformedData = errors.New("malformed catalog data")
)

// NotFoundError reports a lookup for an ID the catalog does not contain.
// It unwraps to ErrNotFound.
type NotFoundError struct {
	ID core.ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("component %q not found", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

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


package search

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStoreRequired is returned when a catalog store is not provided.
	ErrStoreRequired = errors.New("catalog store required")

	// ErrIndexRequired is returned when a metadata index is not provided.
	ErrIndexRequired = errors.New("metadata index required")

	// ErrInvalidQuery indicates a malformed filter value. The query is
	// rejected rather than silently matching nothing.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrNoCoherentSet indicates a multi-slot request where no cross-slot
	// combination satisfies the coherence rules.
	ErrNoCoherentSet = errors.New("no coherent component set")

	// ErrNoSlots is returned for a coherent-set request with no slots.
	ErrNoSlots = errors.New("at least one slot required")
)

// QueryError reports which filter field was malformed and the value the
// caller sent, so the failure can be explained without re-querying.
// It unwraps to ErrInvalidQuery.
type QueryError struct {
	Field string
	Value string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid query: %s %q", e.Field, e.Value)
}

func (e *QueryError) Unwrap() error { return ErrInvalidQuery }

// NoCoherentSetError reports a multi-slot request for which every candidate
// combination was rejected. It unwraps to ErrNoCoherentSet.
type NoCoherentSetError struct {
	// Slots are the requested slot names, in request order.
	Slots []string
	// Reason describes the constraint that eliminated the last candidates,
	// e.g. an empty slot or typography scales that never align.
	Reason string
}

func (e *NoCoherentSetError) Error() string {
	return fmt.Sprintf("no coherent set for slots [%s]: %s",
		strings.Join(e.Slots, ", "), e.Reason)
}

func (e *NoCoherentSetError) Unwrap() error { return ErrNoCoherentSet }

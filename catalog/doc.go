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


// Package catalog provides the immutable component catalog store.
//
// The catalog is compiled ahead of time into a JSON dataset that ships
// inside the binary. LoadEmbedded decodes it once at process start and
// builds a Store, checking every referential invariant along the way:
// unique IDs, resolvable category paths, well-formed version ranges, and
// the presence of intelligence data on every record. A violation aborts
// startup; it is never surfaced as a per-query error.
//
// After the build the Store is read-only and safe for concurrent use
// without locking. Enumeration order is deterministic: catalog declaration
// order, or category tree pre-order when a category filter is applied.
package catalog

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


// Package search implements the query engine and the coherence filter.
//
// The Engine answers single queries: conjunctive filters (framework,
// version containment, position, context, profile, scale) narrowed through
// the metadata index, with free-text terms scored against names, category
// names and the design-token vocabulary. Results are ordered descending by
// score with catalog declaration order breaking ties, so identical queries
// always return identical sequences.
//
// CoherentSet answers multi-slot requests: one candidate set per slot,
// then a cross-product selection in which typography-scale equality is
// mandatory and style profiles must pair within a fixed affinity table.
// A request with no surviving combination fails with NoCoherentSetError.
package search

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


// Package index builds derived lookup structures over catalog metadata.
//
// The index is constructed exactly once, from the same load pass that
// builds the catalog store, and stays referentially consistent with it for
// the process lifetime. It maps frameworks, page positions, usage
// contexts, style profiles, name/category words and the normalized design
// token vocabulary to component ids, and keeps an interval index over
// styling-system compatibility ranges for version containment queries.
//
// The query engine uses these posting lists to narrow candidates before
// scoring, keeping query cost proportional to candidate count rather than
// catalog size.
package index

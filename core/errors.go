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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidComponent indicates a Component failed validation.
	ErrInvalidComponent = errors.New("invalid component")

	// ErrEmptyID indicates the ID field is empty.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyCategory indicates the Category path is empty.
	ErrEmptyCategory = errors.New("category cannot be empty")

	// ErrNoSnippets indicates a component carries no code snippets.
	ErrNoSnippets = errors.New("component has no snippets")

	// ErrInvalidFramework indicates an unknown Framework value.
	ErrInvalidFramework = errors.New("invalid framework")

	// ErrInvalidMode indicates an unknown Mode value.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidVersion indicates an unparseable version string.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrInvalidVersionRange indicates a compatibility range with Min > Max.
	ErrInvalidVersionRange = errors.New("invalid version range")

	// ErrInvalidIntelligence indicates missing or malformed intelligence data.
	ErrInvalidIntelligence = errors.New("invalid component intelligence")

	// ErrInvalidStyleProfile indicates an unknown StyleProfile value.
	ErrInvalidStyleProfile = errors.New("invalid style profile")

	// ErrInvalidTypographyScale indicates an unknown TypographyScale value.
	ErrInvalidTypographyScale = errors.New("invalid typography scale")

	// ErrInvalidPagePosition indicates an unknown PagePosition value.
	ErrInvalidPagePosition = errors.New("invalid page position")

	// ErrInvalidUsageContext indicates an unknown UsageContext value.
	ErrInvalidUsageContext = errors.New("invalid usage context")
)

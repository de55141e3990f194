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

import "fmt"

// ValidateComponent validates a Component according to domain rules.
//
// Validation rules:
//   - ID, Name and Category must not be empty
//   - Framework and Mode must be known values
//   - At least one snippet must be present
//   - The Tailwind compatibility range must satisfy Min <= Max
//   - Intelligence data must be present and valid (1:1 with the component)
//
// These rules are enforced at catalog load time. A violation is a
// data-integrity defect, not a per-query error.
func ValidateComponent(c *Component) error {
	if c == nil {
		return fmt.Errorf("%w: component is nil", ErrInvalidComponent)
	}

	if c.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidComponent, ErrEmptyID)
	}

	if c.Name == "" {
		return fmt.Errorf("%w: %s: %w", ErrInvalidComponent, c.ID, ErrEmptyName)
	}

	if len(c.Category) == 0 {
		return fmt.Errorf("%w: %s: %w", ErrInvalidComponent, c.ID, ErrEmptyCategory)
	}

	if !c.Framework.Valid() {
		return fmt.Errorf("%w: %s: %w: %q", ErrInvalidComponent, c.ID, ErrInvalidFramework, c.Framework)
	}

	if !c.Mode.Valid() {
		return fmt.Errorf("%w: %s: %w: %q", ErrInvalidComponent, c.ID, ErrInvalidMode, c.Mode)
	}

	if len(c.Snippets) == 0 {
		return fmt.Errorf("%w: %s: %w", ErrInvalidComponent, c.ID, ErrNoSnippets)
	}

	for i := range c.Snippets {
		if !c.Snippets[i].Framework.Valid() {
			return fmt.Errorf("%w: %s: snippet %d: %w: %q",
				ErrInvalidComponent, c.ID, i, ErrInvalidFramework, c.Snippets[i].Framework)
		}
	}

	if !c.Extracted.Tailwind.Valid() {
		return fmt.Errorf("%w: %s: %w: %s > %s",
			ErrInvalidComponent, c.ID, ErrInvalidVersionRange,
			c.Extracted.Tailwind.Min, c.Extracted.Tailwind.Max)
	}

	if err := ValidateIntelligence(&c.Intel); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidComponent, c.ID, err)
	}

	return nil
}

// ValidateIntelligence validates the coherence projection of a component.
// All four dimensions must carry known values; a zero value means the
// catalog compiler never ran for this record.
func ValidateIntelligence(intel *ComponentIntelligence) error {
	if intel == nil {
		return fmt.Errorf("%w: intelligence is nil", ErrInvalidIntelligence)
	}

	if !intel.Style.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidIntelligence, ErrInvalidStyleProfile, intel.Style)
	}

	if !intel.Scale.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidIntelligence, ErrInvalidTypographyScale, intel.Scale)
	}

	if !intel.Context.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidIntelligence, ErrInvalidUsageContext, intel.Context)
	}

	if !intel.Position.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidIntelligence, ErrInvalidPagePosition, intel.Position)
	}

	return nil
}

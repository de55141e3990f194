package core

// ID is the stable identifier of a catalog entity.
// IDs are assigned when the catalog is compiled and never change afterwards.
type ID string

// Framework identifies the UI framework a snippet targets.
type Framework string

const (
	FrameworkHTML  Framework = "html"
	FrameworkReact Framework = "react"
	FrameworkVue   Framework = "vue"
)

// Valid reports whether the framework is a known value.
func (f Framework) Valid() bool {
	switch f {
	case FrameworkHTML, FrameworkReact, FrameworkVue:
		return true
	}
	return false
}

// FileExtension returns the source file extension for the framework.
func (f Framework) FileExtension() string {
	switch f {
	case FrameworkReact:
		return "jsx"
	case FrameworkVue:
		return "vue"
	default:
		return "html"
	}
}

// Mode is the theme rendering mode a snippet was authored for.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// Valid reports whether the mode is a known value.
func (m Mode) Valid() bool {
	switch m {
	case ModeLight, ModeDark, ModeSystem:
		return true
	}
	return false
}

// StyleProfile is a qualitative visual-style tag used for coherence matching.
type StyleProfile string

const (
	StyleFlat   StyleProfile = "flat"
	StyleSoft   StyleProfile = "soft"
	StyleBold   StyleProfile = "bold"
	StyleOrnate StyleProfile = "ornate"
)

// Valid reports whether the style profile is a known value.
func (s StyleProfile) Valid() bool {
	switch s {
	case StyleFlat, StyleSoft, StyleBold, StyleOrnate:
		return true
	}
	return false
}

// TypographyScale is the named ramp of font sizes a component assumes
// is available on the page.
type TypographyScale string

const (
	ScaleSmall  TypographyScale = "small"
	ScaleMedium TypographyScale = "medium"
	ScaleLarge  TypographyScale = "large"
)

// Valid reports whether the typography scale is a known value.
func (t TypographyScale) Valid() bool {
	switch t {
	case ScaleSmall, ScaleMedium, ScaleLarge:
		return true
	}
	return false
}

// PagePosition is where on a page a component is typically placed.
type PagePosition string

const (
	PositionTop     PagePosition = "top"
	PositionMid     PagePosition = "mid"
	PositionBottom  PagePosition = "bottom"
	PositionSidebar PagePosition = "sidebar"
)

// Valid reports whether the page position is a known value.
func (p PagePosition) Valid() bool {
	switch p {
	case PositionTop, PositionMid, PositionBottom, PositionSidebar:
		return true
	}
	return false
}

// UsageContext is the intended semantic role of a component.
type UsageContext string

const (
	ContextHero    UsageContext = "hero"
	ContextNav     UsageContext = "nav"
	ContextForm    UsageContext = "form"
	ContextPricing UsageContext = "pricing"
	ContextContent UsageContext = "content"
	ContextFooter  UsageContext = "footer"
	ContextCTA     UsageContext = "cta"
)

// Valid reports whether the usage context is a known value.
func (u UsageContext) Valid() bool {
	switch u {
	case ContextHero, ContextNav, ContextForm, ContextPricing,
		ContextContent, ContextFooter, ContextCTA:
		return true
	}
	return false
}

// Snippet is a renderable code fragment for one framework and mode.
type Snippet struct {
	Code      string    `json:"code"`
	Language  string    `json:"language"`
	Framework Framework `json:"framework"`
	Version   Version   `json:"version"`
	Mode      Mode      `json:"mode"`
}

// DependencyInfo lists external packages and icon assets a snippet requires.
type DependencyInfo struct {
	Packages []string `json:"packages,omitempty"`
	Icons    []string `json:"icons,omitempty"`
}

// TokenInfo lists the design tokens a snippet references.
type TokenInfo struct {
	Colors     []string `json:"colors,omitempty"`
	Spacing    []string `json:"spacing,omitempty"`
	Typography []string `json:"typography,omitempty"`
}

// All returns every token in a single slice.
func (t TokenInfo) All() []string {
	all := make([]string, 0, len(t.Colors)+len(t.Spacing)+len(t.Typography))
	all = append(all, t.Colors...)
	all = append(all, t.Spacing...)
	all = append(all, t.Typography...)
	return all
}

// TailwindCompatibility is the inclusive range of styling-system versions
// a component's snippets are known to work with.
type TailwindCompatibility struct {
	Min Version `json:"min"`
	Max Version `json:"max"`
}

// Contains reports whether v falls inside the compatibility range.
func (c TailwindCompatibility) Contains(v Version) bool {
	return c.Min.Compare(v) <= 0 && c.Max.Compare(v) >= 0
}

// Valid reports whether the range is well formed (Min <= Max).
func (c TailwindCompatibility) Valid() bool {
	return c.Min.Compare(c.Max) <= 0
}

// ExtractedMeta holds machine-extracted facts about a component's
// implementation, produced when the catalog is compiled.
type ExtractedMeta struct {
	Dependencies DependencyInfo        `json:"dependencies"`
	Tokens       TokenInfo             `json:"tokens"`
	Tailwind     TailwindCompatibility `json:"tailwind"`
}

// ComponentIntelligence is the coherence-relevant projection of a component.
// Every catalog component carries exactly one; its absence is a data defect.
type ComponentIntelligence struct {
	Style    StyleProfile    `json:"style"`
	Scale    TypographyScale `json:"scale"`
	Context  UsageContext    `json:"context"`
	Position PagePosition    `json:"position"`
}

// Component is a single catalog record. Immutable after catalog load.
type Component struct {
	ID         ID                    `json:"id"`
	Name       string                `json:"name"`
	Category   []string              `json:"category"`
	Framework  Framework             `json:"framework"`
	Version    Version               `json:"version"`
	Mode       Mode                  `json:"mode"`
	PreviewURL string                `json:"previewUrl,omitempty"`
	Snippets   []Snippet             `json:"snippets"`
	Extracted  ExtractedMeta         `json:"extracted"`
	Intel      ComponentIntelligence `json:"intel"`
}

// Meta returns the denormalized listing projection of the component.
func (c *Component) Meta() ComponentMeta {
	return ComponentMeta{
		ID:        c.ID,
		Name:      c.Name,
		Category:  c.Category,
		Framework: c.Framework,
		Version:   c.Version,
	}
}

// Snippet returns the snippet for the given mode, or the first snippet when
// no exact mode match exists.
func (c *Component) Snippet(mode Mode) *Snippet {
	for i := range c.Snippets {
		if c.Snippets[i].Mode == mode {
			return &c.Snippets[i]
		}
	}
	if len(c.Snippets) > 0 {
		return &c.Snippets[0]
	}
	return nil
}

// ComponentMeta is the lightweight projection used for listing and search
// output. It is derived from Component and never independently mutated.
type ComponentMeta struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Category  []string  `json:"category"`
	Framework Framework `json:"framework"`
	Version   Version   `json:"version"`
}

// CategoryNode is one node of the read-only category hierarchy.
type CategoryNode struct {
	Name           string          `json:"name"`
	Children       []*CategoryNode `json:"children,omitempty"`
	ComponentCount int             `json:"componentCount,omitempty"`
}

// SearchResult is a ranked pointer into the catalog, computed fresh per
// query and never stored.
type SearchResult struct {
	ID     ID      `json:"id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

package rpc

import (
	"github.com/stencilui/stencil/core"
	"github.com/stencilui/stencil/search"
)

// Method names served by the server.
const (
	MethodSearch      = "catalog/search"
	MethodGet         = "catalog/get"
	MethodList        = "catalog/list"
	MethodCategories  = "catalog/categories"
	MethodCoherentSet = "compose/coherentSet"
	MethodPreview     = "preview/get"
	MethodInfo        = "server/info"
)

// SearchParams mirrors search.Query on the wire.
type SearchParams struct {
	Term      string `json:"term,omitempty"`
	Framework string `json:"framework,omitempty"`
	Version   string `json:"version,omitempty"`
	Position  string `json:"position,omitempty"`
	Context   string `json:"context,omitempty"`
	Profile   string `json:"profile,omitempty"`
	Scale     string `json:"scale,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

func (p SearchParams) toQuery() search.Query {
	return search.Query{
		Term:      p.Term,
		Framework: p.Framework,
		Version:   p.Version,
		Position:  p.Position,
		Context:   p.Context,
		Profile:   p.Profile,
		Scale:     p.Scale,
		Limit:     p.Limit,
	}
}

// SearchResult is the catalog/search response.
type SearchResult struct {
	Results []core.SearchResult `json:"results"`
}

// GetParams requests a single component. Mode optionally selects which
// snippet to surface alongside the full record.
type GetParams struct {
	ID   string `json:"id"`
	Mode string `json:"mode,omitempty"`
}

// GetResult is the catalog/get response.
type GetResult struct {
	Component *core.Component `json:"component"`
	Snippet   *core.Snippet   `json:"snippet,omitempty"`
}

// ListParams filters the catalog listing.
type ListParams struct {
	Category  []string `json:"category,omitempty"`
	Framework string   `json:"framework,omitempty"`
}

// ListResult is the catalog/list response.
type ListResult struct {
	Components []core.ComponentMeta `json:"components"`
}

// CategoriesResult is the catalog/categories response.
type CategoriesResult struct {
	Categories []*core.CategoryNode `json:"categories"`
}

// ComposeSlot names one role in a coherent-set request.
type ComposeSlot struct {
	Name  string       `json:"name"`
	Query SearchParams `json:"query"`
}

// ComposeParams is the compose/coherentSet request.
type ComposeParams struct {
	Slots []ComposeSlot `json:"slots"`
}

// ComposeResult is the compose/coherentSet response.
type ComposeResult struct {
	Set []search.SlotResult `json:"set"`
}

// PreviewParams requests a component's preview image.
type PreviewParams struct {
	ID string `json:"id"`
}

// PreviewResult carries the preview payload; Data is base64 on the wire.
type PreviewResult struct {
	ComponentID string `json:"componentId"`
	ContentType string `json:"contentType,omitempty"`
	Data        []byte `json:"data"`
	FetchedAt   int64  `json:"fetchedAt"`
}

// InfoResult is the server/info response.
type InfoResult struct {
	Name       string         `json:"name"`
	Version    string         `json:"version"`
	Components int            `json:"components"`
	Frameworks map[string]int `json:"frameworks"`
	Categories int            `json:"categories"`
	BuiltAt    string         `json:"builtAt"`
	Licensed   bool           `json:"licensed"`
}

package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/stencilui/stencil/catalog"
	"github.com/stencilui/stencil/core"
	"github.com/stencilui/stencil/index"
)

// DefaultLimit bounds the result count when a query does not set one.
const DefaultLimit = 10

// Term match weights. Exact name matches dominate, category matches rank
// in the middle, design-token matches contribute least.
const (
	weightExactName = 4.0
	weightNameWord  = 2.0
	weightCategory  = 1.5
	weightToken     = 0.5
)

// Engine answers structured queries over the catalog. All operations are
// pure functions of (store, index, query); the engine holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	store  *catalog.Store
	index  *index.Index
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a query engine over a loaded store and its index.
func NewEngine(store *catalog.Store, ix *index.Index, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if ix == nil {
		return nil, ErrIndexRequired
	}

	e := &Engine{
		store:  store,
		index:  ix,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Query is a structured search request. String filter fields are raw
// caller input; empty fields are unconstrained. Provided filters are
// conjunctive: a candidate must satisfy every one of them.
type Query struct {
	// Term is a free-text term matched against component names, category
	// names and the design-token vocabulary.
	Term string

	// Framework requires an exact framework match ("html", "react", "vue").
	Framework string

	// Version requires the target styling-system version (e.g. "3.3") to
	// fall inside each candidate's compatibility range.
	Version string

	// Position filters by typical page placement (top, mid, bottom, sidebar).
	Position string

	// Context filters by semantic role (hero, nav, form, ...).
	Context string

	// Profile filters by visual style profile (flat, soft, bold, ornate).
	Profile string

	// Scale filters by the assumed typography scale (small, medium, large).
	Scale string

	// Limit bounds the number of results. Zero means DefaultLimit.
	Limit int
}

// filters is the parsed, typed form of a Query's constraint fields.
type filters struct {
	framework *core.Framework
	version   *core.Version
	position  *core.PagePosition
	context   *core.UsageContext
	profile   *core.StyleProfile
	scale     *core.TypographyScale
}

func parseQuery(q Query) (filters, error) {
	var f filters

	if q.Framework != "" {
		fw := core.Framework(strings.ToLower(q.Framework))
		if !fw.Valid() {
			return f, &QueryError{Field: "framework", Value: q.Framework}
		}
		f.framework = &fw
	}

	if q.Version != "" {
		v, err := core.ParseVersion(q.Version)
		if err != nil {
			return f, &QueryError{Field: "version", Value: q.Version}
		}
		f.version = &v
	}

	if q.Position != "" {
		p := core.PagePosition(strings.ToLower(q.Position))
		if !p.Valid() {
			return f, &QueryError{Field: "position", Value: q.Position}
		}
		f.position = &p
	}

	if q.Context != "" {
		u := core.UsageContext(strings.ToLower(q.Context))
		if !u.Valid() {
			return f, &QueryError{Field: "context", Value: q.Context}
		}
		f.context = &u
	}

	if q.Profile != "" {
		s := core.StyleProfile(strings.ToLower(q.Profile))
		if !s.Valid() {
			return f, &QueryError{Field: "profile", Value: q.Profile}
		}
		f.profile = &s
	}

	if q.Scale != "" {
		sc := core.TypographyScale(strings.ToLower(q.Scale))
		if !sc.Valid() {
			return f, &QueryError{Field: "scale", Value: q.Scale}
		}
		f.scale = &sc
	}

	return f, nil
}

// Search returns ranked, filtered results for the query. Results are
// ordered strictly descending by score; equal scores preserve catalog
// declaration order, so the same query always yields the same sequence.
func (e *Engine) Search(q Query) ([]core.SearchResult, error) {
	f, err := parseQuery(q)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	words := index.Tokens(q.Term)
	tokenTerms := index.TokenTerms(q.Term)
	candidates := e.candidates(f, words, tokenTerms)

	results := make([]core.SearchResult, 0, len(candidates))
	for _, id := range candidates {
		c, err := e.store.Lookup(id)
		if err != nil {
			// The index is built from the same load pass as the store;
			// a dangling id would be a programming error.
			continue
		}
		if !matches(c, f) {
			continue
		}

		score, reason := scoreComponent(c, q.Term, words, tokenTerms)
		if len(tokenTerms) > 0 && score == 0 {
			continue
		}
		results = append(results, core.SearchResult{ID: c.ID, Name: c.Name, Score: score, Reason: reason})
	}

	// Candidates arrive in catalog order, so a stable sort keeps the
	// declaration-order tie-break.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}

	e.logger.Debug("search complete",
		"term", q.Term, "candidates", len(candidates), "results", len(results))
	return results, nil
}

// candidates narrows the id set using the metadata index before any
// scoring happens. The smallest applicable posting list wins; remaining
// filters are verified per candidate. Only a fully unconstrained query
// enumerates the whole catalog.
func (e *Engine) candidates(f filters, words, tokenTerms []string) []core.ID {
	var lists [][]core.ID

	if f.framework != nil {
		lists = append(lists, e.index.ByFramework(*f.framework))
	}
	if f.version != nil {
		lists = append(lists, e.index.ContainingVersion(*f.version))
	}
	if f.position != nil {
		lists = append(lists, e.index.ByPosition(*f.position))
	}
	if f.context != nil {
		lists = append(lists, e.index.ByContext(*f.context))
	}
	if f.profile != nil {
		lists = append(lists, e.index.ByProfile(*f.profile))
	}
	if f.scale != nil {
		lists = append(lists, e.index.ByScale(*f.scale))
	}

	if len(lists) > 0 {
		smallest := lists[0]
		for _, list := range lists[1:] {
			if len(list) < len(smallest) {
				smallest = list
			}
		}
		return smallest
	}

	if len(tokenTerms) > 0 {
		return e.termCandidates(words, tokenTerms)
	}

	// Unconstrained listing query.
	all := make([]core.ID, 0, e.store.Len())
	for _, c := range e.store.Components() {
		all = append(all, c.ID)
	}
	return all
}

// termCandidates unions the word and token posting lists for the query
// term, deduplicated and restored to catalog order.
func (e *Engine) termCandidates(words, tokenTerms []string) []core.ID {
	seen := make(map[core.ID]bool)
	var ids []core.ID
	add := func(list []core.ID) {
		for _, id := range list {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	for _, word := range words {
		add(e.index.ByWord(word))
	}
	for _, token := range tokenTerms {
		add(e.index.ByToken(token))
	}

	sort.Slice(ids, func(i, j int) bool {
		return e.store.Ordinal(ids[i]) < e.store.Ordinal(ids[j])
	})
	return ids
}

// matches verifies every provided filter against a candidate. Filters are
// conjunctive; an omitted filter never constrains.
func matches(c *core.Component, f filters) bool {
	if f.framework != nil && c.Framework != *f.framework {
		return false
	}
	if f.version != nil && !c.Extracted.Tailwind.Contains(*f.version) {
		return false
	}
	if f.position != nil && c.Intel.Position != *f.position {
		return false
	}
	if f.context != nil && c.Intel.Context != *f.context {
		return false
	}
	if f.profile != nil && c.Intel.Style != *f.profile {
		return false
	}
	if f.scale != nil && c.Intel.Scale != *f.scale {
		return false
	}
	return true
}

// scoreComponent computes the weighted term score and the dominant match
// reason. A query without a term scores zero with reason "filters",
// leaving catalog order as the ranking.
func scoreComponent(c *core.Component, rawTerm string, words, tokenTerms []string) (float64, string) {
	if len(tokenTerms) == 0 {
		return 0, "filters"
	}

	nameWords := wordSet(index.Tokens(c.Name))
	categoryWords := make(map[string]bool)
	for _, segment := range c.Category {
		for _, word := range index.Tokens(segment) {
			categoryWords[word] = true
		}
	}
	tokens := make(map[string]bool)
	for _, token := range c.Extracted.Tokens.All() {
		tokens[index.Normalize(token)] = true
	}

	var nameScore, categoryScore, tokenScore float64
	for _, word := range words {
		if nameWords[word] {
			nameScore += weightNameWord
		}
		if categoryWords[word] {
			categoryScore += weightCategory
		}
	}
	for _, token := range tokenTerms {
		if tokens[token] {
			tokenScore += weightToken
		}
	}
	if strings.EqualFold(strings.TrimSpace(rawTerm), c.Name) {
		nameScore += weightExactName
	}

	score := nameScore + categoryScore + tokenScore
	switch {
	case score == 0:
		return 0, ""
	case nameScore >= categoryScore && nameScore >= tokenScore:
		return score, "name"
	case categoryScore >= tokenScore:
		return score, "category"
	default:
		return score, "token"
	}
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

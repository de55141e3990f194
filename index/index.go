package index

import (
	"slices"

	"github.com/stencilui/stencil/catalog"
	"github.com/stencilui/stencil/core"
)

// Index holds derived lookup structures over the catalog's extracted
// metadata. It is built once from the Store in the same load pass and is
// immutable afterwards; rebuilding at runtime is not supported.
type Index struct {
	byFramework map[core.Framework][]core.ID
	byPosition  map[core.PagePosition][]core.ID
	byContext   map[core.UsageContext][]core.ID
	byProfile   map[core.StyleProfile][]core.ID
	byScale     map[core.TypographyScale][]core.ID

	// byWord maps normalized name and category words to component ids,
	// byToken maps the normalized design-token vocabulary.
	byWord  map[string][]core.ID
	byToken map[string][]core.ID

	// versions is an interval index over compatibility ranges, sorted by
	// range lower bound so containment checks stop early.
	versions []versionEntry
}

type versionEntry struct {
	rng core.TailwindCompatibility
	id  core.ID
	ord int
}

// Build derives the metadata index from a loaded store. Components are
// visited in declaration order, so every posting list is ordered by
// catalog ordinal without further sorting.
func Build(store *catalog.Store) *Index {
	ix := &Index{
		byFramework: make(map[core.Framework][]core.ID),
		byPosition:  make(map[core.PagePosition][]core.ID),
		byContext:   make(map[core.UsageContext][]core.ID),
		byProfile:   make(map[core.StyleProfile][]core.ID),
		byScale:     make(map[core.TypographyScale][]core.ID),
		byWord:      make(map[string][]core.ID),
		byToken:     make(map[string][]core.ID),
	}

	for i, c := range store.Components() {
		ix.byFramework[c.Framework] = append(ix.byFramework[c.Framework], c.ID)
		ix.byPosition[c.Intel.Position] = append(ix.byPosition[c.Intel.Position], c.ID)
		ix.byContext[c.Intel.Context] = append(ix.byContext[c.Intel.Context], c.ID)
		ix.byProfile[c.Intel.Style] = append(ix.byProfile[c.Intel.Style], c.ID)
		ix.byScale[c.Intel.Scale] = append(ix.byScale[c.Intel.Scale], c.ID)

		seen := make(map[string]bool)
		for _, word := range Tokens(c.Name) {
			if !seen[word] {
				seen[word] = true
				ix.byWord[word] = append(ix.byWord[word], c.ID)
			}
		}
		for _, segment := range c.Category {
			for _, word := range Tokens(segment) {
				if !seen[word] {
					seen[word] = true
					ix.byWord[word] = append(ix.byWord[word], c.ID)
				}
			}
		}

		seenTokens := make(map[string]bool)
		for _, token := range c.Extracted.Tokens.All() {
			normalized := Normalize(token)
			if normalized != "" && !seenTokens[normalized] {
				seenTokens[normalized] = true
				ix.byToken[normalized] = append(ix.byToken[normalized], c.ID)
			}
		}

		ix.versions = append(ix.versions, versionEntry{rng: c.Extracted.Tailwind, id: c.ID, ord: i})
	}

	slices.SortFunc(ix.versions, func(a, b versionEntry) int {
		if cmp := a.rng.Min.Compare(b.rng.Min); cmp != 0 {
			return cmp
		}
		return a.ord - b.ord
	})

	return ix
}

// ByFramework returns ids of components targeting the framework, in
// catalog order. The returned slice is shared and must not be mutated.
func (ix *Index) ByFramework(f core.Framework) []core.ID {
	return ix.byFramework[f]
}

// ByPosition returns ids of components placed at the given page position.
func (ix *Index) ByPosition(p core.PagePosition) []core.ID {
	return ix.byPosition[p]
}

// ByContext returns ids of components with the given usage context.
func (ix *Index) ByContext(u core.UsageContext) []core.ID {
	return ix.byContext[u]
}

// ByProfile returns ids of components carrying the given style profile.
func (ix *Index) ByProfile(s core.StyleProfile) []core.ID {
	return ix.byProfile[s]
}

// ByScale returns ids of components assuming the given typography scale.
func (ix *Index) ByScale(s core.TypographyScale) []core.ID {
	return ix.byScale[s]
}

// ByWord returns ids whose name or category contains the normalized word.
func (ix *Index) ByWord(word string) []core.ID {
	return ix.byWord[word]
}

// ByToken returns ids whose extracted token vocabulary contains the token.
func (ix *Index) ByToken(token string) []core.ID {
	return ix.byToken[Normalize(token)]
}

// ContainingVersion returns ids whose compatibility range contains v, in
// catalog order. Entries are sorted by range lower bound, so the scan
// stops at the first range starting above v.
func (ix *Index) ContainingVersion(v core.Version) []core.ID {
	var hits []versionEntry
	for _, e := range ix.versions {
		if e.rng.Min.Compare(v) > 0 {
			break
		}
		if e.rng.Max.Compare(v) >= 0 {
			hits = append(hits, e)
		}
	}

	slices.SortFunc(hits, func(a, b versionEntry) int { return a.ord - b.ord })
	ids := make([]core.ID, len(hits))
	for i, e := range hits {
		ids[i] = e.id
	}
	return ids
}

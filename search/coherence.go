package search

import (
	"fmt"

	"github.com/stencilui/stencil/core"
)

// maxSlotCandidates caps the per-slot candidate set before cross-product
// scoring, bounding the tuple search space.
const maxSlotCandidates = 8

// Slot names one role in a multi-component request, e.g. a "hero" slot
// and a "nav" slot that must look right together.
type Slot struct {
	Name  string
	Query Query
}

// SlotResult is the selected component for one requested slot.
type SlotResult struct {
	Slot   string            `json:"slot"`
	Result core.SearchResult `json:"result"`
}

// profileAffinity returns the pairwise style compatibility between two
// profiles and whether the pairing is allowed at all. Identical profiles
// score highest; adjacent profiles are acceptable; the rest are excluded
// outright rather than penalized.
func profileAffinity(a, b core.StyleProfile) (float64, bool) {
	if a == b {
		return 1.0, true
	}
	pair := [2]core.StyleProfile{a, b}
	if a > b {
		pair = [2]core.StyleProfile{b, a}
	}
	affinity, ok := profileTable[pair]
	return affinity, ok
}

// profileTable holds the allowed cross-profile pairings, keyed with the
// lexically smaller profile first. Pairs absent from the table are
// incompatible. The weights are a default policy, tuned by eye rather
// than derived from data.
var profileTable = map[[2]core.StyleProfile]float64{
	{core.StyleFlat, core.StyleSoft}:   0.6,
	{core.StyleBold, core.StyleSoft}:   0.6,
	{core.StyleBold, core.StyleOrnate}: 0.6,
	{core.StyleOrnate, core.StyleSoft}: 0.4,
}

// CoherentSet selects one component per slot such that the whole set is
// stylistically and typographically coherent. Typography-scale equality is
// a hard requirement across the set; style profiles may differ only within
// the affinity table. When no combination survives, the request fails with
// a NoCoherentSetError instead of silently returning a mismatched set.
func (e *Engine) CoherentSet(slots []Slot) ([]SlotResult, error) {
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}

	names := make([]string, len(slots))
	candidates := make([][]candidate, len(slots))
	for i, slot := range slots {
		names[i] = slot.Name

		q := slot.Query
		if q.Limit <= 0 || q.Limit > maxSlotCandidates {
			q.Limit = maxSlotCandidates
		}
		results, err := e.Search(q)
		if err != nil {
			return nil, err
		}
		if len(results) == 0 {
			return nil, &NoCoherentSetError{
				Slots:  names[:i+1],
				Reason: fmt.Sprintf("slot %q has no candidates", slot.Name),
			}
		}

		candidates[i] = make([]candidate, len(results))
		for j, r := range results {
			c, err := e.store.Lookup(r.ID)
			if err != nil {
				return nil, err
			}
			candidates[i][j] = candidate{component: c, result: r}
		}
	}

	sel := &selection{}
	pickTuple(candidates, 0, make([]candidate, 0, len(slots)), 0, 0, sel)
	if !sel.found {
		return nil, &NoCoherentSetError{
			Slots:  names,
			Reason: "style profiles and typography scales never align across all slots",
		}
	}

	out := make([]SlotResult, len(slots))
	for i, c := range sel.best {
		out[i] = SlotResult{Slot: slots[i].Name, Result: c.result}
	}

	e.logger.Debug("coherent set selected",
		"slots", len(slots), "affinity", sel.affinity)
	return out, nil
}

type candidate struct {
	component *core.Component
	result    core.SearchResult
}

type selection struct {
	found    bool
	best     []candidate
	affinity float64
	score    float64
}

// pickTuple walks the cross product depth first, pruning as soon as a
// partial tuple violates scale equality or profile compatibility. Among
// surviving tuples the highest pairwise affinity wins; equal affinities
// fall back to the summed search scores, and the first tuple found wins
// remaining ties, which preserves catalog order because per-slot
// candidates are already deterministically ordered.
func pickTuple(candidates [][]candidate, depth int, chosen []candidate, affinity, score float64, sel *selection) {
	if depth == len(candidates) {
		if !sel.found || affinity > sel.affinity ||
			(affinity == sel.affinity && score > sel.score) {
			sel.found = true
			sel.best = append(sel.best[:0], chosen...)
			sel.affinity = affinity
			sel.score = score
		}
		return
	}

next:
	for _, c := range candidates[depth] {
		pairSum := 0.0
		for _, prev := range chosen {
			if prev.component.Intel.Scale != c.component.Intel.Scale {
				continue next
			}
			a, ok := profileAffinity(prev.component.Intel.Style, c.component.Intel.Style)
			if !ok {
				continue next
			}
			pairSum += a
		}
		pickTuple(candidates, depth+1, append(chosen, c), affinity+pairSum, score+c.result.Score, sel)
	}
}

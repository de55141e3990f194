package catalog

import (
	"fmt"
	"iter"
	"strings"

	"github.com/stencilui/stencil/core"
)

// Store holds the immutable, compiled-in set of component records and the
// category hierarchy. It is built once, before any query is served, and is
// safe for concurrent use without locking afterwards.
type Store struct {
	components []*core.Component
	byID       map[core.ID]*core.Component
	ordinal    map[core.ID]int

	roots      []*core.CategoryNode
	byCategory map[string][]*core.Component // category path -> components, declaration order
	preorder   []string                     // category paths in tree pre-order

	builtAt string
}

// ListFilter narrows a List enumeration. Zero-value fields are unconstrained.
type ListFilter struct {
	// Category restricts the listing to a subtree of the hierarchy.
	// When set, enumeration order follows the category tree pre-order.
	Category []string

	// Framework restricts the listing to one framework.
	Framework core.Framework
}

// NewStore builds a Store from validated records and the category tree.
// Every referential invariant is checked here; a failure means the embedded
// dataset is defective and the process must not start.
func NewStore(components []*core.Component, roots []*core.CategoryNode) (*Store, error) {
	if len(components) == 0 {
		return nil, ErrEmptyCatalog
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("%w: missing category tree", ErrMalformedData)
	}

	s := &Store{
		components: components,
		byID:       make(map[core.ID]*core.Component, len(components)),
		ordinal:    make(map[core.ID]int, len(components)),
		roots:      roots,
		byCategory: make(map[string][]*core.Component),
	}

	known := make(map[string]*core.CategoryNode)
	for _, root := range roots {
		collectPaths(root, nil, known, &s.preorder)
	}

	for i, c := range components {
		if err := core.ValidateComponent(c); err != nil {
			return nil, err
		}
		if _, exists := s.byID[c.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, c.ID)
		}
		s.byID[c.ID] = c
		s.ordinal[c.ID] = i

		path := categoryPath(c.Category)
		if _, ok := known[path]; !ok {
			return nil, fmt.Errorf("%w: component %s references %q", ErrUnknownCategory, c.ID, path)
		}
		s.byCategory[path] = append(s.byCategory[path], c)
	}

	for _, root := range roots {
		accumulateCounts(root, nil, s.byCategory)
	}
	return s, nil
}

// Lookup returns the component with the given ID, or a NotFoundError.
func (s *Store) Lookup(id core.ID) (*core.Component, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return c, nil
}

// List enumerates component metadata matching the filter. The sequence is
// finite and restartable. Order is catalog declaration order, or category
// tree pre-order when a category filter is applied.
func (s *Store) List(filter ListFilter) iter.Seq[core.ComponentMeta] {
	return func(yield func(core.ComponentMeta) bool) {
		if len(filter.Category) == 0 {
			for _, c := range s.components {
				if filter.Framework != "" && c.Framework != filter.Framework {
					continue
				}
				if !yield(c.Meta()) {
					return
				}
			}
			return
		}

		prefix := categoryPath(filter.Category)
		for _, path := range s.preorder {
			if path != prefix && !strings.HasPrefix(path, prefix+"/") {
				continue
			}
			for _, c := range s.byCategory[path] {
				if filter.Framework != "" && c.Framework != filter.Framework {
					continue
				}
				if !yield(c.Meta()) {
					return
				}
			}
		}
	}
}

// Components returns all records in declaration order. Callers must treat
// the slice and its elements as read-only.
func (s *Store) Components() []*core.Component {
	return s.components
}

// Ordinal returns the declaration-order position of a component. It is the
// deterministic tie-break for equal search scores.
func (s *Store) Ordinal(id core.ID) int {
	return s.ordinal[id]
}

// Categories returns the top-level nodes of the category hierarchy with
// cumulative component counts. The tree is read-only.
func (s *Store) Categories() []*core.CategoryNode {
	return s.roots
}

// Len returns the number of components in the catalog.
func (s *Store) Len() int {
	return len(s.components)
}

// BuiltAt returns the build date recorded by the catalog compiler, or an
// empty string for stores built directly from records.
func (s *Store) BuiltAt() string {
	return s.builtAt
}

func categoryPath(parts []string) string {
	return strings.Join(parts, "/")
}

// collectPaths walks the tree pre-order, recording every node path.
func collectPaths(node *core.CategoryNode, parents []string, known map[string]*core.CategoryNode, order *[]string) {
	path := append(append([]string{}, parents...), node.Name)
	key := categoryPath(path)
	known[key] = node
	*order = append(*order, key)
	for _, child := range node.Children {
		collectPaths(child, path, known, order)
	}
}

// accumulateCounts fills ComponentCount with the subtree totals.
func accumulateCounts(node *core.CategoryNode, parents []string, byCategory map[string][]*core.Component) int {
	path := append(append([]string{}, parents...), node.Name)
	total := len(byCategory[categoryPath(path)])
	for _, child := range node.Children {
		total += accumulateCounts(child, path, byCategory)
	}
	node.ComponentCount = total
	return total
}

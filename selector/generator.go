package selector

import (
	"github.com/npillmayer/respstyle/attr"
)

// Generator resolves selectors out of selector trees.
type Generator struct {
	// Base is the breakpoint of last resort for selector lookup.
	// Empty means attr.Desktop.
	Base   attr.Breakpoint
	Sticky StickyOptions
}

func (g Generator) base() attr.Breakpoint {
	if g.Base == "" {
		return attr.Desktop
	}
	return g.Base
}

// Resolve derives the selector for (bp, st). The base selector is the
// value-state selector of bp, falling back to the value-state selector of the
// base breakpoint. For hover and sticky, the state's own selector (or else the
// base selector) is rewritten; for all other states the state's own selector
// is used if present, else the base selector.
func (g Generator) Resolve(tree attr.Tree[string], bp attr.Breakpoint, st attr.State) string {
	return g.Rewrite(g.Pick(tree, bp, st), st)
}

// Pick returns the selector Resolve starts from, before any state rewriting.
func (g Generator) Pick(tree attr.Tree[string], bp attr.Breakpoint, st attr.State) string {
	if current, _ := tree.Get(bp, st); current != "" {
		return current
	}
	if base, _ := tree.Get(bp, attr.Value); base != "" {
		return base
	}
	base, _ := tree.Get(g.base(), attr.Value)
	return base
}

// Rewrite applies the rewriting of state st to sel.
func (g Generator) Rewrite(sel string, st attr.State) string {
	switch st {
	case attr.Hover:
		return Hover(sel)
	case attr.Sticky:
		return Sticky(sel, g.Sticky)
	}
	return sel
}

// ExpandHoverPlaceholders returns a copy of tree with the hover placeholder
// replaced in every leaf. Trees without placeholders are returned unchanged.
func ExpandHoverPlaceholders(tree attr.Tree[string]) attr.Tree[string] {
	if !hasPlaceholder(tree, func(s string) bool { return s != ExpandHoverPlaceholder(s) }) {
		return tree
	}
	return attr.MapTree(tree, func(_ attr.Key, s string) string {
		return ExpandHoverPlaceholder(s)
	})
}

// ExpandPropertyHoverPlaceholders is ExpandHoverPlaceholders for
// property-selector trees.
func ExpandPropertyHoverPlaceholders(tree attr.Tree[map[string]string]) attr.Tree[map[string]string] {
	found := hasPlaceholder(tree, func(m map[string]string) bool {
		for _, s := range m {
			if s != ExpandHoverPlaceholder(s) {
				return true
			}
		}
		return false
	})
	if !found {
		return tree
	}
	return attr.MapTree(tree, func(_ attr.Key, m map[string]string) map[string]string {
		r := make(map[string]string, len(m))
		for prop, s := range m {
			r[prop] = ExpandHoverPlaceholder(s)
		}
		return r
	})
}

func hasPlaceholder[T any](tree attr.Tree[T], test func(T) bool) bool {
	for _, states := range tree {
		for _, v := range states {
			if test(v) {
				return true
			}
		}
	}
	return false
}

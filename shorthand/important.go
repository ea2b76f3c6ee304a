package shorthand

import (
	"github.com/npillmayer/respstyle/attr"
	"github.com/npillmayer/respstyle/memo"
)

// Important tells which declarations get an !important flag. It either
// applies uniformly or per property, with per-property flags kept in an
// attribute tree.
//
// The zero value flags nothing.
type Important struct {
	all  bool
	tree attr.Tree[map[string]bool]
}

// All creates a uniform important specification.
func All(important bool) Important {
	return Important{all: important}
}

// PerProperty creates an important specification from a tree of
// property → flag maps. Property names may be shorthands.
func PerProperty(tree attr.Tree[map[string]bool]) Important {
	return Important{tree: tree}
}

// IsUniform is true for specifications created with All (or the zero value).
func (imp Important) IsUniform() bool {
	return imp.tree == nil
}

// Tree returns the per-property tree, or nil for uniform specifications.
func (imp Important) Tree() attr.Tree[map[string]bool] {
	return imp.tree
}

// Importance is an important specification resolved for a single breakpoint
// and state.
type Importance struct {
	All        bool
	Properties map[string]bool
}

// For tells if declarations of prop are flagged !important.
func (imp Importance) For(prop string) bool {
	return imp.All || imp.Properties[prop]
}

// Any is true if at least one property is flagged.
func (imp Importance) Any() bool {
	if imp.All {
		return true
	}
	for _, f := range imp.Properties {
		if f {
			return true
		}
	}
	return false
}

type expandKey string

var expandCache = memo.New[expandKey, attr.Tree[map[string]bool]]("expand-important")

// Expand fans shorthand flags of a per-property specification out to the
// longhands of m. Uniform specifications are returned unchanged.
//
//	{desktop: {value: {border: true}}}, {border: [border-top, border-left]}
//	⇒ {desktop: {value: {border-top: true, border-left: true}}}
func Expand(imp Important, m Map) Important {
	if imp.IsUniform() || imp.tree.Empty() || len(m) == 0 {
		return imp
	}
	key := expandKey(memo.MustHash(imp.tree, m))
	tree := expandCache.Do(key, func() attr.Tree[map[string]bool] {
		tracer().Debugf("expanding important flags over %d shorthands", len(m))
		return attr.MapTree(imp.tree, func(_ attr.Key, leaf map[string]bool) map[string]bool {
			return unpackLeaf(leaf, m)
		})
	})
	return Important{tree: tree}
}

// Resolve resolves imp for (bp, st) with the two-axis cascade.
func (imp Important) Resolve(bp attr.Breakpoint, st attr.State, o attr.Order) Importance {
	if imp.IsUniform() {
		return Importance{All: imp.all}
	}
	r := attr.Maps[string, bool](o)
	return Importance{Properties: r.Resolve(imp.tree, attr.At(bp, st), attr.Merged, nil)}
}

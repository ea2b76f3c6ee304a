/*
Package shorthand deals with shorthand CSS properties.

Shorthand properties (e.g. "border") stand for a set of longhand properties
(e.g. "border-top-width", …). Authors may flag a shorthand as !important or
give it a selector override; package shorthand fans these out to the
longhands, with explicit longhand entries always beating shorthand-derived
ones.

Expansion results are memoized process-wide, keyed by a structural hash of
the complete input. Trees returned from this package must be treated as
immutable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package shorthand

import (
	"sort"

	"github.com/npillmayer/respstyle/attr"
	"github.com/npillmayer/respstyle/memo"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'respstyle.shorthand'.
func tracer() tracing.Trace {
	return tracing.Select("respstyle.shorthand")
}

// Map maps shorthand property names to their longhand names.
type Map map[string][]string

// Longhands returns the longhands of prop, if prop is a shorthand.
func (m Map) Longhands(prop string) ([]string, bool) {
	l, ok := m[prop]
	return l, ok && len(l) > 0
}

// Default returns the shorthand map for the box-model, background and font
// properties.
func Default() Map {
	m := Map{
		"margin":       sides("margin", ""),
		"padding":      sides("padding", ""),
		"border-width": sides("border", "width"),
		"border-style": sides("border", "style"),
		"border-color": sides("border", "color"),
		"border-radius": {
			"border-top-left-radius", "border-top-right-radius",
			"border-bottom-right-radius", "border-bottom-left-radius",
		},
		"background": {
			"background-color", "background-image", "background-position",
			"background-repeat", "background-size",
		},
		"font": {
			"font-style", "font-variant", "font-weight", "font-size",
			"line-height", "font-family",
		},
	}
	var border []string
	for _, dir := range fourDirs {
		border = append(border, p("border", "width", dir), p("border", "style", dir), p("border", "color", dir))
	}
	m["border"] = border
	return m
}

func sides(prefix, suffix string) []string {
	l := make([]string, 4)
	for i, dir := range fourDirs {
		l[i] = p(prefix, suffix, dir)
	}
	return l
}

// --- Unpacking -------------------------------------------------------------

type unpackKey string

var (
	unpackCache = memo.New[unpackKey, attr.Tree[map[string]string]]("unpack-selectors")
)

// Unpack fans property-selector overrides of shorthands out to their
// longhands. Explicit entries for a longhand win over shorthand-derived ones.
// If either input is empty, propertySelectors is returned as is.
func Unpack(propertySelectors attr.Tree[map[string]string], m Map) attr.Tree[map[string]string] {
	if propertySelectors.Empty() || len(m) == 0 {
		return propertySelectors
	}
	key := unpackKey(memo.MustHash(propertySelectors, m))
	return unpackCache.Do(key, func() attr.Tree[map[string]string] {
		return attr.MapTree(propertySelectors, func(_ attr.Key, leaf map[string]string) map[string]string {
			return unpackLeaf(leaf, m)
		})
	})
}

func unpackLeaf[V any](leaf map[string]V, m Map) map[string]V {
	unpacked := make(map[string]V, len(leaf))
	specific := make(map[string]V, len(leaf))
	for prop, v := range leaf {
		if longhands, ok := m.Longhands(prop); ok {
			for _, l := range longhands {
				unpacked[l] = v
			}
			continue
		}
		specific[prop] = v
	}
	return attr.MergeMaps(unpacked, specific)
}

// ActiveProperties returns the names of properties with a selector override
// at (bp, st), after inheritance. The names are sorted.
func ActiveProperties(propertySelectors attr.Tree[map[string]string], bp attr.Breakpoint, st attr.State, o attr.Order) []string {
	r := attr.Maps[string, string](o)
	leaf := r.Resolve(propertySelectors, attr.At(bp, st), attr.Merged, nil)
	if len(leaf) == 0 {
		return nil
	}
	names := make([]string, 0, len(leaf))
	for name := range leaf {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PropertyTree projects a property-selector tree to the selectors of a single
// property.
func PropertyTree(propertySelectors attr.Tree[map[string]string], prop string) attr.Tree[string] {
	t := attr.New[string]()
	for bp, states := range propertySelectors {
		for st, leaf := range states {
			if sel, ok := leaf[prop]; ok {
				t.Set(bp, st, sel)
			}
		}
	}
	return t
}

package attr

import (
	"github.com/npillmayer/respstyle/maybe"
)

// Mode selects how the cascade combines inherited values.
type Mode int

const (
	// Merged deep-merges inherited and explicit values, more specific
	// entries winning on conflict.
	Merged Mode = iota
	// Whole returns the first non-empty value of the lookup chain, without
	// merging.
	Whole
)

func (m Mode) String() string {
	if m == Whole {
		return "whole"
	}
	return "merged"
}

// Resolver resolves leafs of trees with values of type T.
//
// Merge combines a less specific value (base) with a more specific one
// (override); if Merge is nil, override replaces base. IsEmpty decides which
// leafs are skipped by the cascade; if it is nil, IsEmptyValue is used.
//
// A Resolver is a pure function of its inputs and may be shared between
// goroutines.
type Resolver[T any] struct {
	Order   Order
	Merge   func(base, override T) T
	IsEmpty func(T) bool
}

func (r Resolver[T]) empty(v T) bool {
	if r.IsEmpty != nil {
		return r.IsEmpty(v)
	}
	return IsEmptyValue(v)
}

// Lookup returns the value which applies at leaf k after inheritance, or
// Nothing if neither k nor any leaf it inherits from carries a value.
func (r Resolver[T]) Lookup(t Tree[T], k Key, mode Mode) maybe.Maybe[T] {
	if len(t) == 0 {
		return maybe.Nothing[T]()
	}
	chain := r.Order.Chain(k)
	if mode == Whole {
		for _, c := range chain {
			if v, ok := t.Get(c.Breakpoint, c.State); ok && !r.empty(v) {
				return maybe.Just(v)
			}
		}
		return maybe.Nothing[T]()
	}
	var acc T
	found := false
	for i := len(chain) - 1; i >= 0; i-- { // general to specific
		v, ok := t.Get(chain[i].Breakpoint, chain[i].State)
		if !ok || r.empty(v) {
			continue
		}
		if !found || r.Merge == nil {
			acc = v
		} else {
			acc = r.Merge(acc, v)
		}
		found = true
	}
	if !found {
		return maybe.Nothing[T]()
	}
	return maybe.Just(acc)
}

// Resolve is like Lookup, but returns def if no value applies.
func (r Resolver[T]) Resolve(t Tree[T], k Key, mode Mode, def T) T {
	return r.Lookup(t, k, mode).WithDefault(def)
}

// Values returns a resolver for trees of free-form values, deep-merging
// nested maps.
func Values(o Order) Resolver[any] {
	return Resolver[any]{Order: o, Merge: DeepMerge}
}

// Maps returns a resolver for trees of flat maps, merging them key by key.
func Maps[K comparable, V any](o Order) Resolver[map[K]V] {
	return Resolver[map[K]V]{Order: o, Merge: MergeMaps[K, V]}
}

// Strings returns a resolver for trees of strings (e.g. selectors).
func Strings(o Order) Resolver[string] {
	return Resolver[string]{Order: o}
}

// ResolveValue resolves a leaf of a free-form attribute tree.
func ResolveValue(t Tree[any], bp Breakpoint, st State, mode Mode, o Order) any {
	return Values(o).Resolve(t, At(bp, st), mode, nil)
}

// --- Merging ---------------------------------------------------------------

// DeepMerge merges override into base. If both are maps with string-kind
// keys, the result is a new map[string]any with nested maps merged
// recursively. Otherwise override wins, unless it is empty.
func DeepMerge(base, override any) any {
	bm, ok1 := StringMap(base)
	om, ok2 := StringMap(override)
	if !ok1 || !ok2 {
		if IsEmptyValue(override) {
			return base
		}
		return override
	}
	r := make(map[string]any, len(bm)+len(om))
	for k, v := range bm {
		r[k] = v
	}
	for k, v := range om {
		if b, exists := r[k]; exists {
			r[k] = DeepMerge(b, v)
		} else {
			r[k] = v
		}
	}
	return r
}

// MergeMaps returns a new map containing base overwritten by override.
func MergeMaps[K comparable, V any](base, override map[K]V) map[K]V {
	r := make(map[K]V, len(base)+len(override))
	for k, v := range base {
		r[k] = v
	}
	for k, v := range override {
		r[k] = v
	}
	return r
}

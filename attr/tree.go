package attr

import (
	"fmt"
	"reflect"
)

// Breakpoint is a named responsive viewport tier.
type Breakpoint string

// Well-known breakpoints, from largest to smallest viewport.
const (
	UltraWide  Breakpoint = "ultraWide"
	Widescreen Breakpoint = "widescreen"
	Desktop    Breakpoint = "desktop"
	TabletWide Breakpoint = "tabletWide"
	Tablet     Breakpoint = "tablet"
	PhoneWide  Breakpoint = "phoneWide"
	Phone      Breakpoint = "phone"
)

// State is an interaction mode of a breakpoint.
type State string

// The interaction states. Value is the baseline state.
const (
	Value  State = "value"
	Hover  State = "hover"
	Sticky State = "sticky"
)

// Key addresses a single leaf of a tree.
type Key struct {
	Breakpoint Breakpoint
	State      State
}

func (k Key) String() string {
	return fmt.Sprintf("%s.%s", k.Breakpoint, k.State)
}

// At is a shortcut to create a key.
func At(bp Breakpoint, st State) Key {
	return Key{Breakpoint: bp, State: st}
}

// Tree is a sparse mapping breakpoint → state → value.
// nil is a legal (empty) tree for read operations.
type Tree[T any] map[Breakpoint]map[State]T

// New creates an empty tree.
func New[T any]() Tree[T] {
	return make(Tree[T])
}

// Get returns the value at leaf (bp, st), if present.
func (t Tree[T]) Get(bp Breakpoint, st State) (T, bool) {
	var v T
	states, ok := t[bp]
	if !ok {
		return v, false
	}
	v, ok = states[st]
	return v, ok
}

// Set sets the value at leaf (bp, st). t must have been created with New
// or be a non-nil map literal.
func (t Tree[T]) Set(bp Breakpoint, st State, v T) Tree[T] {
	states, ok := t[bp]
	if !ok || states == nil {
		states = make(map[State]T)
		t[bp] = states
	}
	states[st] = v
	return t
}

// Len returns the number of leafs of t.
func (t Tree[T]) Len() int {
	n := 0
	for _, states := range t {
		n += len(states)
	}
	return n
}

// Empty is true if t has no leafs.
func (t Tree[T]) Empty() bool {
	return t.Len() == 0
}

// Keys returns all leafs present in t, sorted by breakpoint order first and
// state order second. Breakpoints and states unknown to order o come last,
// sorted by name.
func (t Tree[T]) Keys(o Order) []Key {
	bps := make([]Breakpoint, 0, len(t))
	for bp, states := range t {
		if len(states) > 0 {
			bps = append(bps, bp)
		}
	}
	o.SortBreakpoints(bps)
	keys := make([]Key, 0, t.Len())
	for _, bp := range bps {
		sts := make([]State, 0, len(t[bp]))
		for st := range t[bp] {
			sts = append(sts, st)
		}
		o.SortStates(sts)
		for _, st := range sts {
			keys = append(keys, Key{Breakpoint: bp, State: st})
		}
	}
	return keys
}

// Copy returns a shallow copy of t: the leaf values are shared.
func (t Tree[T]) Copy() Tree[T] {
	c := make(Tree[T], len(t))
	for bp, states := range t {
		s := make(map[State]T, len(states))
		for st, v := range states {
			s[st] = v
		}
		c[bp] = s
	}
	return c
}

// MapTree creates a new tree of the same shape as t, with every leaf
// transformed by f.
func MapTree[T, S any](t Tree[T], f func(Key, T) S) Tree[S] {
	if t == nil {
		return nil
	}
	r := make(Tree[S], len(t))
	for bp, states := range t {
		s := make(map[State]S, len(states))
		for st, v := range states {
			s[st] = f(Key{Breakpoint: bp, State: st}, v)
		}
		r[bp] = s
	}
	return r
}

// IsEmptyValue reports whether v counts as "no value" for the cascade:
// nil, an empty string, or an empty map or slice.
// Booleans and numbers are never empty; an explicit false or 0 overrides
// an inherited value.
func IsEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case string:
		return x == ""
	case bool, int, int64, float64:
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.String:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

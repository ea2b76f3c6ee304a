package attr

import "sort"

// Order configures iteration and inheritance order. Breakpoints are listed
// from the largest to the smallest viewport. Base is the breakpoint every
// other breakpoint finally inherits from; it may sit anywhere inside
// Breakpoints.
//
// The zero value behaves like DefaultOrder().
type Order struct {
	Breakpoints []Breakpoint
	Base        Breakpoint
	States      []State
}

// DefaultOrder is desktop → tablet → phone with states value, hover, sticky.
func DefaultOrder() Order {
	return Order{
		Breakpoints: []Breakpoint{Desktop, Tablet, Phone},
		Base:        Desktop,
		States:      []State{Value, Hover, Sticky},
	}
}

// ExtendedOrder lists all seven customizable breakpoints, with desktop as base.
func ExtendedOrder() Order {
	return Order{
		Breakpoints: []Breakpoint{UltraWide, Widescreen, Desktop, TabletWide, Tablet, PhoneWide, Phone},
		Base:        Desktop,
		States:      []State{Value, Hover, Sticky},
	}
}

func (o Order) normalized() Order {
	d := DefaultOrder()
	if len(o.Breakpoints) == 0 {
		o.Breakpoints = d.Breakpoints
	}
	if len(o.States) == 0 {
		o.States = d.States
	}
	if o.Base == "" || o.Index(o.Base) < 0 {
		if o.Index(Desktop) >= 0 {
			o.Base = Desktop
		} else {
			o.Base = o.Breakpoints[0]
		}
	}
	return o
}

// BaseBreakpoint returns the base of the (normalized) order.
func (o Order) BaseBreakpoint() Breakpoint {
	return o.normalized().Base
}

// Index returns the position of bp in the breakpoint order, or -1.
func (o Order) Index(bp Breakpoint) int {
	bps := o.Breakpoints
	if len(bps) == 0 {
		bps = DefaultOrder().Breakpoints
	}
	for i, b := range bps {
		if b == bp {
			return i
		}
	}
	return -1
}

// StateIndex returns the position of st in the state order, or -1.
func (o Order) StateIndex(st State) int {
	sts := o.States
	if len(sts) == 0 {
		sts = DefaultOrder().States
	}
	for i, s := range sts {
		if s == st {
			return i
		}
	}
	return -1
}

// Parent returns the breakpoint bp inherits from. The base breakpoint and
// unknown breakpoints have no parent.
func (o Order) Parent(bp Breakpoint) (Breakpoint, bool) {
	o = o.normalized()
	i, b := o.Index(bp), o.Index(o.Base)
	switch {
	case i < 0 || i == b:
		return "", false
	case i < b: // larger than base: inherit towards smaller
		return o.Breakpoints[i+1], true
	default:
		return o.Breakpoints[i-1], true
	}
}

// Lineage returns bp followed by its ancestors up to and including the base.
func (o Order) Lineage(bp Breakpoint) []Breakpoint {
	l := []Breakpoint{bp}
	for p, ok := o.Parent(bp); ok; p, ok = o.Parent(p) {
		l = append(l, p)
	}
	return l
}

// Chain returns the lookup chain for a leaf, most specific first.
// Along every breakpoint of the lineage, a non-value state is tried before
// that breakpoint's value state:
//
//	phone.hover, phone.value, tablet.hover, tablet.value, desktop.hover, desktop.value
func (o Order) Chain(k Key) []Key {
	lineage := o.Lineage(k.Breakpoint)
	chain := make([]Key, 0, 2*len(lineage))
	for _, bp := range lineage {
		if k.State != Value {
			chain = append(chain, Key{Breakpoint: bp, State: k.State})
		}
		chain = append(chain, Key{Breakpoint: bp, State: Value})
	}
	return chain
}

// SortBreakpoints sorts bps in place by breakpoint order. Unknown
// breakpoints are moved to the end, sorted by name.
func (o Order) SortBreakpoints(bps []Breakpoint) {
	sort.SliceStable(bps, func(i, j int) bool {
		return less(o.Index(bps[i]), o.Index(bps[j]), string(bps[i]), string(bps[j]))
	})
}

// SortStates sorts sts in place by state order. Unknown states are moved to
// the end, sorted by name.
func (o Order) SortStates(sts []State) {
	sort.SliceStable(sts, func(i, j int) bool {
		return less(o.StateIndex(sts[i]), o.StateIndex(sts[j]), string(sts[i]), string(sts[j]))
	})
}

func less(i, j int, a, b string) bool {
	switch {
	case i >= 0 && j >= 0:
		return i < j
	case i >= 0:
		return true
	case j >= 0:
		return false
	}
	return a < b
}

package attr

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCascadeDesktopValueReachesAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "respstyle.attr")
	defer teardown()
	//
	tree := Tree[any]{Desktop: {Value: "10px"}}
	o := DefaultOrder()
	for _, k := range []Key{At(Tablet, Value), At(Phone, Value), At(Desktop, Hover), At(Phone, Sticky)} {
		for _, mode := range []Mode{Merged, Whole} {
			v := ResolveValue(tree, k.Breakpoint, k.State, mode, o)
			if v != "10px" {
				t.Errorf("expected %s (%s) to resolve to 10px, is %v", k, mode, v)
			}
		}
	}
}

func TestCascadeStateBeforeBreakpoint(t *testing.T) {
	tree := Tree[any]{
		Desktop: {Value: "a", Hover: "b"},
		Tablet:  {Value: "c"},
	}
	r := Values(DefaultOrder())
	if v := r.Resolve(tree, At(Tablet, Hover), Whole, nil); v != "c" {
		t.Errorf("expected tablet.hover to fall back to tablet.value 'c', is %v", v)
	}
	if v := r.Resolve(tree, At(Phone, Hover), Whole, nil); v != "c" {
		t.Errorf("expected phone.hover to inherit 'c' from tablet, is %v", v)
	}
	if v := r.Resolve(tree, At(Desktop, Hover), Whole, nil); v != "b" {
		t.Errorf("expected desktop.hover to be explicit 'b', is %v", v)
	}
	if v := r.Resolve(tree, At(Desktop, Value), Whole, nil); v != "a" {
		t.Errorf("expected desktop.value never to inherit from hover, is %v", v)
	}
}

func TestCascadeMergedMode(t *testing.T) {
	tree := Tree[any]{
		Desktop: {Value: map[string]any{"color": "red", "size": map[string]any{"w": "1px", "h": "2px"}}},
		Phone:   {Value: map[string]any{"size": map[string]any{"h": "3px"}}},
	}
	r := Values(DefaultOrder())
	merged := r.Resolve(tree, At(Phone, Value), Merged, nil)
	expected := map[string]any{"color": "red", "size": map[string]any{"w": "1px", "h": "3px"}}
	if !reflect.DeepEqual(merged, expected) {
		t.Errorf("expected merged phone value to be %v, is %v", expected, merged)
	}
	whole := r.Resolve(tree, At(Phone, Value), Whole, nil)
	if !reflect.DeepEqual(whole, map[string]any{"size": map[string]any{"h": "3px"}}) {
		t.Errorf("expected whole phone value not to be merged, is %v", whole)
	}
	// input is left untouched
	if tree[Desktop][Value].(map[string]any)["size"].(map[string]any)["h"] != "2px" {
		t.Error("expected merge to leave the input tree unmodified, didn't")
	}
}

func TestCascadeDefault(t *testing.T) {
	r := Strings(DefaultOrder())
	if v := r.Resolve(nil, At(Phone, Value), Whole, "fallback"); v != "fallback" {
		t.Errorf("expected default for empty tree, got %q", v)
	}
	tree := Tree[string]{Tablet: {Value: ""}}
	if r.Lookup(tree, At(Phone, Value), Merged).IsJust() {
		t.Error("expected empty strings to be skipped by the cascade, weren't")
	}
}

func TestCascadeExplicitFalseOverrides(t *testing.T) {
	tree := Tree[bool]{Desktop: {Value: true}, Tablet: {Value: false}}
	r := Resolver[bool]{Order: DefaultOrder()}
	if r.Resolve(tree, At(Phone, Value), Whole, true) {
		t.Error("expected explicit tablet false to override desktop true for phone, didn't")
	}
}

func TestOrderLineageExtended(t *testing.T) {
	o := ExtendedOrder()
	l := o.Lineage(Phone)
	expected := []Breakpoint{Phone, PhoneWide, Tablet, TabletWide, Desktop}
	if !reflect.DeepEqual(l, expected) {
		t.Errorf("expected phone lineage %v, is %v", expected, l)
	}
	l = o.Lineage(UltraWide)
	expected = []Breakpoint{UltraWide, Widescreen, Desktop}
	if !reflect.DeepEqual(l, expected) {
		t.Errorf("expected ultraWide lineage %v, is %v", expected, l)
	}
	if _, ok := o.Parent(Desktop); ok {
		t.Error("expected base breakpoint to have no parent")
	}
}

func TestTreeKeysSorted(t *testing.T) {
	tree := Tree[int]{
		Phone:   {Value: 1},
		Desktop: {Sticky: 2, Value: 3, Hover: 4},
		Tablet:  {Hover: 5},
	}
	keys := tree.Keys(DefaultOrder())
	expected := []Key{
		At(Desktop, Value), At(Desktop, Hover), At(Desktop, Sticky),
		At(Tablet, Hover), At(Phone, Value),
	}
	if !reflect.DeepEqual(keys, expected) {
		t.Errorf("expected keys %v, are %v", expected, keys)
	}
}

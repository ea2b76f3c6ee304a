package shorthand

import (
	"reflect"
	"testing"

	"github.com/npillmayer/respstyle/attr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestExpandImportant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "respstyle.shorthand")
	defer teardown()
	//
	imp := PerProperty(attr.Tree[map[string]bool]{
		attr.Desktop: {attr.Value: {"border": true}},
	})
	m := Map{"border": {"border-top", "border-left"}}
	expanded := Expand(imp, m)
	expected := attr.Tree[map[string]bool]{
		attr.Desktop: {attr.Value: {"border-top": true, "border-left": true}},
	}
	if !reflect.DeepEqual(expanded.Tree(), expected) {
		t.Errorf("expected expansion %v, got %v", expected, expanded.Tree())
	}
	if _, ok := imp.Tree()[attr.Desktop][attr.Value]["border-top"]; ok {
		t.Error("expected input specification to be left untouched")
	}
}

func TestExpandSpecificWins(t *testing.T) {
	imp := PerProperty(attr.Tree[map[string]bool]{
		attr.Desktop: {attr.Value: {"border": true, "border-left": false}},
	})
	m := Map{"border": {"border-top", "border-left"}}
	leaf := Expand(imp, m).Tree()[attr.Desktop][attr.Value]
	if !leaf["border-top"] || leaf["border-left"] {
		t.Errorf("expected explicit border-left=false to win, got %v", leaf)
	}
}

func TestExpandMemoizedEqualsUncached(t *testing.T) {
	tree := attr.Tree[map[string]bool]{
		attr.Desktop: {attr.Value: {"margin": true}},
		attr.Phone:   {attr.Hover: {"padding": true, "color": true}},
	}
	m := Default()
	first := Expand(PerProperty(tree), m).Tree()
	second := Expand(PerProperty(tree), m).Tree()
	uncached := attr.MapTree(tree, func(_ attr.Key, leaf map[string]bool) map[string]bool {
		return unpackLeaf(leaf, m)
	})
	if !reflect.DeepEqual(first, uncached) || !reflect.DeepEqual(second, uncached) {
		t.Errorf("expected memoized expansion to equal uncached one:\n%v\n%v", first, uncached)
	}
	// a different input must not collide with the cached one
	other := attr.Tree[map[string]bool]{attr.Desktop: {attr.Value: {"margin": false}}}
	if Expand(PerProperty(other), m).Tree()[attr.Desktop][attr.Value]["margin-top"] {
		t.Error("expected a different input to produce a different expansion")
	}
}

func TestUniformImportant(t *testing.T) {
	imp := Expand(All(true), Default())
	res := imp.Resolve(attr.Phone, attr.Hover, attr.DefaultOrder())
	if !res.For("color") || !res.Any() {
		t.Error("expected uniform important to flag every property")
	}
	if (Important{}).Resolve(attr.Desktop, attr.Value, attr.DefaultOrder()).Any() {
		t.Error("expected zero important to flag nothing")
	}
}

func TestImportantResolveCascades(t *testing.T) {
	imp := PerProperty(attr.Tree[map[string]bool]{
		attr.Desktop: {attr.Value: {"color": true}},
		attr.Tablet:  {attr.Value: {"margin-top": true}},
	})
	res := imp.Resolve(attr.Phone, attr.Hover, attr.DefaultOrder())
	if !res.For("color") || !res.For("margin-top") || res.For("padding-top") {
		t.Errorf("unexpected resolved importance %v", res.Properties)
	}
}

func TestUnpack(t *testing.T) {
	ps := attr.Tree[map[string]string]{
		attr.Desktop: {attr.Value: {"margin": ".m", "margin-top": ".mt", "color": ".c"}},
	}
	m := Map{"margin": {"margin-top", "margin-bottom"}}
	u := Unpack(ps, m)
	expected := map[string]string{"margin-top": ".mt", "margin-bottom": ".m", "color": ".c"}
	if !reflect.DeepEqual(u[attr.Desktop][attr.Value], expected) {
		t.Errorf("expected unpacked %v, got %v", expected, u[attr.Desktop][attr.Value])
	}
	if got := Unpack(ps, nil); !reflect.DeepEqual(got, ps) {
		t.Error("expected Unpack without shorthand map to be a no-op")
	}
	if got := Unpack(nil, m); got != nil {
		t.Error("expected Unpack of empty tree to be a no-op")
	}
}

func TestActiveProperties(t *testing.T) {
	ps := attr.Tree[map[string]string]{
		attr.Desktop: {attr.Value: {"color": ".c"}},
		attr.Phone:   {attr.Hover: {"width": ".w"}},
	}
	o := attr.DefaultOrder()
	if names := ActiveProperties(ps, attr.Tablet, attr.Value, o); !reflect.DeepEqual(names, []string{"color"}) {
		t.Errorf("expected tablet to inherit [color], got %v", names)
	}
	if names := ActiveProperties(ps, attr.Phone, attr.Hover, o); !reflect.DeepEqual(names, []string{"color", "width"}) {
		t.Errorf("expected phone.hover [color width], got %v", names)
	}
	if names := ActiveProperties(nil, attr.Phone, attr.Hover, o); len(names) != 0 {
		t.Errorf("expected no active properties for empty tree, got %v", names)
	}
}

func TestPropertyTree(t *testing.T) {
	ps := attr.Tree[map[string]string]{
		attr.Desktop: {attr.Value: {"color": ".c"}, attr.Hover: {"width": ".w"}},
	}
	tree := PropertyTree(ps, "color")
	if tree.Len() != 1 {
		t.Errorf("expected a single leaf for color, have %d", tree.Len())
	}
	if v, _ := tree.Get(attr.Desktop, attr.Value); v != ".c" {
		t.Errorf("expected .c, got %q", v)
	}
}

func TestSplitCompound(t *testing.T) {
	tests := []struct {
		key, value string
		expected   []KeyValue
	}{
		{"padding", "3px", []KeyValue{{"padding-top", "3px"}, {"padding-right", "3px"}, {"padding-bottom", "3px"}, {"padding-left", "3px"}}},
		{"margin", "1px 2px", []KeyValue{{"margin-top", "1px"}, {"margin-right", "2px"}, {"margin-bottom", "1px"}, {"margin-left", "2px"}}},
		{"border-width", "1px 2px 3px", []KeyValue{{"border-top-width", "1px"}, {"border-right-width", "2px"}, {"border-bottom-width", "3px"}, {"border-left-width", "2px"}}},
		{"border-radius", "1px 2px 3px 4px", []KeyValue{{"border-top-left-radius", "1px"}, {"border-top-right-radius", "2px"}, {"border-bottom-right-radius", "3px"}, {"border-bottom-left-radius", "4px"}}},
	}
	for _, test := range tests {
		kv, err := Split(test.key, test.value)
		if err != nil {
			t.Errorf("unexpected error for %s: %v", test.key, err)
			continue
		}
		if !reflect.DeepEqual(kv, test.expected) {
			t.Errorf("expected %s %q to split into %v, is %v", test.key, test.value, test.expected, kv)
		}
	}
	if _, err := Split("color", "red"); err == nil {
		t.Error("expected color not to be a compound property")
	}
	if _, err := Split("margin", "1 2 3 4 5"); err == nil {
		t.Error("expected 5 values for margin to be rejected")
	}
}

func TestDefaultMap(t *testing.T) {
	m := Default()
	l, ok := m.Longhands("border")
	if !ok || len(l) != 12 {
		t.Errorf("expected border to have 12 longhands, has %d", len(l))
	}
	if _, ok := m.Longhands("color"); ok {
		t.Error("expected color not to be a shorthand")
	}
}

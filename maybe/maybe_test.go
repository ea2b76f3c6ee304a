package maybe_test

import (
	"testing"

	. "github.com/npillmayer/respstyle/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just("@media print")
	y := Nothing[string]()

	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%q)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != "@media print" {
		t.Errorf("expected v to be '@media print', is %#v", v)
	}

	matched := false
	switch m := y.Match(); m {
	case m.Just(&v):
		t.Error("expected Nothing not to match Just")
	case m.Nothing():
		matched = true
	}
	if !matched {
		t.Error("expected Nothing to match Nothing, didn't")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if Just(7).WithDefault(100) != 7 {
		t.Error("expected Just(7) to have value 7, isn't")
	}
	if Nothing[int]().WithDefault(100) != 100 {
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeNonZero(t *testing.T) {
	if NonZero("").IsJust() {
		t.Error("expected NonZero(\"\") to be Nothing, isn't")
	}
	if v, ok := NonZero("a").Get(); !ok || v != "a" {
		t.Errorf("expected NonZero(\"a\") to be Just(a), is %q/%v", v, ok)
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	var v int
	switch m := Just(7).Map(double).Match(); m {
	case m.Just(&v):
	case m.Nothing():
	}
	if v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}
	if Nothing[int]().Map(double).IsJust() {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
	}
}

func TestMaybeAndThenOneOf(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !AndThen(gt0, Just(7)).IsJust() {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if AndThen(gt0, Nothing[int]()).IsJust() {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
	x := OneOf(Nothing[int](), Just(3), Just(4))
	if x.WithDefault(0) != 3 {
		t.Errorf("expected OneOf to pick first Just(3), picked %d", x.WithDefault(0))
	}
	if OneOf[int]().IsJust() {
		t.Error("expected OneOf() to be Nothing, isn't")
	}
}

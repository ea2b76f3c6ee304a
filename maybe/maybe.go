/*
Package maybe implements an option type.

A Maybe either holds a value (Just) or nothing. Within this module it stands
in for values which are optional by nature, e.g. the at-rule of a breakpoint
without media-query bounds, or the outcome of a cascade lookup which did not
find an entry.

Clients pattern-match a Maybe like this:

	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
	    ...
	case m.Nothing():
	    ...
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsJust() bool
	Get() (T, bool)
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// NonZero returns Just(x), if x is not the zero value for T, Nothing otherwise.
func NonZero[T comparable](x T) Maybe[T] {
	var zero T
	if x == zero {
		return Nothing[T]()
	}
	return Just(x)
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// AndThen chains a computation which may fail onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// OneOf returns the first Just of a list of maybes, or Nothing.
func OneOf[T any](xs ...Maybe[T]) Maybe[T] {
	for _, x := range xs {
		if x != nil && x.IsJust() {
			return x
		}
	}
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients switch over the two cases of a Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}

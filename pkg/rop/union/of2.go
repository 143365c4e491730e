package union

import "reflect"

// Of2 holds exactly one value of T0 or T1.
// The zero value holds the zero value of T0.
type Of2[T0, T1 any] struct {
	c cell
}

// Decl2 holds the constructors of Of2[T0, T1]. Get one from Declare2.
// A Decl2 that did not come from Declare2 repeats the distinctness
// check on every construction.
type Decl2[T0, T1 any] struct {
	declared bool
}

// Declare2 checks that the alternatives are distinct types and returns
// their constructors. Duplicates panic, so declare unions in package-level
// vars where the check runs at init.
func Declare2[T0, T1 any]() Decl2[T0, T1] {
	Decl2[T0, T1]{}.check("union.Declare2")
	return Decl2[T0, T1]{declared: true}
}

func (d Decl2[T0, T1]) check(op string) {
	if d.declared {
		return
	}
	mustDistinct(op,
		reflect.TypeFor[T0](),
		reflect.TypeFor[T1]())
}

func (d Decl2[T0, T1]) Alt0(v T0) Of2[T0, T1] {
	d.check("union.Decl2.Alt0")
	return Of2[T0, T1]{c: cell{index: 0, value: v}}
}

func (d Decl2[T0, T1]) Alt1(v T1) Of2[T0, T1] {
	d.check("union.Decl2.Alt1")
	return Of2[T0, T1]{c: cell{index: 1, value: v}}
}

func (u Of2[T0, T1]) Index() int {
	return u.c.index
}

func (Of2[T0, T1]) Arity() int {
	return 2
}

func (u Of2[T0, T1]) Value() any {
	return boxed[T0](u.c)
}

// Equal compares discriminants first and payloads only when they match.
// Payloads are compared with reflect.DeepEqual, so a payload holding a
// non-nil func is never equal to anything, itself included.
func (u Of2[T0, T1]) Equal(other Of2[T0, T1]) bool {
	return equal(u, other)
}

func (u Of2[T0, T1]) String() string {
	return format(u)
}

func (Of2[T0, T1]) alternative(i int) reflect.Type {
	switch i {
	case 0:
		return reflect.TypeFor[T0]()
	case 1:
		return reflect.TypeFor[T1]()
	}
	return nil
}

// Cases2 is a handler set for Of2. It is built by On2, which requires a
// handler for every alternative, or by Partial2, which does not.
type Cases2[T0, T1, R any] struct {
	h0       func(T0) R
	h1       func(T1) R
	fallback func(any) R
	sealed   bool
}

// On2 builds an exhaustive handler set: one handler per alternative, in
// declaration order. Leaving one out does not compile; passing nil panics here
// rather than at dispatch.
func On2[T0, T1, R any](h0 func(T0) R, h1 func(T1) R) Cases2[T0, T1, R] {
	mustHandlers("union.On2", h0 != nil, h1 != nil)
	return Cases2[T0, T1, R]{h0: h0, h1: h1, sealed: true}
}

// Partial2 builds a handler set with a catch-all. Alternatives without a
// Case handler go to fallback. This gives up the compile-time exhaustiveness
// of On2 and is meant for handlers that genuinely treat several
// alternatives alike.
func Partial2[T0, T1, R any](fallback func(any) R) Cases2[T0, T1, R] {
	mustHandlers("union.Partial2", fallback != nil)
	return Cases2[T0, T1, R]{fallback: fallback, sealed: true}
}

func (cs Cases2[T0, T1, R]) Case0(h func(T0) R) Cases2[T0, T1, R] {
	mustHandlers("Cases2.Case0", h != nil)
	cs.h0 = h
	return cs
}

func (cs Cases2[T0, T1, R]) Case1(h func(T1) R) Cases2[T0, T1, R] {
	mustHandlers("Cases2.Case1", h != nil)
	cs.h1 = h
	return cs
}

// Match invokes the one handler for the active alternative of u.
func (cs Cases2[T0, T1, R]) Match(u Of2[T0, T1]) R {
	if !cs.sealed {
		unsealed("union.Match2")
	}
	v := u.Value()
	switch u.c.index {
	case 0:
		return dispatch(cs.h0, cs.fallback, v)
	case 1:
		return dispatch(cs.h1, cs.fallback, v)
	}
	panic(outOfRange("union.Match2", u.c.index))
}

func Match2[T0, T1, R any](u Of2[T0, T1], cs Cases2[T0, T1, R]) R {
	return cs.Match(u)
}

// Visit2 is Match2 for handlers without a result.
func Visit2[T0, T1 any](u Of2[T0, T1], h0 func(T0), h1 func(T1)) {
	On2(discard(h0), discard(h1)).Match(u)
}

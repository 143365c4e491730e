package union

import "reflect"

// Of3 holds exactly one value of T0, T1 or T2.
// The zero value holds the zero value of T0.
type Of3[T0, T1, T2 any] struct {
	c cell
}

// Decl3 holds the constructors of Of3[T0, T1, T2]. Get one from Declare3.
// A Decl3 that did not come from Declare3 repeats the distinctness
// check on every construction.
type Decl3[T0, T1, T2 any] struct {
	declared bool
}

// Declare3 checks that the alternatives are distinct types and returns
// their constructors. Duplicates panic, so declare unions in package-level
// vars where the check runs at init.
func Declare3[T0, T1, T2 any]() Decl3[T0, T1, T2] {
	Decl3[T0, T1, T2]{}.check("union.Declare3")
	return Decl3[T0, T1, T2]{declared: true}
}

func (d Decl3[T0, T1, T2]) check(op string) {
	if d.declared {
		return
	}
	mustDistinct(op,
		reflect.TypeFor[T0](),
		reflect.TypeFor[T1](),
		reflect.TypeFor[T2]())
}

func (d Decl3[T0, T1, T2]) Alt0(v T0) Of3[T0, T1, T2] {
	d.check("union.Decl3.Alt0")
	return Of3[T0, T1, T2]{c: cell{index: 0, value: v}}
}

func (d Decl3[T0, T1, T2]) Alt1(v T1) Of3[T0, T1, T2] {
	d.check("union.Decl3.Alt1")
	return Of3[T0, T1, T2]{c: cell{index: 1, value: v}}
}

func (d Decl3[T0, T1, T2]) Alt2(v T2) Of3[T0, T1, T2] {
	d.check("union.Decl3.Alt2")
	return Of3[T0, T1, T2]{c: cell{index: 2, value: v}}
}

func (u Of3[T0, T1, T2]) Index() int {
	return u.c.index
}

func (Of3[T0, T1, T2]) Arity() int {
	return 3
}

func (u Of3[T0, T1, T2]) Value() any {
	return boxed[T0](u.c)
}

// Equal compares discriminants first and payloads only when they match.
// Payloads are compared with reflect.DeepEqual, so a payload holding a
// non-nil func is never equal to anything, itself included.
func (u Of3[T0, T1, T2]) Equal(other Of3[T0, T1, T2]) bool {
	return equal(u, other)
}

func (u Of3[T0, T1, T2]) String() string {
	return format(u)
}

func (Of3[T0, T1, T2]) alternative(i int) reflect.Type {
	switch i {
	case 0:
		return reflect.TypeFor[T0]()
	case 1:
		return reflect.TypeFor[T1]()
	case 2:
		return reflect.TypeFor[T2]()
	}
	return nil
}

// Cases3 is a handler set for Of3. It is built by On3, which requires a
// handler for every alternative, or by Partial3, which does not.
type Cases3[T0, T1, T2, R any] struct {
	h0       func(T0) R
	h1       func(T1) R
	h2       func(T2) R
	fallback func(any) R
	sealed   bool
}

// On3 builds an exhaustive handler set: one handler per alternative, in
// declaration order. Leaving one out does not compile; passing nil panics here
// rather than at dispatch.
func On3[T0, T1, T2, R any](h0 func(T0) R, h1 func(T1) R, h2 func(T2) R) Cases3[T0, T1, T2, R] {
	mustHandlers("union.On3", h0 != nil, h1 != nil, h2 != nil)
	return Cases3[T0, T1, T2, R]{h0: h0, h1: h1, h2: h2, sealed: true}
}

// Partial3 builds a handler set with a catch-all. Alternatives without a
// Case handler go to fallback. This gives up the compile-time exhaustiveness
// of On3 and is meant for handlers that genuinely treat several
// alternatives alike.
func Partial3[T0, T1, T2, R any](fallback func(any) R) Cases3[T0, T1, T2, R] {
	mustHandlers("union.Partial3", fallback != nil)
	return Cases3[T0, T1, T2, R]{fallback: fallback, sealed: true}
}

func (cs Cases3[T0, T1, T2, R]) Case0(h func(T0) R) Cases3[T0, T1, T2, R] {
	mustHandlers("Cases3.Case0", h != nil)
	cs.h0 = h
	return cs
}

func (cs Cases3[T0, T1, T2, R]) Case1(h func(T1) R) Cases3[T0, T1, T2, R] {
	mustHandlers("Cases3.Case1", h != nil)
	cs.h1 = h
	return cs
}

func (cs Cases3[T0, T1, T2, R]) Case2(h func(T2) R) Cases3[T0, T1, T2, R] {
	mustHandlers("Cases3.Case2", h != nil)
	cs.h2 = h
	return cs
}

// Match invokes the one handler for the active alternative of u.
func (cs Cases3[T0, T1, T2, R]) Match(u Of3[T0, T1, T2]) R {
	if !cs.sealed {
		unsealed("union.Match3")
	}
	v := u.Value()
	switch u.c.index {
	case 0:
		return dispatch(cs.h0, cs.fallback, v)
	case 1:
		return dispatch(cs.h1, cs.fallback, v)
	case 2:
		return dispatch(cs.h2, cs.fallback, v)
	}
	panic(outOfRange("union.Match3", u.c.index))
}

func Match3[T0, T1, T2, R any](u Of3[T0, T1, T2], cs Cases3[T0, T1, T2, R]) R {
	return cs.Match(u)
}

// Visit3 is Match3 for handlers without a result.
func Visit3[T0, T1, T2 any](u Of3[T0, T1, T2], h0 func(T0), h1 func(T1), h2 func(T2)) {
	On3(discard(h0), discard(h1), discard(h2)).Match(u)
}

package union

import "reflect"

// Of5 holds exactly one value of T0, T1, T2, T3 or T4.
// The zero value holds the zero value of T0.
type Of5[T0, T1, T2, T3, T4 any] struct {
	c cell
}

// Decl5 holds the constructors of Of5[T0, T1, T2, T3, T4]. Get one from Declare5.
// A Decl5 that did not come from Declare5 repeats the distinctness
// check on every construction.
type Decl5[T0, T1, T2, T3, T4 any] struct {
	declared bool
}

// Declare5 checks that the alternatives are distinct types and returns
// their constructors. Duplicates panic, so declare unions in package-level
// vars where the check runs at init.
func Declare5[T0, T1, T2, T3, T4 any]() Decl5[T0, T1, T2, T3, T4] {
	Decl5[T0, T1, T2, T3, T4]{}.check("union.Declare5")
	return Decl5[T0, T1, T2, T3, T4]{declared: true}
}

func (d Decl5[T0, T1, T2, T3, T4]) check(op string) {
	if d.declared {
		return
	}
	mustDistinct(op,
		reflect.TypeFor[T0](),
		reflect.TypeFor[T1](),
		reflect.TypeFor[T2](),
		reflect.TypeFor[T3](),
		reflect.TypeFor[T4]())
}

func (d Decl5[T0, T1, T2, T3, T4]) Alt0(v T0) Of5[T0, T1, T2, T3, T4] {
	d.check("union.Decl5.Alt0")
	return Of5[T0, T1, T2, T3, T4]{c: cell{index: 0, value: v}}
}

func (d Decl5[T0, T1, T2, T3, T4]) Alt1(v T1) Of5[T0, T1, T2, T3, T4] {
	d.check("union.Decl5.Alt1")
	return Of5[T0, T1, T2, T3, T4]{c: cell{index: 1, value: v}}
}

func (d Decl5[T0, T1, T2, T3, T4]) Alt2(v T2) Of5[T0, T1, T2, T3, T4] {
	d.check("union.Decl5.Alt2")
	return Of5[T0, T1, T2, T3, T4]{c: cell{index: 2, value: v}}
}

func (d Decl5[T0, T1, T2, T3, T4]) Alt3(v T3) Of5[T0, T1, T2, T3, T4] {
	d.check("union.Decl5.Alt3")
	return Of5[T0, T1, T2, T3, T4]{c: cell{index: 3, value: v}}
}

func (d Decl5[T0, T1, T2, T3, T4]) Alt4(v T4) Of5[T0, T1, T2, T3, T4] {
	d.check("union.Decl5.Alt4")
	return Of5[T0, T1, T2, T3, T4]{c: cell{index: 4, value: v}}
}

func (u Of5[T0, T1, T2, T3, T4]) Index() int {
	return u.c.index
}

func (Of5[T0, T1, T2, T3, T4]) Arity() int {
	return 5
}

func (u Of5[T0, T1, T2, T3, T4]) Value() any {
	return boxed[T0](u.c)
}

// Equal compares discriminants first and payloads only when they match.
// Payloads are compared with reflect.DeepEqual, so a payload holding a
// non-nil func is never equal to anything, itself included.
func (u Of5[T0, T1, T2, T3, T4]) Equal(other Of5[T0, T1, T2, T3, T4]) bool {
	return equal(u, other)
}

func (u Of5[T0, T1, T2, T3, T4]) String() string {
	return format(u)
}

func (Of5[T0, T1, T2, T3, T4]) alternative(i int) reflect.Type {
	switch i {
	case 0:
		return reflect.TypeFor[T0]()
	case 1:
		return reflect.TypeFor[T1]()
	case 2:
		return reflect.TypeFor[T2]()
	case 3:
		return reflect.TypeFor[T3]()
	case 4:
		return reflect.TypeFor[T4]()
	}
	return nil
}

// Cases5 is a handler set for Of5. It is built by On5, which requires a
// handler for every alternative, or by Partial5, which does not.
type Cases5[T0, T1, T2, T3, T4, R any] struct {
	h0       func(T0) R
	h1       func(T1) R
	h2       func(T2) R
	h3       func(T3) R
	h4       func(T4) R
	fallback func(any) R
	sealed   bool
}

// On5 builds an exhaustive handler set: one handler per alternative, in
// declaration order. Leaving one out does not compile; passing nil panics here
// rather than at dispatch.
func On5[T0, T1, T2, T3, T4, R any](h0 func(T0) R, h1 func(T1) R, h2 func(T2) R, h3 func(T3) R, h4 func(T4) R) Cases5[T0, T1, T2, T3, T4, R] {
	mustHandlers("union.On5", h0 != nil, h1 != nil, h2 != nil, h3 != nil, h4 != nil)
	return Cases5[T0, T1, T2, T3, T4, R]{h0: h0, h1: h1, h2: h2, h3: h3, h4: h4, sealed: true}
}

// Partial5 builds a handler set with a catch-all. Alternatives without a
// Case handler go to fallback. This gives up the compile-time exhaustiveness
// of On5 and is meant for handlers that genuinely treat several
// alternatives alike.
func Partial5[T0, T1, T2, T3, T4, R any](fallback func(any) R) Cases5[T0, T1, T2, T3, T4, R] {
	mustHandlers("union.Partial5", fallback != nil)
	return Cases5[T0, T1, T2, T3, T4, R]{fallback: fallback, sealed: true}
}

func (cs Cases5[T0, T1, T2, T3, T4, R]) Case0(h func(T0) R) Cases5[T0, T1, T2, T3, T4, R] {
	mustHandlers("Cases5.Case0", h != nil)
	cs.h0 = h
	return cs
}

func (cs Cases5[T0, T1, T2, T3, T4, R]) Case1(h func(T1) R) Cases5[T0, T1, T2, T3, T4, R] {
	mustHandlers("Cases5.Case1", h != nil)
	cs.h1 = h
	return cs
}

func (cs Cases5[T0, T1, T2, T3, T4, R]) Case2(h func(T2) R) Cases5[T0, T1, T2, T3, T4, R] {
	mustHandlers("Cases5.Case2", h != nil)
	cs.h2 = h
	return cs
}

func (cs Cases5[T0, T1, T2, T3, T4, R]) Case3(h func(T3) R) Cases5[T0, T1, T2, T3, T4, R] {
	mustHandlers("Cases5.Case3", h != nil)
	cs.h3 = h
	return cs
}

func (cs Cases5[T0, T1, T2, T3, T4, R]) Case4(h func(T4) R) Cases5[T0, T1, T2, T3, T4, R] {
	mustHandlers("Cases5.Case4", h != nil)
	cs.h4 = h
	return cs
}

// Match invokes the one handler for the active alternative of u.
func (cs Cases5[T0, T1, T2, T3, T4, R]) Match(u Of5[T0, T1, T2, T3, T4]) R {
	if !cs.sealed {
		unsealed("union.Match5")
	}
	v := u.Value()
	switch u.c.index {
	case 0:
		return dispatch(cs.h0, cs.fallback, v)
	case 1:
		return dispatch(cs.h1, cs.fallback, v)
	case 2:
		return dispatch(cs.h2, cs.fallback, v)
	case 3:
		return dispatch(cs.h3, cs.fallback, v)
	case 4:
		return dispatch(cs.h4, cs.fallback, v)
	}
	panic(outOfRange("union.Match5", u.c.index))
}

func Match5[T0, T1, T2, T3, T4, R any](u Of5[T0, T1, T2, T3, T4], cs Cases5[T0, T1, T2, T3, T4, R]) R {
	return cs.Match(u)
}

// Visit5 is Match5 for handlers without a result.
func Visit5[T0, T1, T2, T3, T4 any](u Of5[T0, T1, T2, T3, T4], h0 func(T0), h1 func(T1), h2 func(T2), h3 func(T3), h4 func(T4)) {
	On5(discard(h0), discard(h1), discard(h2), discard(h3), discard(h4)).Match(u)
}

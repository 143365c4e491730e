package union

import "reflect"

// Of4 holds exactly one value of T0, T1, T2 or T3.
// The zero value holds the zero value of T0.
type Of4[T0, T1, T2, T3 any] struct {
	c cell
}

// Decl4 holds the constructors of Of4[T0, T1, T2, T3]. Get one from Declare4.
// A Decl4 that did not come from Declare4 repeats the distinctness
// check on every construction.
type Decl4[T0, T1, T2, T3 any] struct {
	declared bool
}

// Declare4 checks that the alternatives are distinct types and returns
// their constructors. Duplicates panic, so declare unions in package-level
// vars where the check runs at init.
func Declare4[T0, T1, T2, T3 any]() Decl4[T0, T1, T2, T3] {
	Decl4[T0, T1, T2, T3]{}.check("union.Declare4")
	return Decl4[T0, T1, T2, T3]{declared: true}
}

func (d Decl4[T0, T1, T2, T3]) check(op string) {
	if d.declared {
		return
	}
	mustDistinct(op,
		reflect.TypeFor[T0](),
		reflect.TypeFor[T1](),
		reflect.TypeFor[T2](),
		reflect.TypeFor[T3]())
}

func (d Decl4[T0, T1, T2, T3]) Alt0(v T0) Of4[T0, T1, T2, T3] {
	d.check("union.Decl4.Alt0")
	return Of4[T0, T1, T2, T3]{c: cell{index: 0, value: v}}
}

func (d Decl4[T0, T1, T2, T3]) Alt1(v T1) Of4[T0, T1, T2, T3] {
	d.check("union.Decl4.Alt1")
	return Of4[T0, T1, T2, T3]{c: cell{index: 1, value: v}}
}

func (d Decl4[T0, T1, T2, T3]) Alt2(v T2) Of4[T0, T1, T2, T3] {
	d.check("union.Decl4.Alt2")
	return Of4[T0, T1, T2, T3]{c: cell{index: 2, value: v}}
}

func (d Decl4[T0, T1, T2, T3]) Alt3(v T3) Of4[T0, T1, T2, T3] {
	d.check("union.Decl4.Alt3")
	return Of4[T0, T1, T2, T3]{c: cell{index: 3, value: v}}
}

func (u Of4[T0, T1, T2, T3]) Index() int {
	return u.c.index
}

func (Of4[T0, T1, T2, T3]) Arity() int {
	return 4
}

func (u Of4[T0, T1, T2, T3]) Value() any {
	return boxed[T0](u.c)
}

// Equal compares discriminants first and payloads only when they match.
// Payloads are compared with reflect.DeepEqual, so a payload holding a
// non-nil func is never equal to anything, itself included.
func (u Of4[T0, T1, T2, T3]) Equal(other Of4[T0, T1, T2, T3]) bool {
	return equal(u, other)
}

func (u Of4[T0, T1, T2, T3]) String() string {
	return format(u)
}

func (Of4[T0, T1, T2, T3]) alternative(i int) reflect.Type {
	switch i {
	case 0:
		return reflect.TypeFor[T0]()
	case 1:
		return reflect.TypeFor[T1]()
	case 2:
		return reflect.TypeFor[T2]()
	case 3:
		return reflect.TypeFor[T3]()
	}
	return nil
}

// Cases4 is a handler set for Of4. It is built by On4, which requires a
// handler for every alternative, or by Partial4, which does not.
type Cases4[T0, T1, T2, T3, R any] struct {
	h0       func(T0) R
	h1       func(T1) R
	h2       func(T2) R
	h3       func(T3) R
	fallback func(any) R
	sealed   bool
}

// On4 builds an exhaustive handler set: one handler per alternative, in
// declaration order. Leaving one out does not compile; passing nil panics here
// rather than at dispatch.
func On4[T0, T1, T2, T3, R any](h0 func(T0) R, h1 func(T1) R, h2 func(T2) R, h3 func(T3) R) Cases4[T0, T1, T2, T3, R] {
	mustHandlers("union.On4", h0 != nil, h1 != nil, h2 != nil, h3 != nil)
	return Cases4[T0, T1, T2, T3, R]{h0: h0, h1: h1, h2: h2, h3: h3, sealed: true}
}

// Partial4 builds a handler set with a catch-all. Alternatives without a
// Case handler go to fallback. This gives up the compile-time exhaustiveness
// of On4 and is meant for handlers that genuinely treat several
// alternatives alike.
func Partial4[T0, T1, T2, T3, R any](fallback func(any) R) Cases4[T0, T1, T2, T3, R] {
	mustHandlers("union.Partial4", fallback != nil)
	return Cases4[T0, T1, T2, T3, R]{fallback: fallback, sealed: true}
}

func (cs Cases4[T0, T1, T2, T3, R]) Case0(h func(T0) R) Cases4[T0, T1, T2, T3, R] {
	mustHandlers("Cases4.Case0", h != nil)
	cs.h0 = h
	return cs
}

func (cs Cases4[T0, T1, T2, T3, R]) Case1(h func(T1) R) Cases4[T0, T1, T2, T3, R] {
	mustHandlers("Cases4.Case1", h != nil)
	cs.h1 = h
	return cs
}

func (cs Cases4[T0, T1, T2, T3, R]) Case2(h func(T2) R) Cases4[T0, T1, T2, T3, R] {
	mustHandlers("Cases4.Case2", h != nil)
	cs.h2 = h
	return cs
}

func (cs Cases4[T0, T1, T2, T3, R]) Case3(h func(T3) R) Cases4[T0, T1, T2, T3, R] {
	mustHandlers("Cases4.Case3", h != nil)
	cs.h3 = h
	return cs
}

// Match invokes the one handler for the active alternative of u.
func (cs Cases4[T0, T1, T2, T3, R]) Match(u Of4[T0, T1, T2, T3]) R {
	if !cs.sealed {
		unsealed("union.Match4")
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
	}
	panic(outOfRange("union.Match4", u.c.index))
}

func Match4[T0, T1, T2, T3, R any](u Of4[T0, T1, T2, T3], cs Cases4[T0, T1, T2, T3, R]) R {
	return cs.Match(u)
}

// Visit4 is Match4 for handlers without a result.
func Visit4[T0, T1, T2, T3 any](u Of4[T0, T1, T2, T3], h0 func(T0), h1 func(T1), h2 func(T2), h3 func(T3)) {
	On4(discard(h0), discard(h1), discard(h2), discard(h3)).Match(u)
}

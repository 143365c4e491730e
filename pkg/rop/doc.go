// Package rop holds the value types of the module: Result[T] for operations
// that either succeed with a value or fail with an error, and Option[T] for
// values that may be absent.
//
// Both are plain values. Combinators never mutate their input; they return
// a new Result or Option:
// - Success/Fail/Cancel/Try: construct a Result[T]
// - AndThen/Transform/OrElse: chain, map and recover, short-circuiting on failure
// - Some/None: construct an Option[T]
// - OptionAndThen/OptionTransform: the same chaining over Option
//
// Value and UnwrapErr are forced unwraps. Calling them on the wrong state
// panics with a *ContractError instead of returning a zero value.
package rop

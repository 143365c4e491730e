// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. They are the core rop combinators with a context threaded
// through, for pipelines whose steps need one.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out] (rop.AndThen)
// - Map/DoubleMap: transform successful values (rop.Transform)
// - Try: call a function (Out, error) and convert error to failure
// - Recover: attempt recovery from a failure (Result.OrElse)
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
//
// Switch, Map and Try turn a successful input into a cancellation when the
// context is already done.
package solo

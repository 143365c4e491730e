package rop

import (
	"errors"
	"fmt"
)

// Result holds either a success value or an error, never both.
// The zero value is a success holding the zero value of T.
type Result[T any] struct {
	result T
	err    error
}

func Success[T any](r T) Result[T] {
	return Result[T]{result: r}
}

// Fail builds a failed Result. A nil err is a programming error and panics.
func Fail[T any](err error) Result[T] {
	if err == nil {
		Violation("rop.Fail", ErrNilFailure, nil)
	}
	return Result[T]{err: err}
}

func Failf[T any](format string, args ...any) Result[T] {
	return Fail[T](fmt.Errorf(format, args...))
}

// Cancel builds a failed Result that also reports IsCancel.
// The error message is kept as is.
func Cancel[T any](err error) Result[T] {
	if err == nil {
		err = ErrCancelled
	}
	if !errors.Is(err, ErrCancelled) {
		err = cancelError{err: err}
	}
	return Result[T]{err: err}
}

// CancelFrom carries the failure of from over to a Result of another type.
// It must only be called on a failed Result.
func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	if from.err == nil {
		Violation("rop.CancelFrom", ErrNoError, nil)
	}
	return Result[Out]{err: from.err}
}

// Try lifts a (value, error) pair.
func Try[T any](r T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(r)
}

// Result returns the success value without checking, or the zero value of T
// on failure. Prefer Value or ValueOr outside of pipelines.
func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// HasValue is an alias of IsSuccess.
func (r Result[T]) HasValue() bool {
	return r.err == nil
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

func (r Result[T]) IsCancel() bool {
	return r.err != nil && IsCancellationError(r.err)
}

// Value returns the success value and panics if r is a failure.
func (r Result[T]) Value() T {
	if r.err != nil {
		Violation("Result.Value", ErrNoValue, r.err)
	}
	return r.result
}

// UnwrapErr returns the error and panics if r is a success.
func (r Result[T]) UnwrapErr() error {
	if r.err == nil {
		Violation("Result.UnwrapErr", ErrNoError, nil)
	}
	return r.err
}

func (r Result[T]) ValueOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.result
}

func (r Result[T]) ValueOrElse(onError func(err error) T) T {
	if r.err != nil {
		return onError(r.err)
	}
	return r.result
}

func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}

// Option drops the error.
func (r Result[T]) Option() Option[T] {
	if r.err != nil {
		return None[T]()
	}
	return Some(r.result)
}

// AndThen is the same-type form of the package level AndThen.
func (r Result[T]) AndThen(onSuccess func(T) Result[T]) Result[T] {
	return AndThen(r, onSuccess)
}

// Transform is the same-type form of the package level Transform.
func (r Result[T]) Transform(onSuccess func(T) T) Result[T] {
	return Transform(r, onSuccess)
}

// OrElse runs onError on failure and returns whatever it produces.
// Successful results are returned untouched.
func (r Result[T]) OrElse(onError func(err error) Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return onError(r.err)
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.result)
}

// AndThen feeds the success value into onSuccess and returns its Result
// directly. Failures pass through with their error unchanged and onSuccess
// is not called.
func AndThen[In, Out any](input Result[In], onSuccess func(In) Result[Out]) Result[Out] {
	if input.err != nil {
		return Result[Out]{err: input.err}
	}
	return onSuccess(input.result)
}

// Transform maps the success value. Failures pass through unchanged.
func Transform[In, Out any](input Result[In], onSuccess func(In) Out) Result[Out] {
	if input.err != nil {
		return Result[Out]{err: input.err}
	}
	return Success(onSuccess(input.result))
}

// TransformError maps the error of a failed Result. A nil mapped error
// is a programming error.
func TransformError[T any](input Result[T], onError func(err error) error) Result[T] {
	if input.err == nil {
		return input
	}
	return Fail[T](onError(input.err))
}

func Flatten[T any](input Result[Result[T]]) Result[T] {
	if input.err != nil {
		return Result[T]{err: input.err}
	}
	return input.result
}

// Collect returns all success values, or the first failure in order.
func Collect[T any](inputs []Result[T]) Result[[]T] {
	out := make([]T, 0, len(inputs))
	for _, in := range inputs {
		if in.err != nil {
			return Result[[]T]{err: in.err}
		}
		out = append(out, in.result)
	}
	return Success(out)
}

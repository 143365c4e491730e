package chain

import (
	"context"

	"github.com/ib-77/oxide/pkg/rop"
	"github.com/ib-77/oxide/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining.
// Every method returns a new Chain; the receiver is never modified.
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Start(ctx, rop.Success(value))
}

// FromTry creates a new chain from a (value, error) pair
func FromTry[T any](ctx context.Context, value T, err error) Chain[T] {
	return Start(ctx, rop.Try(value, err))
}

// Result returns the underlying rop.Result
func (c Chain[T]) Result() rop.Result[T] {
	return c.result
}

func (c Chain[T]) ValueOr(def T) T {
	return c.result.ValueOr(def)
}

// Then composes functions that already return rop.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, result: solo.Switch(c.ctx, c.result, onSuccess)}
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, result: solo.Try(c.ctx, c.result, try)}
}

// Map transforms the successful value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, result: solo.Map(c.ctx, c.result, onSuccess)}
}

// OrElse attempts recovery from a failure
func (c Chain[T]) OrElse(onError func(ctx context.Context, err error) rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, result: solo.Recover(c.ctx, c.result, onError)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	switch {
	case c.result.IsSuccess():
		if onSuccess != nil {
			onSuccess(c.ctx, c.result.Result())
		}
	case onFailure != nil:
		onFailure(c.ctx, c.result.Err())
	}
	return c
}

// To switches the chain to another value type
func To[T, U any](c Chain[T], onSuccess func(context.Context, T) rop.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, result: solo.Switch(c.ctx, c.result, onSuccess)}
}

// MapTo transforms the successful value into another type
func MapTo[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, result: solo.Map(c.ctx, c.result, onSuccess)}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}

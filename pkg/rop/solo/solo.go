package solo

import (
	"context"
	"errors"

	"github.com/ib-77/oxide/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

// interrupted turns a still successful input into a cancellation once ctx is done.
func interrupted[T any](ctx context.Context, input rop.Result[T]) rop.Result[T] {
	if input.IsSuccess() && ctx.Err() != nil {
		return rop.Cancel[T](ctx.Err())
	}
	return input
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	return Switch(ctx, input, func(ctx context.Context, in T) rop.Result[T] {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return rop.Fail[T](errors.New(errMsg))
		}
		return rop.Success(in)
	})
}

// ValidateAll runs every validator against the same input. With
// breakOnError it stops at the first failure; otherwise the failures of all
// validators are joined in order. Validators never see each other's output.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || ctx.Err() != nil || input.IsFailure() {
		return input
	}

	var errs []error
	for _, validate := range inputsF {
		if ctx.Err() != nil {
			return rop.Cancel[T](ctx.Err())
		}

		res := validate(ctx, input)
		if res.IsSuccess() {
			continue
		}
		if breakOnError {
			return res
		}
		errs = append(errs, rop.GetErrors(res.Err())...)
	}

	if len(errs) > 0 {
		return rop.Fail[T](errors.Join(errs...))
	}
	return input
}

// Switch is rop.AndThen with a context.
func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	input = interrupted(ctx, input)
	return rop.AndThen(input, func(r In) rop.Result[Out] {
		return onSuccess(ctx, r)
	})
}

// Map is rop.Transform with a context.
func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	input = interrupted(ctx, input)
	return rop.Transform(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

// Recover is Result.OrElse with a context. Cancellations are not recovered.
func Recover[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, err error) rop.Result[T]) rop.Result[T] {

	if input.IsCancel() {
		return input
	}
	return input.OrElse(func(err error) rop.Result[T] {
		return onError(ctx, err)
	})
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r rop.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Result[T] {

	switch {
	case input.IsSuccess():
		onSuccess(ctx, input.Result())
	case input.IsCancel():
		onCancel(ctx, input.Err())
	default:
		onError(ctx, input.Err())
	}

	return input
}

// DoubleMap maps success like Map and reports failures to onError or
// onCancel. The failure itself is kept.
func DoubleMap[In any, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}

	if input.IsCancel() {
		onCancel(ctx, input.Err())
	} else {
		onError(ctx, input.Err())
	}

	return rop.CancelFrom[In, Out](input)
}

// Try calls a (value, error) function on success.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return Switch(ctx, input, func(ctx context.Context, r In) rop.Result[Out] {
		out, err := onTryExecute(ctx, r)
		return rop.Try(out, err)
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	return Switch(ctx, input, func(ctx context.Context, in T) rop.Result[T] {
		if err := maybeErr(ctx, in); err != nil {
			return rop.Fail[T](err)
		}
		return input
	})
}

// Finally collapses any outcome that can report cancellation into one value.
func Finally[In, Out any](ctx context.Context, input rop.WithCancel[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	switch {
	case input.IsSuccess():
		return onSuccess(ctx, input.Result())
	case input.IsCancel():
		return onCancel(ctx, input.Err())
	default:
		return onError(ctx, input.Err())
	}
}

func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if ctx.Err() != nil {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if ctx.Err() != nil {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}

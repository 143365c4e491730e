package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/oxide/pkg/rop"
)

var errDivisionByZero = errors.New("Division by zero")

func divide(_ context.Context, a, b int) rop.Result[int] {
	if b == 0 {
		return rop.Fail[int](errDivisionByZero)
	}
	return rop.Success(a / b)
}

func by(b int) func(ctx context.Context, a int) rop.Result[int] {
	return func(ctx context.Context, a int) rop.Result[int] { return divide(ctx, a, b) }
}

func TestStart_Result(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, rop.Success(10)).Result()
	if !out.IsSuccess() || out.Result() != 10 {
		t.Fatalf("expected success with 10, got success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}

	out = FromValue(ctx, 7).Result()
	if !out.IsSuccess() || out.Result() != 7 {
		t.Fatalf("expected success with 7, got success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}

	v, err := strconv.Atoi("x")
	bad := FromTry(ctx, v, err).Result()
	if bad.IsSuccess() {
		t.Fatalf("expected failure from FromTry, got %v", bad)
	}
}

func TestDividePipeline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 84).
		Then(by(2)).
		Then(by(3)).
		Map(func(ctx context.Context, v int) int { return v * 2 }).
		Result()
	if !out.IsSuccess() || out.Result() != 28 {
		t.Fatalf("expected success with 28, got %v", out)
	}

	recovered := FromValue(ctx, 84).
		Then(by(0)).
		OrElse(func(ctx context.Context, err error) rop.Result[int] { return rop.Success(0) }).
		ValueOr(-1)
	if recovered != 0 {
		t.Fatalf("expected 0 after recovery, got %d", recovered)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := Start(ctx, rop.Fail[int](errors.New("boom"))).
		Then(func(ctx context.Context, v int) rop.Result[int] {
			called = true
			return rop.Success(v + 1)
		}).
		Map(func(ctx context.Context, v int) int {
			called = true
			return v
		}).
		Result()

	if called {
		t.Fatalf("steps must not run after a failure")
	}
	if out.IsSuccess() || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 4).
		ThenTry(func(ctx context.Context, v int) (int, error) { return v * v, nil }).
		Result()
	if out.Result() != 16 {
		t.Fatalf("expected 16, got %v", out)
	}

	out = FromValue(ctx, 4).
		ThenTry(func(ctx context.Context, v int) (int, error) { return 0, errors.New("try-error") }).
		Result()
	if out.IsSuccess() || out.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got %v", out)
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sCalled, fCalled := false, false
	onSuccess := func(ctx context.Context, v int) { sCalled = true }
	onFailure := func(ctx context.Context, err error) { fCalled = true }

	FromValue(ctx, 11).Ensure(onSuccess, onFailure)
	if !sCalled || fCalled {
		t.Fatalf("expected success side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	sCalled, fCalled = false, false
	Start(ctx, rop.Fail[int](errors.New("bad"))).Ensure(onSuccess, onFailure)
	if sCalled || !fCalled {
		t.Fatalf("expected failure side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	out := FromValue(ctx, 1).Ensure(nil, nil).Result()
	if out.Result() != 1 {
		t.Fatalf("expected unchanged success result, got %v", out)
	}
}

func TestToAndMapTo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := MapTo(FromValue(ctx, 5), func(ctx context.Context, v int) string { return "n:" + strconv.Itoa(v) })
	if s.Result().Result() != "n:5" {
		t.Fatalf("expected 'n:5', got %v", s.Result())
	}

	n := To(FromValue(ctx, "12"), func(ctx context.Context, v string) rop.Result[int] {
		return rop.Try(strconv.Atoi(v))
	})
	if n.Result().Result() != 12 {
		t.Fatalf("expected 12, got %v", n.Result())
	}
}

func TestFinally_SuccessFailureCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	collapse := func(c Chain[int]) string {
		return Finally(c,
			func(ctx context.Context, v int) string { return "ok" },
			func(ctx context.Context, err error) string { return "fail" },
			func(ctx context.Context, err error) string { return "cancel" },
		)
	}

	if got := collapse(FromValue(ctx, 2)); got != "ok" {
		t.Fatalf("expected 'ok', got %q", got)
	}
	if got := collapse(Start(ctx, rop.Fail[int](errors.New("e")))); got != "fail" {
		t.Fatalf("expected 'fail', got %q", got)
	}
	if got := collapse(Start(ctx, rop.Cancel[int](errors.New("c")))); got != "cancel" {
		t.Fatalf("expected 'cancel', got %q", got)
	}
}

package calc

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ib-77/oxide/pkg/rop"
)

var ErrDivisionByZero = errors.New("Division by zero")

func Divide(a, b int) rop.Result[int] {
	if b == 0 {
		return rop.Fail[int](ErrDivisionByZero)
	}
	return rop.Success(a / b)
}

// By returns a step that divides its input by b.
func By(b int) func(int) rop.Result[int] {
	return func(a int) rop.Result[int] { return Divide(a, b) }
}

// Scale returns a step that multiplies its input by k.
func Scale(k int) func(int) int {
	return func(v int) int { return v * k }
}

// Pipeline divides a by b, then by then, then scales by k.
// The first failing division short-circuits the rest.
func Pipeline(a, b, then, k int) rop.Result[int] {
	return Divide(a, b).AndThen(By(then)).Transform(Scale(k))
}

// Recover replaces a failure with def.
func Recover(r rop.Result[int], def int) rop.Result[int] {
	return r.OrElse(func(error) rop.Result[int] { return rop.Success(def) })
}

// ParseInts parses every argument and fails on the first bad one.
func ParseInts(args []string) rop.Result[[]int] {
	parsed := make([]rop.Result[int], 0, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		parsed = append(parsed, rop.TransformError(rop.Try(n, err), func(err error) error {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}))
	}
	return rop.Collect(parsed)
}

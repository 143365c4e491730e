package union

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ib-77/oxide/pkg/rop"
)

var (
	// ErrWrongAlternative is raised by MustGet when the requested type is not active.
	ErrWrongAlternative = errors.New("union does not hold the requested alternative")
	// ErrDuplicateAlternative is raised when a declaration lists a type twice.
	ErrDuplicateAlternative = errors.New("alternative declared more than once")
	// ErrMissingHandler is raised when a handler set is built with a nil handler.
	ErrMissingHandler = errors.New("missing handler")
	// ErrUnsealedCases is raised when dispatching on a handler set that was
	// not built by On or Partial.
	ErrUnsealedCases = errors.New("handler set was not built by On or Partial")
)

// Union is implemented by every OfN type of this package and by nothing else.
type Union interface {
	// Index returns the active discriminant in [0, Arity()).
	Index() int
	Arity() int
	// Value returns the active payload boxed in an interface.
	Value() any
	alternative(i int) reflect.Type
}

// cell is the storage shared by every arity: the discriminant and the single
// live payload.
type cell struct {
	index int
	value any
}

func payload[T any](v any) T {
	t, _ := v.(T)
	return t
}

// boxed returns the active payload, materialising the zero value of the
// first alternative for a zero union.
func boxed[T0 any](c cell) any {
	if c.value == nil && c.index == 0 {
		var zero T0
		return zero
	}
	return c.value
}

// Holds reports whether the active alternative of u is exactly T.
// Interface alternatives match only their declared type, not implementations.
func Holds[T any](u Union) bool {
	return u.alternative(u.Index()) == reflect.TypeFor[T]()
}

// GetIf returns the payload when the active alternative is exactly T.
// The payload is a copy; mutating it does not change u. Use a pointer
// alternative when the caller has to modify the stored value.
func GetIf[T any](u Union) rop.Option[T] {
	if !Holds[T](u) {
		return rop.None[T]()
	}
	return rop.Some(payload[T](u.Value()))
}

// MustGet returns the payload of type T and panics when another alternative
// is active.
func MustGet[T any](u Union) T {
	if !Holds[T](u) {
		rop.Violation("union.MustGet",
			ErrWrongAlternative,
			fmt.Errorf("want %v, active %v", reflect.TypeFor[T](), u.alternative(u.Index())))
	}
	return payload[T](u.Value())
}

// Alternatives lists the declared alternative types of u in order.
func Alternatives(u Union) []reflect.Type {
	types := make([]reflect.Type, u.Arity())
	for i := range types {
		types[i] = u.alternative(i)
	}
	return types
}

func equal(a, b Union) bool {
	if a.Index() != b.Index() {
		return false
	}
	return reflect.DeepEqual(a.Value(), b.Value())
}

func format(u Union) string {
	return fmt.Sprintf("%v(%+v)", u.alternative(u.Index()), u.Value())
}

func mustDistinct(op string, types ...reflect.Type) {
	seen := make(map[reflect.Type]int, len(types))
	for i, t := range types {
		if j, ok := seen[t]; ok {
			rop.Violation(op, ErrDuplicateAlternative,
				fmt.Errorf("%v at positions %d and %d", t, j, i))
		}
		seen[t] = i
	}
}

func mustHandlers(op string, present ...bool) {
	for i, ok := range present {
		if !ok {
			rop.Violation(op, ErrMissingHandler, fmt.Errorf("alternative %d", i))
		}
	}
}

func dispatch[T, R any](h func(T) R, fallback func(any) R, v any) R {
	if h != nil {
		return h(payload[T](v))
	}
	return fallback(v)
}

func unsealed(op string) {
	rop.Violation(op, ErrUnsealedCases, nil)
}

func outOfRange(op string, index int) string {
	return fmt.Sprintf("%s: discriminant %d out of range", op, index)
}

func discard[T any](h func(T)) func(T) struct{} {
	if h == nil {
		return nil
	}
	return func(v T) struct{} {
		h(v)
		return struct{}{}
	}
}

package rop

import "fmt"

// Option holds zero or one value of T. The zero value is empty.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPointer returns None for a nil pointer, Some(*p) otherwise.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromComma lifts the result of a comma-ok expression.
func FromComma[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.present
}

// HasValue is an alias of IsSome.
func (o Option[T]) HasValue() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Value returns the held value and panics on an empty Option.
func (o Option[T]) Value() T {
	if !o.present {
		Violation("Option.Value", ErrEmptyOption, nil)
	}
	return o.value
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) ValueOr(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

func (o Option[T]) ValueOrElse(def func() T) T {
	if !o.present {
		return def()
	}
	return o.value
}

// Or returns o when it holds a value and alt otherwise.
func (o Option[T]) Or(alt Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alt
}

func (o Option[T]) OrElse(alt func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alt()
}

// Filter keeps the value only when keep reports true.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	if o.present && keep(o.value) {
		return o
	}
	return None[T]()
}

// AndThen is the same-type form of OptionAndThen.
func (o Option[T]) AndThen(next func(T) Option[T]) Option[T] {
	return OptionAndThen(o, next)
}

// Transform is the same-type form of OptionTransform.
func (o Option[T]) Transform(mapper func(T) T) Option[T] {
	return OptionTransform(o, mapper)
}

// OkOr turns the Option into a Result failing with err when empty.
func (o Option[T]) OkOr(err error) Result[T] {
	if !o.present {
		return Fail[T](err)
	}
	return Success(o.value)
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// OptionAndThen calls next with the held value and returns its Option as is.
// next is not called on an empty Option.
func OptionAndThen[T, U any](o Option[T], next func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}
	return next(o.value)
}

// OptionTransform maps the held value. Empty stays empty.
func OptionTransform[T, U any](o Option[T], mapper func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(mapper(o.value))
}

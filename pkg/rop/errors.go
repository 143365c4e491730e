package rop

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOption is raised when Value is called on an empty Option.
	ErrEmptyOption = errors.New("option is empty")
	// ErrNoValue is raised when Value is called on a failed Result.
	ErrNoValue = errors.New("result holds no value")
	// ErrNoError is raised when UnwrapErr is called on a successful Result.
	ErrNoError = errors.New("result holds no error")
	// ErrNilFailure is raised when a failure is constructed without a cause.
	ErrNilFailure = errors.New("failure without error")
	// ErrCancelled marks failures produced by Cancel.
	ErrCancelled = errors.New("operation cancelled")
)

// ContractError is the panic payload of every forced unwrap in this module.
// It is never returned; recovering it is only useful in tests and at
// process boundaries.
type ContractError struct {
	Op    string
	Err   error
	Cause error
}

func (e *ContractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Err, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ContractError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// Violation panics with a ContractError. Packages built on top of rop use it
// so that every contract failure looks the same to a caller.
func Violation(op string, sentinel, cause error) {
	panic(&ContractError{Op: op, Err: sentinel, Cause: cause})
}

type cancelError struct {
	err error
}

func (e cancelError) Error() string {
	return e.err.Error()
}

func (e cancelError) Unwrap() error {
	return e.err
}

func (e cancelError) Is(target error) bool {
	return target == ErrCancelled
}

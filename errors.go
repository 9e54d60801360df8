package rapp

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code is the numeric error taxonomy every fallible operation in this
// module reports through, matching the upstream library's own
// RAPP_ERR_* contract (spec.md §6.3/§7): a small closed set of
// argument-shape failures, never a domain-specific error per
// operation.
type Code int

const (
	// OK is the zero value; no function returns it as an error.
	OK Code = iota
	ErrNullPointer
	ErrUnalignedPointer
	ErrUnalignedStride
	ErrOutOfRangeDim
	ErrOutOfRangeParam
	ErrOverlap
	ErrUninitialized
)

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case ErrNullPointer:
		return "null pointer"
	case ErrUnalignedPointer:
		return "unaligned pointer"
	case ErrUnalignedStride:
		return "unaligned stride"
	case ErrOutOfRangeDim:
		return "dimension out of range"
	case ErrOutOfRangeParam:
		return "parameter out of range"
	case ErrOverlap:
		return "overlapping buffers"
	case ErrUninitialized:
		return "library not initialized"
	}
	return "unknown rapp error"
}

// Error wraps a Code with the operation and argument that triggered
// it, so callers get a stable numeric code (for programmatic
// handling) and a readable message (for logs) from the same value.
type Error struct {
	Code Code
	Op   string
	Arg  string
}

func (e *Error) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("rapp: %s: %s (%s)", e.Op, e.Code, e.Arg)
	}
	return fmt.Sprintf("rapp: %s: %s", e.Op, e.Code)
}

// newErr builds an *Error and wraps it with github.com/pkg/errors so
// call sites that want a stack trace attached (the ambient error-chain
// convention this module follows, see SPEC_FULL.md §7) get one for
// free via errors.Wrap at the call site.
func newErr(op string, code Code, arg string) error {
	return errors.WithStack(&Error{Code: code, Op: op, Arg: arg})
}

// CodeOf extracts the Code from an error produced by this module, or
// OK if err is nil, or ErrOutOfRangeParam-shaped unknown if err isn't
// one of ours -- callers that only care about the taxonomy should use
// this rather than type-asserting directly, since errors.WithStack
// wraps the concrete *Error.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrOutOfRangeParam
}

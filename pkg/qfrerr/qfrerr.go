// Package qfrerr defines the tagged error kinds surfaced by every parser and
// the register/circuit mutation API.
package qfrerr

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Kind tags the family of a diagnostic.
type Kind int

const (
	LexError Kind = iota
	SyntaxError
	UnknownGate
	UndefinedGate
	UnsupportedControlledForm
	ArgumentArityMismatch
	RegisterSizeMismatch
	InvalidControlTargetOverlap
	DuplicateControl
	UnknownRegister
	RegisterAlreadyExists
	RegisterExtensionIllegal
	InvalidExpression
	UnresolvedIdentifier
	IOError
	CapacityExceeded
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "lex_error"
	case SyntaxError:
		return "syntax_error"
	case UnknownGate:
		return "unknown_gate"
	case UndefinedGate:
		return "undefined_gate"
	case UnsupportedControlledForm:
		return "unsupported_controlled_form"
	case ArgumentArityMismatch:
		return "argument_arity_mismatch"
	case RegisterSizeMismatch:
		return "register_size_mismatch"
	case InvalidControlTargetOverlap:
		return "invalid_control_target_overlap"
	case DuplicateControl:
		return "duplicate_control"
	case UnknownRegister:
		return "unknown_register"
	case RegisterAlreadyExists:
		return "register_already_exists"
	case RegisterExtensionIllegal:
		return "register_extension_illegal"
	case InvalidExpression:
		return "invalid_expression"
	case UnresolvedIdentifier:
		return "unresolved_identifier"
	case IOError:
		return "io_error"
	case CapacityExceeded:
		return "capacity_exceeded"
	default:
		return "unknown_kind"
	}
}

// Error is the tagged, positioned diagnostic every package returns.
type Error struct {
	Kind Kind
	Msg  string
	Line int
	Col  int
	// cause wraps an underlying error (if any) with stack capture via
	// go-faster/errors so a caller can still Unwrap through to it.
	cause error
}

func (e *Error) Error() string {
	if e.Line > 0 || e.Col > 0 {
		return fmt.Sprintf("%s: %s (line %d, col %d)", e.Kind, e.Msg, e.Line, e.Col)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a positionless Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, cause: errors.New(msg)}
}

// Newf builds a positionless Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Kind: kind, Msg: msg, cause: errors.New(msg)}
}

// At attaches line/column position to an Error, as returned from the
// scanner's current token.
func At(kind Kind, line, col int, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Line: line, Col: col, cause: errors.New(msg)}
}

// Atf attaches line/column position with a formatted message.
func Atf(kind Kind, line, col int, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Kind: kind, Msg: msg, Line: line, Col: col, cause: errors.New(msg)}
}

// Wrap tags an existing error with a kind, preserving it as the cause.
func Wrap(kind Kind, cause error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, cause: errors.Wrap(cause, msg)}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

package parse

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of parse error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrUnbalanced indicates a closing bracket without an opener, a
	// closer of the wrong family or an opener that is never closed.
	ErrUnbalanced ErrorCode = iota

	// ErrDanglingWrapper indicates a wrapper tag run such as "v:" with
	// nothing after the colon.
	ErrDanglingWrapper

	// ErrUnknownWrapper indicates a wrapper tag outside the wrapper
	// alphabet.
	ErrUnknownWrapper

	// ErrEmptyArgument indicates an empty segment in an argument list,
	// an empty taproot key or an empty side of a bracket tree.
	ErrEmptyArgument

	// ErrTooDeep indicates nesting beyond MaxDepth.
	ErrTooDeep
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrUnbalanced:      "ErrUnbalanced",
	ErrDanglingWrapper: "ErrDanglingWrapper",
	ErrUnknownWrapper:  "ErrUnknownWrapper",
	ErrEmptyArgument:   "ErrEmptyArgument",
	ErrTooDeep:         "ErrTooDeep",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error lets an ErrorCode be used as an errors.Is target.
func (e ErrorCode) Error() string {
	return e.String()
}

// Error describes a structural problem found while parsing. Pos is the
// byte offset into Expr where the problem was detected.
type Error struct {
	ErrorCode   ErrorCode
	Pos         int
	Expr        string
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Description, e.Pos)
}

// Is reports whether target is the ErrorCode carried by e.
func (e Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.ErrorCode
}

// parseError creates an Error given a set of arguments.
func parseError(c ErrorCode, expr string, pos int, desc string) Error {
	return Error{ErrorCode: c, Pos: pos, Expr: expr, Description: desc}
}

// IsIncomplete reports whether err means the input may still become valid
// once more text is typed, i.e. an opener is still waiting for its closer.
func IsIncomplete(err error) bool {
	var perr Error
	if !errors.As(err, &perr) {
		return false
	}
	return perr.ErrorCode == ErrUnbalanced && perr.Pos >= len(perr.Expr)
}

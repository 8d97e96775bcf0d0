package render

import (
	"errors"
	"fmt"
)

// Sentinel errors for backend failure conditions.
var (
	ErrBackend   = errors.New("render: backend failure")
	ErrNoRoom    = errors.New("render: margins, header and footer leave no room for content")
	ErrNoContent = errors.New("render: document has no content")
)

// Error is a failure of a specific backend operation. It matches ErrBackend
// with errors.Is and unwraps to the underlying cause.
type Error struct {
	Op  string // operation name, e.g. "New", "Flow", "Output"
	Err error  // underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("render.%s: unknown error", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports ErrBackend as a match for every render Error.
func (e *Error) Is(target error) bool {
	return target == ErrBackend
}

// newError creates a new Error wrapping err with operation context.
func newError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}

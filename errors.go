package cvpdf

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lvillar/cvpdf/resume"
)

// Kind classifies a terminal failure.
type Kind string

const (
	KindMissingField Kind = "missing-field"
	KindInvalidInput Kind = "invalid-input"
	KindRender       Kind = "render"
	KindAttachment   Kind = "attachment"
	KindIO           Kind = "io"
)

// Error is a terminal failure of a generation step. It wraps the underlying
// error and names the failure kind and the operation that failed.
type Error struct {
	Kind Kind
	Op   string // operation name, e.g. "Load", "Render", "Write"
	Err  error  // underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cvpdf.%s (%s): %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("cvpdf.%s (%s): unknown error", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates a new Error wrapping err with kind and operation context.
func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the first Error in err's chain, or "" when
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Chain flattens err into its causes, outermost first. Joined errors are
// expanded depth first in order.
func Chain(err error) []error {
	var out []error
	for err != nil {
		out = append(out, err)
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				out = append(out, Chain(e)...)
			}
			break
		}
		err = errors.Unwrap(err)
	}
	return out
}

// loadKind classifies a data loader failure.
func loadKind(err error) Kind {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, resume.ErrMissingField):
		return KindMissingField
	case errors.As(err, &pathErr):
		return KindIO
	default:
		return KindInvalidInput
	}
}

package resume

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned (wrapped) by Parse and Load.
var (
	ErrMissingField = errors.New("resume: required field missing")
	ErrInvalid      = errors.New("resume: invalid document")
)

// MissingFieldError reports required properties absent from one object.
type MissingFieldError struct {
	Path   string   // JSON pointer of the object, "" for the document root
	Fields []string // canonical field names
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("resume: missing required field(s) %s at %s",
		strings.Join(e.Fields, ", "), displayPath(e.Path))
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// InvalidError reports a value that does not fit the expected shape,
// for example a list given as null or a number where text is expected.
type InvalidError struct {
	Path   string
	Reason string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("resume: invalid value at %s: %s", displayPath(e.Path), e.Reason)
}

func (e *InvalidError) Unwrap() error {
	return ErrInvalid
}

func displayPath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

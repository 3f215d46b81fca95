package catalog

import (
	"errors"
	"fmt"
)

// Coded is implemented by errors that carry a catalog code.
type Coded interface {
	ErrorCode() Code
}

// Error is a classified failure: the only shape callers need to render a
// message. Status is the HTTP status when one was received, Detail the
// server's free text explanation if it sent one.
type Error struct {
	Code   Code
	Status int
	Detail string
	Err    error
}

var _ Coded = (*Error)(nil)

// New returns an *Error for a code with no transport context.
func New(code Code) *Error {
	return &Error{Code: code}
}

// Wrap returns an *Error for code caused by err.
func Wrap(code Code, err error) *Error {
	return &Error{Code: code, Err: err}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, Localize(e.Code, English))
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same code, so callers can write
// errors.Is(err, catalog.New(catalog.ProductMinimumExceedsInitial)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func (e *Error) ErrorCode() Code {
	return e.Code
}

// Localize returns the user message for the error in lang.
func (e *Error) Localize(lang Language) string {
	return Localize(e.Code, lang)
}

// CodeOf returns the code carried by err, GenUnknown when there is none.
func CodeOf(err error) Code {
	var c Coded
	if errors.As(err, &c) {
		return c.ErrorCode()
	}
	return GenUnknown
}

// Describe turns any error into a user facing message in lang. Errors
// without a code degrade to the generic unknown error text.
func Describe(err error, lang Language) string {
	if err == nil {
		return ""
	}
	return Localize(CodeOf(err), lang)
}

package errors

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/pkg/errors"
)

// decorationWidth is the column at which descriptions & resolutions are wrapped.
const decorationWidth = 80

// As is a wrapper around the standard library `errors.As`
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is a wrapper around the standard library `errors.Is`
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// WithDecoration returns a generic (i.e. unwrapped / no stack-trace) error, but decorated. Errors that don't explain
// themselves are returned as they are.
func WithDecoration(e error) error {
	var err detailedError
	if !As(e, &err) {
		return e
	}

	vars := templateVariables{
		Title:       err.Error(),
		Type:        err.Type(),
		Description: wordwrap.WrapString(err.Description(), decorationWidth),
		Resolution:  wordwrap.WrapString(err.Resolution(), decorationWidth),
	}
	if vars.Validate() != nil {
		return errors.New(err.Error())
	}

	var buf strings.Builder
	if errorTemplate.Execute(&buf, vars) != nil {
		return errors.New(err.Error())
	}

	return errors.New(buf.String())
}

// WithStack adds a stack trace to an error without doing anything further
func WithStack(err error) error {
	return errors.WithStack(err)
}

// Wrap is similar to 'WithStack', but adds a message to the error. The category of the wrapped error is kept.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Wrapf is similar to 'Wrap', but formats the message
func Wrapf(err error, msg string, a ...any) error {
	return errors.Wrapf(err, msg, a...)
}

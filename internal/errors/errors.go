// Package errors is our internal errors package. It should be used in place of the standard "errors" package,
// "golang.org/x/xerrors", or "fmt.Errorf".
// This package ensures that all errors have a correct category & collect stack-traces.
package errors

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ConfigurationError represent a configuration error. When used, it should ideally also point towards the configuration
// value that caused this error to occur.
type ConfigurationError struct {
	E error
}

// NewConfigurationError returns a new ConfigurationError
func NewConfigurationError(msg string, a ...any) ConfigurationError {
	return ConfigurationError{E: xerrors.Errorf(msg, a...)}
}

// AsConfigurationError checks whether the error is a configuration error
func AsConfigurationError(err error) (ConfigurationError, bool) {
	var e ConfigurationError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ConfigurationError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e ConfigurationError) Unwrap() error {
	return e.E
}

// ExecutionError is an error that was encountered during the execution of a different task. Specifically, this is being
// used to pass the exit code of the supervised sub-process back up to `main`.
type ExecutionError struct {
	E    error
	Code int
}

// NewExecutionError returns a new ExecutionError
func NewExecutionError(code int, msg string, a ...any) ExecutionError {
	return ExecutionError{Code: code, E: xerrors.Errorf(msg, a...)}
}

// AsExecutionError checks whether the error is an execution error.
func AsExecutionError(err error) (ExecutionError, bool) {
	var e ExecutionError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ExecutionError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e ExecutionError) Unwrap() error {
	return e.E
}

// InputError is an error caused by user input
type InputError struct {
	E error
}

// NewInputError returns a new InputError
func NewInputError(msg string, a ...any) InputError {
	return InputError{E: xerrors.Errorf(msg, a...)}
}

// AsInputError checks whether the error is an input error
func AsInputError(err error) (InputError, bool) {
	var e InputError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e InputError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e InputError) Unwrap() error {
	return e.E
}

// InternalError is an internal error. This error type should only be used if an end-user cannot act upon it.
type InternalError struct {
	E error
}

// NewInternalError returns a new InternalError
func NewInternalError(msg string, a ...any) InternalError {
	return InternalError{E: xerrors.Errorf(msg, a...)}
}

// AsInternalError checks whether the error is an internal error
func AsInternalError(err error) (InternalError, bool) {
	var e InternalError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e InternalError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e InternalError) Unwrap() error {
	return e.E
}

// SpawnError is returned when a sub-process could not be started at all, e.g. because the executable doesn't exist or
// isn't executable. It is deliberately distinct from an ExecutionError: the command never ran, so there is no exit
// code to report.
type SpawnError struct {
	E       error
	Command string
}

// NewSpawnError returns a new SpawnError for the given command. Use "%w" in `msg` to keep the underlying OS error
// inspectable with `Is` & `As`.
func NewSpawnError(command string, msg string, a ...any) SpawnError {
	return SpawnError{Command: command, E: xerrors.Errorf(msg, a...)}
}

// AsSpawnError checks whether the error is a spawn error
func AsSpawnError(err error) (SpawnError, bool) {
	var e SpawnError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e SpawnError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e SpawnError) Unwrap() error {
	return e.E
}

// Type returns the human-readable category of this error
func (e SpawnError) Type() string {
	return "Spawn Error"
}

// Description explains what went wrong
func (e SpawnError) Description() string {
	return fmt.Sprintf("The command %q could not be started by the operating system. It never ran, so it has no exit "+
		"code of its own.", e.Command)
}

// Resolution explains how to fix it
func (e SpawnError) Resolution() string {
	return fmt.Sprintf("Please make sure that %q exists, is executable, and can be found in one of the directories "+
		"listed in your PATH.", e.Command)
}

// SystemError is returned when the CLI encountered a system error. This is most likely an error while writing to one
// of the standard streams.
type SystemError struct {
	E error
}

// NewSystemError returns a new SystemError
func NewSystemError(msg string, a ...any) SystemError {
	return SystemError{E: xerrors.Errorf(msg, a...)}
}

// AsSystemError checks whether the error is a system error
func AsSystemError(err error) (SystemError, bool) {
	var e SystemError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e SystemError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e SystemError) Unwrap() error {
	return e.E
}

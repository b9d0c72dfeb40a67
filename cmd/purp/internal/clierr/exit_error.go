package clierr

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitSuccess = 0
	// ExitFailure means an external step ran and failed.
	ExitFailure = 1
	// ExitUsage covers unknown tasks, bad flags and invalid configuration.
	ExitUsage = 2
	// ExitEnv means an external tool could not be launched.
	ExitEnv = 3
)

type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError is an error that carries an explicit process exit code.
// It supports wrapping via Unwrap so errors.Is/As work as expected.
type ExitError struct {
	code  int
	msg   string
	cause error
	quiet bool
}

func (e *ExitError) Error() string {
	// Keep this stable and user-facing; don't include code here.
	if e.cause == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

// Unwrap enables errors.Is/As to traverse the underlying cause.
func (e *ExitError) Unwrap() error { return e.cause }

// Quiet reports whether the user was already told about this failure.
func (e *ExitError) Quiet() bool { return e.quiet }

// New creates an ExitError with a message.
func New(code int, msg string) error {
	return &ExitError{code: normalize(code), msg: msg}
}

// Wrap creates an ExitError that wraps an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// Newf is a formatted variant.
func Newf(code int, format string, args ...any) error {
	return &ExitError{code: normalize(code), msg: fmt.Sprintf(format, args...)}
}

// Silent wraps cause for a failure that has already been reported on stdout.
// main sets the exit code but prints nothing more.
func Silent(code int, cause error) error {
	return &ExitError{code: normalize(code), cause: cause, quiet: true}
}

// IsQuiet reports whether err (or anything it wraps) is a Silent error.
func IsQuiet(err error) bool {
	var e *ExitError
	return errors.As(err, &e) && e.quiet
}

// ExitCodeOf extracts an exit code from any error, defaulting to 1.
// This keeps main() dumb and avoids duplicating errors.As logic everywhere.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitFailure
}

func normalize(code int) int {
	// Exit code 0 means success; errors should never be 0.
	if code <= 0 {
		return ExitFailure
	}
	return code
}

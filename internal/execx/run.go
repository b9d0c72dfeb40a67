// Package execx spawns the external tools purp drives and reports how they exited.
package execx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Result is the exit status of a finished process.
type Result struct {
	Code int
}

// Success reports whether the process exited with status 0.
func (r Result) Success() bool { return r.Code == 0 }

// Executor runs a process to completion.
// A non-zero exit is not an error; err is set only when the process could not be run at all.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// LaunchError means the tool was never started (missing binary, permission denied, ...).
type LaunchError struct {
	Tool string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("error launching `%s`: %v", e.Tool, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// OSExecutor runs processes with os/exec. Nil streams inherit the parent's.
type OSExecutor struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSExecutor returns an executor attached to the current terminal.
func NewOSExecutor() *OSExecutor {
	return &OSExecutor{}
}

func (e *OSExecutor) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir
	cmd.Stdin = orReader(e.Stdin, os.Stdin)
	cmd.Stdout = orWriter(e.Stdout, os.Stdout)
	cmd.Stderr = orWriter(e.Stderr, os.Stderr)

	err := cmd.Run()
	if err == nil {
		return Result{Code: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code <= 0 {
			// Killed by a signal.
			code = 1
		}
		return Result{Code: code}, nil
	}
	return Result{Code: -1}, &LaunchError{Tool: name, Err: err}
}

// Command renders name and args as a single line for logs.
func Command(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

func orReader(r, def io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return def
}

func orWriter(w, def io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return def
}

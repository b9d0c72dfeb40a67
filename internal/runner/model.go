package runner

import (
	"errors"
	"fmt"
)

// StepStatus represents the outcome of one external invocation.
type StepStatus string

const (
	StatusPass StepStatus = "pass"
	StatusFail StepStatus = "fail"
	StatusSkip StepStatus = "skip"
)

// Step names used in errors and logs.
const (
	StepBuild  = "build"
	StepRun    = "run"
	StepBundle = "bundle"
)

// BuildOptions configures `purp build`.
type BuildOptions struct {
	DependenciesOnly bool
}

// TestOptions configures `purp test`.
type TestOptions struct {
	Main      string
	SkipBuild bool
	// Pattern selects the test sources handed to the build tool.
	Pattern string
	// ExcludeDirs drops matches below these directory names.
	ExcludeDirs []string
}

// RunOptions configures `purp run`.
type RunOptions struct {
	Main      string
	SkipBuild bool
}

// BundleOptions configures `purp bundle`.
type BundleOptions struct {
	Main       string
	Output     string
	SourceMaps bool
	SkipBuild  bool
}

// ErrStepFailed is matched by every StepError.
var ErrStepFailed = errors.New("step failed")

// StepError reports an external tool that ran and exited non-zero.
type StepError struct {
	Step     string
	Tool     string
	ExitCode int
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: `%s` exited with status %d", e.Step, e.Tool, e.ExitCode)
}

func (e *StepError) Is(target error) bool { return target == ErrStepFailed }

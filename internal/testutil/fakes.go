// Package testutil provides fakes for the process and file-finding capabilities.
package testutil

import (
	"context"

	"github.com/bartekus/purp/internal/execx"
)

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []string
}

// FakeExecutor records invocations and answers with canned results per tool name.
// Tools without an entry in Results exit 0.
type FakeExecutor struct {
	Results map[string]execx.Result
	Errors  map[string]error
	Calls   []Call
}

func (f *FakeExecutor) Run(_ context.Context, name string, args ...string) (execx.Result, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: append([]string(nil), args...)})
	if err := f.Errors[name]; err != nil {
		return execx.Result{Code: -1}, err
	}
	return f.Results[name], nil
}

// Fail makes name exit with code.
func (f *FakeExecutor) Fail(name string, code int) *FakeExecutor {
	if f.Results == nil {
		f.Results = map[string]execx.Result{}
	}
	f.Results[name] = execx.Result{Code: code}
	return f
}

// Missing makes name fail to launch.
func (f *FakeExecutor) Missing(name string, err error) *FakeExecutor {
	if f.Errors == nil {
		f.Errors = map[string]error{}
	}
	f.Errors[name] = &execx.LaunchError{Tool: name, Err: err}
	return f
}

// CallsTo returns the recorded invocations of name, in order.
func (f *FakeExecutor) CallsTo(name string) []Call {
	var out []Call
	for _, c := range f.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// StaticFinder returns Paths for every pattern, or Err if set.
type StaticFinder struct {
	Paths    []string
	Err      error
	Patterns []string
}

func (f *StaticFinder) Glob(pattern string) ([]string, error) {
	f.Patterns = append(f.Patterns, pattern)
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]string(nil), f.Paths...), nil
}

package clierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", cause, ExitFailure},
		{"exit error", New(ExitUsage, "bad"), ExitUsage},
		{"wrapped exit error", fmt.Errorf("outer: %w", Wrap(ExitEnv, "launch", cause)), ExitEnv},
		{"zero normalized", New(0, "oops"), ExitFailure},
		{"silent", Silent(ExitFailure, cause), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeOf(tt.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	cause := errors.New("not found")

	assert.Equal(t, "bad", New(ExitUsage, "bad").Error())
	assert.Equal(t, "launch: not found", Wrap(ExitEnv, "launch", cause).Error())
	assert.Equal(t, "not found", Wrap(ExitEnv, "", cause).Error())
	assert.Equal(t, "unknown task \"x\"", Newf(ExitUsage, "unknown task %q", "x").Error())
}

func TestExitError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ExitEnv, "launch", cause)
	assert.True(t, errors.Is(err, cause))
}

func TestIsQuiet(t *testing.T) {
	cause := errors.New("failed")

	assert.True(t, IsQuiet(Silent(ExitFailure, cause)))
	assert.True(t, IsQuiet(fmt.Errorf("ctx: %w", Silent(ExitFailure, cause))))
	assert.False(t, IsQuiet(Wrap(ExitFailure, "x", cause)))
	assert.False(t, IsQuiet(cause))
	assert.False(t, IsQuiet(nil))
}

package testcheck

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner abstracts test command execution for testability.
type Runner interface {
	RunContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// RunContext executes a command and returns its output from both streams.
func (r *RealRunner) RunContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- intentional: test command comes from user config
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunContextFunc func(ctx context.Context, name string, args ...string) (string, string, error)
}

// RunContext calls the mock function.
func (m *MockRunner) RunContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	return m.RunContextFunc(ctx, name, args...)
}

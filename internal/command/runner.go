// Package command runs the external programs the provisioner drives
// (nmcli, rfkill, iw, systemctl, apt-get, python3).
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes a program and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RealRunner implements Runner with os/exec.
// Env entries are appended to the inherited environment of every command.
type RealRunner struct {
	Env []string
}

// Run executes name with args and waits for it to exit.
// A non-zero exit is reported as *Error carrying the exit code and output.
func (r RealRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // program names come from a fixed set
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	if err == nil {
		return out.Bytes(), nil
	}
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return out.Bytes(), &Error{Name: name, Args: args, Code: code, Output: out.String(), Err: err}
}

// Error describes a failed command.
type Error struct {
	Name   string
	Args   []string
	Code   int
	Output string
	Err    error
}

func (e *Error) Error() string {
	line := strings.TrimSpace(strings.Join(append([]string{e.Name}, e.Args...), " "))
	detail := lastLine(e.Output)
	if detail == "" {
		return fmt.Sprintf("%s: %v", line, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", line, e.Err, detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code of a failed command, or -1 when err is not
// a command failure or the program never started.
func ExitCode(err error) int {
	var cmdErr *Error
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return -1
}

// Output returns the captured output of a failed command.
func Output(err error) string {
	var cmdErr *Error
	if errors.As(err, &cmdErr) {
		return cmdErr.Output
	}
	return ""
}

// lastLine returns the last non-empty line of s.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

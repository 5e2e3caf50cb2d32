// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/edgeswarm/swarmprov/internal/command"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// It returns the absolute path of the stub.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return WriteScript(t, dir, name, fmt.Sprintf("exit %d", exitCode))
}

// WriteScript writes an executable /bin/sh script with body and returns its path.
func WriteScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body + "\n")
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// Reply is a scripted response for one command line.
type Reply struct {
	Output string
	Err    error
}

// FakeRunner records every command and answers from scripted replies.
// Replies are keyed by the full command line ("nmcli connection up Hotspot").
// Each key holds a queue; the last reply of a queue repeats once it is reached.
// Commands without a reply succeed with empty output.
type FakeRunner struct {
	mu      sync.Mutex
	replies map[string][]Reply
	Calls   []string
}

// NewFakeRunner returns an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{replies: map[string][]Reply{}}
}

// On queues replies for line.
func (f *FakeRunner) On(line string, replies ...Reply) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[line] = append(f.replies[line], replies...)
	return f
}

// Run implements command.Runner.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, line)
	queue := f.replies[line]
	if len(queue) == 0 {
		return nil, nil
	}
	reply := queue[0]
	if len(queue) > 1 {
		f.replies[line] = queue[1:]
	}
	return []byte(reply.Output), reply.Err
}

// Count returns how many times line was run.
func (f *FakeRunner) Count(line string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, call := range f.Calls {
		if call == line {
			n++
		}
	}
	return n
}

// CommandError builds the error RealRunner returns for a failed command.
func CommandError(line string, code int, output string) error {
	fields := strings.Fields(line)
	return &command.Error{
		Name:   fields[0],
		Args:   fields[1:],
		Code:   code,
		Output: output,
		Err:    fmt.Errorf("exit status %d", code),
	}
}

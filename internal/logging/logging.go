// Package logging renders structured logr entries as timestamped lines.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/edgeswarm/swarmprov/internal/messages"
)

// DefaultLayout is the timestamp layout used when none is configured.
const DefaultLayout = "2006-01-02 15:04:05"

// Options configures a Logger.
type Options struct {
	// Layout is a time layout for the line prefix.
	Layout string
	// Now defaults to time.Now.
	Now func() time.Time
	// Verbosity is the highest V level written.
	Verbosity int
}

type sink struct {
	mu     sync.Mutex
	w      io.Writer
	layout string
	now    func() time.Time
}

func (s *sink) write(prefix, args string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := s.now().Format(s.layout)
	if prefix != "" {
		line += " " + prefix
	}
	// Write errors are dropped: the log is best effort.
	_, _ = fmt.Fprintf(s.w, "%s %s\n", line, args)
}

// New returns a logger writing one timestamped key/value line per entry to w.
func New(w io.Writer, opts Options) logr.Logger {
	s := &sink{w: w, layout: opts.Layout, now: opts.Now}
	if s.layout == "" {
		s.layout = DefaultLayout
	}
	if s.now == nil {
		s.now = time.Now
	}
	return funcr.New(s.write, funcr.Options{Verbosity: opts.Verbosity})
}

// Open appends to the log file at path, creating it if needed, and mirrors
// every line to mirror when it is non-nil. The caller closes the file.
func Open(path string, mirror io.Writer, opts Options) (logr.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return logr.Discard(), nil, fmt.Errorf(messages.LoggingOpenFmt, path, err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf(messages.LoggingOpenFmt, path, err)
	}
	var w io.Writer = file
	if mirror != nil {
		w = io.MultiWriter(file, mirror)
	}
	return New(w, opts), file, nil
}

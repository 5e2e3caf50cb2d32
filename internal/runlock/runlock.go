// Package runlock keeps two provisioning runs from touching the host at once.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"

	"github.com/edgeswarm/swarmprov/internal/messages"
)

// DefaultPath is the lock file used by provisioning runs.
const DefaultPath = "/run/swarmprov.lock"

// ErrHeld reports that another process holds the lock.
var ErrHeld = errors.New("provisioning already in progress")

var flockFn = unix.Flock

const pollEvery = 100 * time.Millisecond

// Lock is a held advisory lock.
type Lock struct {
	file *os.File
}

// Acquire opens or creates path and takes an exclusive flock on it, polling
// for up to wait. A zero wait tries once.
func Acquire(path string, wait time.Duration) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf(messages.RunlockOpenFmt, path, err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf(messages.RunlockOpenFmt, path, err)
	}
	deadline := time.Now().Add(wait)
	for {
		err := flockFn(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return &Lock{file: file}, nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
			_ = file.Close()
			return nil, fmt.Errorf(messages.RunlockAcquireFmt, path, err)
		}
		if !time.Now().Before(deadline) {
			_ = file.Close()
			return nil, fmt.Errorf(messages.RunlockHeldFmt, ErrHeld, path, wait)
		}
		time.Sleep(pollEvery)
	}
}

// Release unlocks and closes the lock file. The file itself is left in place.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	if err := flockFn(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		_ = l.file.Close()
		return err
	}
	return l.file.Close()
}

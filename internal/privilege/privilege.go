// Package privilege checks for root and identifies the operator behind sudo.
package privilege

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/edgeswarm/swarmprov/internal/messages"
)

// ErrNotRoot reports a run without administrative privileges.
var ErrNotRoot = errors.New("swarmprov must be run as root (try sudo)")

// Check returns ErrNotRoot unless geteuid reports uid 0. A nil geteuid
// uses the process's effective uid.
func Check(geteuid func() int) error {
	if geteuid == nil {
		geteuid = unix.Geteuid
	}
	if geteuid() != 0 {
		return ErrNotRoot
	}
	return nil
}

// Operator is the account that invoked swarmprov, before sudo.
type Operator struct {
	Name string
	UID  int
	GID  int
	Home string
	// Sudo is true when the identity came from SUDO_* variables.
	Sudo bool
}

// Env looks up environment variables; os.Getenv satisfies it.
type Env func(key string) string

// Invoker resolves the operator from SUDO_UID, SUDO_GID and SUDO_USER.
// Without them the current user is the operator.
func Invoker(getenv Env, lookup func(name string) (*user.User, error)) (Operator, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if lookup == nil {
		lookup = user.Lookup
	}
	uidText, gidText := getenv("SUDO_UID"), getenv("SUDO_GID")
	if uidText == "" || gidText == "" {
		return current(getenv)
	}
	uid, err := strconv.Atoi(uidText)
	if err != nil {
		return Operator{}, fmt.Errorf(messages.PrivilegeSudoIDFmt, "SUDO_UID", uidText, err)
	}
	gid, err := strconv.Atoi(gidText)
	if err != nil {
		return Operator{}, fmt.Errorf(messages.PrivilegeSudoIDFmt, "SUDO_GID", gidText, err)
	}
	op := Operator{Name: getenv("SUDO_USER"), UID: uid, GID: gid, Sudo: true}
	if op.Name != "" {
		if u, err := lookup(op.Name); err == nil {
			op.Home = u.HomeDir
		}
	}
	if op.Home == "" {
		op.Home = getenv("HOME")
	}
	return op, nil
}

func current(getenv Env) (Operator, error) {
	op := Operator{UID: os.Getuid(), GID: os.Getgid(), Home: getenv("HOME")}
	if u, err := user.Current(); err == nil {
		op.Name = u.Username
		if op.Home == "" {
			op.Home = u.HomeDir
		}
	}
	return op, nil
}

// Chown hands the tree at root to the operator. It is a no-op unless the
// identity came from sudo.
func (o Operator) Chown(root string) error {
	if !o.Sudo {
		return nil
	}
	err := filepath.WalkDir(root, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return os.Lchown(path, o.UID, o.GID)
	})
	if err != nil {
		return fmt.Errorf(messages.PrivilegeChownFmt, root, o.UID, o.GID, err)
	}
	return nil
}

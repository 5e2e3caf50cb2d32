package netif

import (
	"errors"
	"fmt"

	"github.com/edgeswarm/swarmprov/internal/messages"
)

// ErrRename wraps every rename failure. A half-renamed interface is not
// repaired; the caller is expected to stop.
var ErrRename = errors.New("rename interface")

// Renamer gives interfaces their canonical names.
type Renamer struct {
	Sys System
}

// Rename brings name down, renames it to newName and brings it back up,
// recording the new name in snap. It returns false without touching the
// link when the interface already has newName.
func (r Renamer) Rename(snap *Snapshot, name string, newName string) (bool, error) {
	if _, ok := snap.Lookup(name); !ok {
		return false, fmt.Errorf(messages.NetifRenameUnknownFmt, ErrRename, name)
	}
	if name == newName {
		if err := r.Sys.SetUp(name); err != nil {
			return false, fmt.Errorf(messages.NetifRenameSetUpFmt, ErrRename, name, name, err)
		}
		return false, nil
	}
	if _, taken := snap.Lookup(newName); taken {
		return false, fmt.Errorf(messages.NetifRenameTakenFmt, ErrRename, name, newName)
	}
	if err := r.Sys.SetDown(name); err != nil {
		return false, fmt.Errorf(messages.NetifRenameSetDownFmt, ErrRename, name, err)
	}
	if err := r.Sys.SetName(name, newName); err != nil {
		return false, fmt.Errorf(messages.NetifRenameSetNameFmt, ErrRename, name, newName, err)
	}
	if err := r.Sys.SetUp(newName); err != nil {
		return false, fmt.Errorf(messages.NetifRenameSetUpFmt, ErrRename, name, newName, err)
	}
	snap.rename(name, newName)
	return true, nil
}

package netif

import (
	"fmt"
	"sort"
)

// Catalog enumerates the host's interfaces.
type Catalog struct {
	Sys System
}

// List returns every interface currently visible, sorted by name.
// It returns ErrNoInterfaces when there is nothing to configure.
func (c Catalog) List() ([]Interface, error) {
	names, err := c.Sys.LinkNames()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoInterfaces, err)
	}
	if len(names) == 0 {
		return nil, ErrNoInterfaces
	}
	sort.Strings(names)
	ifaces := make([]Interface, 0, len(names))
	for _, name := range names {
		ifaces = append(ifaces, Interface{Name: name, Kind: classify(name, c.Sys.IsWireless(name))})
	}
	return ifaces, nil
}

// Snapshot takes the run's single authoritative view of the interfaces.
func (c Catalog) Snapshot() (*Snapshot, error) {
	ifaces, err := c.List()
	if err != nil {
		return nil, err
	}
	return NewSnapshot(ifaces), nil
}

// Snapshot is the interface table for one run. Names in it stay accurate
// because every rename during the run goes through Renamer, which updates it.
type Snapshot struct {
	ifaces []Interface
}

// NewSnapshot copies ifaces into a Snapshot.
func NewSnapshot(ifaces []Interface) *Snapshot {
	return &Snapshot{ifaces: append([]Interface(nil), ifaces...)}
}

// All returns a copy of every interface.
func (s *Snapshot) All() []Interface {
	return append([]Interface(nil), s.ifaces...)
}

// Lookup finds an interface by its current name.
func (s *Snapshot) Lookup(name string) (Interface, bool) {
	for _, iface := range s.ifaces {
		if iface.Name == name {
			return iface, true
		}
	}
	return Interface{}, false
}

// OfKind returns the interfaces tagged kind.
func (s *Snapshot) OfKind(kind Kind) []Interface {
	var out []Interface
	for _, iface := range s.ifaces {
		if iface.Kind == kind {
			out = append(out, iface)
		}
	}
	return out
}

// Except returns the interfaces not tagged kind.
func (s *Snapshot) Except(kind Kind) []Interface {
	var out []Interface
	for _, iface := range s.ifaces {
		if iface.Kind != kind {
			out = append(out, iface)
		}
	}
	return out
}

func (s *Snapshot) rename(name string, newName string) {
	for i := range s.ifaces {
		if s.ifaces[i].Name == name {
			s.ifaces[i].Name = newName
			return
		}
	}
}

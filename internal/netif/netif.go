// Package netif discovers host network interfaces and renames them to the
// canonical names the swarm software expects.
package netif

import (
	"errors"
	"strings"
)

// Kind classifies an interface.
type Kind int

const (
	// Other is any interface that is neither wired nor wireless by convention.
	Other Kind = iota
	// Ethernet is a wired interface (eth*, en*).
	Ethernet
	// Wireless is an interface backed by an 802.11 device.
	Wireless
)

func (k Kind) String() string {
	switch k {
	case Ethernet:
		return "ethernet"
	case Wireless:
		return "wireless"
	default:
		return "other"
	}
}

// Interface is a network interface as seen when the catalog was taken.
type Interface struct {
	Name string
	Kind Kind
}

// ErrNoInterfaces reports that the host exposes no usable interfaces.
var ErrNoInterfaces = errors.New("no network interfaces detected")

// wiredPrefixes are the kernel and systemd naming schemes for wired NICs.
var wiredPrefixes = []string{"eth", "en"}

// classify tags an interface, preferring the wireless device check over naming.
func classify(name string, wireless bool) Kind {
	if wireless {
		return Wireless
	}
	for _, prefix := range wiredPrefixes {
		if strings.HasPrefix(name, prefix) {
			return Ethernet
		}
	}
	return Other
}

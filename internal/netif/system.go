package netif

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/vishvananda/netlink"

	"github.com/edgeswarm/swarmprov/internal/messages"
)

// System abstracts the link operations used by the catalog and renamer.
// Tests provide their own implementation; nothing here touches global state.
type System interface {
	LinkNames() ([]string, error)
	IsWireless(name string) bool
	SetDown(name string) error
	SetName(name string, newName string) error
	SetUp(name string) error
}

// DefaultSysfsRoot is where the kernel exposes per-interface attributes.
const DefaultSysfsRoot = "/sys/class/net"

// NetlinkSystem implements System with rtnetlink and sysfs.
type NetlinkSystem struct {
	SysfsRoot string
}

// LinkNames returns the names of all non-loopback links.
func (s NetlinkSystem) LinkNames() ([]string, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf(messages.NetifListLinksFmt, err)
	}
	names := make([]string, 0, len(links))
	for _, link := range links {
		attrs := link.Attrs()
		if attrs.Flags&net.FlagLoopback != 0 {
			continue
		}
		names = append(names, attrs.Name)
	}
	return names, nil
}

// IsWireless reports whether the interface owns an 802.11 device.
func (s NetlinkSystem) IsWireless(name string) bool {
	root := s.root()
	for _, marker := range []string{"wireless", "phy80211"} {
		if _, err := os.Stat(filepath.Join(root, name, marker)); err == nil {
			return true
		}
	}
	return false
}

// SetDown administratively disables the link.
func (s NetlinkSystem) SetDown(name string) error {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return err
	}
	return netlink.LinkSetDown(link)
}

// SetName renames the link. The link must be down.
func (s NetlinkSystem) SetName(name string, newName string) error {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return err
	}
	return netlink.LinkSetName(link, newName)
}

// SetUp administratively enables the link.
func (s NetlinkSystem) SetUp(name string) error {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return err
	}
	return netlink.LinkSetUp(link)
}

func (s NetlinkSystem) root() string {
	if s.SysfsRoot == "" {
		return DefaultSysfsRoot
	}
	return s.SysfsRoot
}

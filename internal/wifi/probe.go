package wifi

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edgeswarm/swarmprov/internal/command"
	"github.com/edgeswarm/swarmprov/internal/messages"
)

// ErrNotAPCapable reports an interface whose driver cannot run an access point.
var ErrNotAPCapable = errors.New("selected interface cannot act as an access point")

// apMode is the iw name of access point mode. "AP/VLAN" is a different mode.
const apMode = "AP"

// Probe queries the modes a wireless interface's PHY supports.
type Probe struct {
	Runner    command.Runner
	SysfsRoot string
	// ReadFile defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

// SupportsAP reports whether iface can be put in access point mode.
// false is a normal answer; an error means the modes could not be read.
func (p Probe) SupportsAP(ctx context.Context, iface string) (bool, error) {
	modes, err := p.Modes(ctx, iface)
	if err != nil {
		return false, err
	}
	for _, mode := range modes {
		if mode == apMode {
			return true, nil
		}
	}
	return false, nil
}

// Modes returns the supported interface modes of iface's PHY.
func (p Probe) Modes(ctx context.Context, iface string) ([]string, error) {
	phy, err := p.phyName(ctx, iface)
	if err != nil {
		return nil, err
	}
	out, err := p.Runner.Run(ctx, "iw", "phy", phy, "info")
	if err != nil {
		return nil, fmt.Errorf(messages.WifiProbeQueryFmt, iface, err)
	}
	return ParseSupportedModes(string(out)), nil
}

// phyName resolves the wiphy behind iface, from sysfs when possible and from
// `iw dev <iface> info` otherwise.
func (p Probe) phyName(ctx context.Context, iface string) (string, error) {
	root := p.SysfsRoot
	if root == "" {
		root = "/sys/class/net"
	}
	read := p.ReadFile
	if read == nil {
		read = os.ReadFile
	}
	if data, err := read(filepath.Join(root, iface, "phy80211", "name")); err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			return name, nil
		}
	}
	out, err := p.Runner.Run(ctx, "iw", "dev", iface, "info")
	if err != nil {
		return "", fmt.Errorf(messages.WifiProbeQueryFmt, iface, err)
	}
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[0] == "wiphy" {
			return "phy" + fields[1], nil
		}
	}
	return "", fmt.Errorf(messages.WifiProbeNoPhyFmt, iface)
}

// ParseSupportedModes extracts the "Supported interface modes" list from
// `iw phy <phy> info` output.
func ParseSupportedModes(info string) []string {
	var modes []string
	inModes := false
	scanner := bufio.NewScanner(strings.NewReader(info))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !inModes {
			inModes = line == "Supported interface modes:"
			continue
		}
		if !strings.HasPrefix(line, "*") {
			break
		}
		modes = append(modes, strings.TrimSpace(strings.TrimPrefix(line, "*")))
	}
	return modes
}

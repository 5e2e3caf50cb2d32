package collab

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/edgeswarm/swarmprov/internal/command"
	"github.com/edgeswarm/swarmprov/internal/messages"
)

// NoninteractiveEnv keeps apt from prompting.
const NoninteractiveEnv = "DEBIAN_FRONTEND=noninteractive"

// Packages installs system packages with apt-get.
type Packages struct {
	// Runner should carry NoninteractiveEnv.
	Runner      command.Runner
	Common      []string
	AccessPoint []string
	Log         logr.Logger
}

// List returns the packages to install, the access point extras included
// when withAccessPoint is set. Duplicates are dropped.
func (p Packages) List(withAccessPoint bool) []string {
	names := append([]string(nil), p.Common...)
	if withAccessPoint {
		names = append(names, p.AccessPoint...)
	}
	seen := map[string]struct{}{}
	out := names[:0]
	for _, name := range names {
		if _, ok := seen[name]; ok || name == "" {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Install refreshes the package index and installs the package list.
func (p Packages) Install(ctx context.Context, withAccessPoint bool) error {
	names := p.List(withAccessPoint)
	if len(names) == 0 {
		return nil
	}
	if _, err := p.Runner.Run(ctx, "apt-get", "update"); err != nil {
		return fmt.Errorf(messages.CollabPackagesUpdateFmt, err)
	}
	p.Log.Info("installing packages", "packages", strings.Join(names, " "))
	args := append([]string{"install", "-y"}, names...)
	if _, err := p.Runner.Run(ctx, "apt-get", args...); err != nil {
		return fmt.Errorf(messages.CollabPackagesInstallFmt, strings.Join(names, " "), err)
	}
	return nil
}

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/edgeswarm/swarmprov/internal/collab"
	"github.com/edgeswarm/swarmprov/internal/command"
	"github.com/edgeswarm/swarmprov/internal/messages"
	"github.com/edgeswarm/swarmprov/internal/netif"
	"github.com/edgeswarm/swarmprov/internal/privilege"
	"github.com/edgeswarm/swarmprov/internal/runlock"
	"github.com/edgeswarm/swarmprov/internal/terminal"
)

// Host seams, replaced in tests.
var (
	checkPrivilege  = func() error { return privilege.Check(nil) }
	resolveOperator = func() (privilege.Operator, error) { return privilege.Invoker(nil, nil) }
	lockPath        = runlock.DefaultPath
	sysfsRoot       = netif.DefaultSysfsRoot
	newLinkSystem   = func() netif.System { return netif.NetlinkSystem{SysfsRoot: sysfsRoot} }
	newRunner       = func(env ...string) command.Runner { return command.RealRunner{Env: env} }
	newImageAPI     = func() (collab.ImageAPI, io.Closer, error) {
		cli, err := collab.NewDockerClient()
		if err != nil {
			return nil, nil, err
		}
		return cli, cli, nil
	}
	isInteractive = terminal.IsInteractive
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newProvisionCmd(),
		newInterfacesCmd(),
		newProbeCmd(),
		newConfigCmd(),
	)
	return cmd
}

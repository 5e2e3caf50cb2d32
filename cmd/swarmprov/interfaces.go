package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgeswarm/swarmprov/internal/messages"
	"github.com/edgeswarm/swarmprov/internal/netif"
)

func newInterfacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InterfacesUse,
		Short: messages.InterfacesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ifaces, err := netif.Catalog{Sys: newLinkSystem()}.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, iface := range ifaces {
				_, _ = fmt.Fprintf(out, messages.InterfacesLineFmt, iface.Name, iface.Kind)
			}
			return nil
		},
	}
}

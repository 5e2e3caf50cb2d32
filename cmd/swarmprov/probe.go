package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edgeswarm/swarmprov/internal/messages"
	"github.com/edgeswarm/swarmprov/internal/wifi"
)

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ProbeUse,
		Short: messages.ProbeShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			ok, err := wifi.Probe{Runner: newRunner(), SysfsRoot: sysfsRoot}.SupportsAP(cmd.Context(), name)
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.RedString(messages.ProbeUnsupportedFmt, name, wifi.ErrNotAPCapable))
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.GreenString(messages.ProbeSupportedFmt, name))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edgeswarm/swarmprov/internal/config"
	"github.com/edgeswarm/swarmprov/internal/messages"
)

var (
	diffColorAdded   = color.New(color.FgGreen)
	diffColorRemoved = color.New(color.FgRed)
	diffColorHunk    = color.New(color.FgCyan)
)

func newConfigCmd() *cobra.Command {
	var (
		configPath string
		diff       bool
		key        string
	)
	cmd := &cobra.Command{
		Use:   messages.ConfigUse,
		Short: messages.ConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if key != "" {
				value, err := config.Lookup(*cfg, key)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), value)
				return err
			}
			effective, err := config.Encode(*cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !diff {
				_, err := out.Write(effective)
				return err
			}
			defaults, err := config.Encode(config.Default())
			if err != nil {
				return err
			}
			label := configPath
			if label == "" {
				label = messages.ConfigDefaultSource
			}
			unified := udiff.Unified(messages.ConfigDiffLabel, label, string(defaults), string(effective))
			if unified == "" {
				_, _ = fmt.Fprintln(out, messages.ConfigNoDiff)
				return nil
			}
			printDiff(out, unified)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", messages.FlagConfig)
	cmd.Flags().BoolVar(&diff, "diff", false, messages.ConfigFlagDiff)
	cmd.Flags().StringVar(&key, "key", "", messages.ConfigFlagKey)
	cmd.MarkFlagsMutuallyExclusive("diff", "key")
	return cmd
}

// printDiff writes a unified diff with added, removed and hunk lines colored.
func printDiff(out io.Writer, unified string) {
	for _, line := range strings.SplitAfter(unified, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			_, _ = fmt.Fprint(out, line)
		case strings.HasPrefix(line, "+"):
			_, _ = diffColorAdded.Fprint(out, line)
		case strings.HasPrefix(line, "-"):
			_, _ = diffColorRemoved.Fprint(out, line)
		case strings.HasPrefix(line, "@@"):
			_, _ = diffColorHunk.Fprint(out, line)
		default:
			_, _ = fmt.Fprint(out, line)
		}
	}
}

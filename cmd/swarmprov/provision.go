package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/edgeswarm/swarmprov/internal/collab"
	"github.com/edgeswarm/swarmprov/internal/config"
	"github.com/edgeswarm/swarmprov/internal/logging"
	"github.com/edgeswarm/swarmprov/internal/messages"
	"github.com/edgeswarm/swarmprov/internal/netif"
	"github.com/edgeswarm/swarmprov/internal/privilege"
	"github.com/edgeswarm/swarmprov/internal/prompt"
	"github.com/edgeswarm/swarmprov/internal/provision"
	"github.com/edgeswarm/swarmprov/internal/role"
	"github.com/edgeswarm/swarmprov/internal/runlock"
	"github.com/edgeswarm/swarmprov/internal/wifi"
)

type provisionOptions struct {
	role       string
	ethernet   string
	wireless   string
	configPath string
	logFile    string
	tui        bool
}

func newProvisionCmd() *cobra.Command {
	var opts provisionOptions
	cmd := &cobra.Command{
		Use:   messages.ProvisionUse,
		Short: messages.ProvisionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runProvision(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
			if err == nil {
				return nil
			}
			var fatal *provision.FatalError
			if !errors.As(err, &fatal) {
				fatal = &provision.FatalError{Step: messages.ProvisionStepSetup, Err: err}
			}
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("%s", fatal.Error()))
			return &SilentExitError{Code: 1}
		},
	}
	cmd.Flags().StringVar(&opts.role, "role", "", messages.ProvisionFlagRole)
	cmd.Flags().StringVar(&opts.ethernet, "ethernet", "", messages.ProvisionFlagEthernet)
	cmd.Flags().StringVar(&opts.wireless, "wireless", "", messages.ProvisionFlagWireless)
	cmd.Flags().StringVar(&opts.configPath, "config", "", messages.FlagConfig)
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", messages.ProvisionFlagLogFile)
	cmd.Flags().BoolVar(&opts.tui, "tui", false, messages.ProvisionFlagTUI)
	return cmd
}

// runProvision checks privileges, takes the run lock, loads the
// configuration, opens the run log, settles the role and executes its plan.
func runProvision(ctx context.Context, stdin io.Reader, stdout io.Writer, stderr io.Writer, opts provisionOptions) error {
	if err := checkPrivilege(); err != nil {
		return err
	}
	lock, err := runlock.Acquire(lockPath, 0)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	operator, err := resolveOperator()
	if err != nil {
		return err
	}
	if err := expandPaths(cfg, operator.Home); err != nil {
		return err
	}

	logPath := cfg.Log.Path
	if opts.logFile != "" {
		logPath = opts.logFile
	}
	log, closer, err := logging.Open(logPath, stderr, logging.Options{Layout: cfg.Log.TimestampFormat})
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	chooser := newChooser(stdin, stdout, stderr, opts.tui)
	r, err := resolveRole(opts.role, chooser)
	if err != nil {
		log.Error(err, "role selection failed")
		return &provision.FatalError{Step: messages.ProvisionStepRole, Err: err}
	}
	log.Info("role selected", "role", r.String(), "operator", operator.Name)

	orchestrator := &provision.Orchestrator{Steps: buildSteps(cfg, opts, chooser, operator, stdout, log)}
	if err := orchestrator.Execute(ctx, &provision.Run{Role: r, Log: log}); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(stdout, color.GreenString(messages.ProvisionSucceededFmt, r.String()))
	return nil
}

func newChooser(stdin io.Reader, stdout io.Writer, stderr io.Writer, tui bool) prompt.Chooser {
	if tui {
		if isInteractive() {
			return prompt.NewHuhPrompter()
		}
		_, _ = fmt.Fprintln(stderr, color.YellowString(messages.ProvisionTUIFallback))
	}
	return prompt.NewLinePrompter(stdin, stdout)
}

func resolveRole(token string, chooser prompt.Chooser) (role.Role, error) {
	if token != "" {
		return role.Parse(token)
	}
	return role.Select(chooser)
}

// expandPaths resolves "~" in the operator-owned paths against home.
func expandPaths(cfg *config.Config, home string) error {
	for _, path := range []*string{&cfg.Repository.Path, &cfg.Python.Venv} {
		expanded, err := config.ExpandPath(*path, home)
		if err != nil {
			return err
		}
		*path = expanded
	}
	return nil
}

// buildSteps wires every step implementation to the host.
func buildSteps(cfg *config.Config, opts provisionOptions, chooser prompt.Chooser, operator privilege.Operator, progress io.Writer, log logr.Logger) map[role.StepID]provision.Step {
	links := newLinkSystem()
	runner := newRunner()
	renamer := netif.Renamer{Sys: links}

	packages := collab.Packages{
		Runner:      newRunner(collab.NoninteractiveEnv),
		Common:      cfg.Packages.Common,
		AccessPoint: cfg.Packages.AccessPoint,
		Log:         log.WithName("packages"),
	}
	repository := collab.Repository{
		URL:      cfg.Repository.URL,
		Ref:      cfg.Repository.Ref,
		Path:     cfg.Repository.Path,
		Owner:    operator,
		Progress: progress,
		Log:      log.WithName("repository"),
	}
	python := collab.PythonEnv{
		Runner:       runner,
		Interpreter:  cfg.Python.Interpreter,
		Venv:         cfg.Python.Venv,
		Requirements: cfg.Python.Requirements,
		Owner:        operator,
		Log:          log.WithName("python"),
	}
	ap := &wifi.Provisioner{
		Runner:       runner,
		Links:        links,
		Spec:         wifi.SpecFromConfig(cfg.AccessPoint),
		Policy:       wifi.RetryPolicyFromConfig(cfg.Retry),
		LinkSettle:   cfg.Settle.Link.Duration,
		DaemonSettle: cfg.Settle.Daemon.Duration,
		Log:          log.WithName("wifi"),
	}

	return map[role.StepID]provision.Step{
		role.StepCatalog: provision.CatalogStep{Catalog: netif.Catalog{Sys: links}},
		role.StepEthernet: provision.InterfaceStep{
			Kind:        netif.Ethernet,
			Target:      cfg.Interfaces.Ethernet,
			Preselected: opts.ethernet,
			Chooser:     chooser,
			Renamer:     renamer,
		},
		role.StepWireless: provision.InterfaceStep{
			Kind:        netif.Wireless,
			Target:      cfg.Interfaces.Wireless,
			Preselected: opts.wireless,
			Chooser:     chooser,
			Renamer:     renamer,
		},
		role.StepAPProbe:     provision.ProbeStep{Probe: wifi.Probe{Runner: runner, SysfsRoot: sysfsRoot}},
		role.StepAccessPoint: provision.AccessPointStep{AP: ap},
		role.StepPackages:    provision.PackagesStep{Packages: packages},
		role.StepRepository:  provision.Action(repository.Fetch),
		role.StepPythonEnv:   provision.Action(python.Create),
		role.StepImages: provision.Action(func(ctx context.Context) error {
			api, closer, err := newImageAPI()
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()
			images := collab.Images{API: api, Images: cfg.Images, Progress: progress, Log: log.WithName("images")}
			return images.PullAndTag(ctx)
		}),
	}
}

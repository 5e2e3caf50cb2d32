package collab

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"

	"github.com/edgeswarm/swarmprov/internal/command"
	"github.com/edgeswarm/swarmprov/internal/messages"
)

// PythonEnv builds the virtualenv the swarm services run in.
type PythonEnv struct {
	Runner       command.Runner
	Interpreter  string
	Venv         string
	Requirements []string
	Owner        Owner
	Log          logr.Logger
}

// Create makes the virtualenv, upgrades its pip and installs the requirements.
// Re-running on an existing virtualenv refreshes it.
func (p PythonEnv) Create(ctx context.Context) error {
	interpreter := p.Interpreter
	if interpreter == "" {
		interpreter = "python3"
	}
	if _, err := p.Runner.Run(ctx, interpreter, "-m", "venv", p.Venv); err != nil {
		return fmt.Errorf(messages.CollabVenvCreateFmt, p.Venv, err)
	}
	pip := filepath.Join(p.Venv, "bin", "pip")
	if _, err := p.Runner.Run(ctx, pip, "install", "--upgrade", "pip"); err != nil {
		return fmt.Errorf(messages.CollabPipUpgradeFmt, p.Venv, err)
	}
	if len(p.Requirements) > 0 {
		args := append([]string{"install"}, p.Requirements...)
		if _, err := p.Runner.Run(ctx, pip, args...); err != nil {
			return fmt.Errorf(messages.CollabPipInstallFmt, strings.Join(p.Requirements, " "), err)
		}
	}
	p.Log.Info("python environment ready", "venv", p.Venv, "requirements", len(p.Requirements))
	if p.Owner == nil {
		return nil
	}
	return p.Owner.Chown(p.Venv)
}

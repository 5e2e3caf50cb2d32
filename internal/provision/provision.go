// Package provision executes a role's plan as a strict sequence of steps.
package provision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/edgeswarm/swarmprov/internal/messages"
	"github.com/edgeswarm/swarmprov/internal/netif"
	"github.com/edgeswarm/swarmprov/internal/outcome"
	"github.com/edgeswarm/swarmprov/internal/role"
)

// ErrStepMissing reports a plan step with no implementation.
var ErrStepMissing = errors.New("no implementation registered for step")

// Run is the state one provisioning run carries from step to step.
type Run struct {
	Role role.Role
	// Snapshot is set by the catalog step.
	Snapshot *netif.Snapshot
	// Ethernet and Wireless hold the current names of the chosen interfaces.
	Ethernet string
	Wireless string
	Log      logr.Logger
}

// Step is one unit of a plan.
type Step interface {
	Run(ctx context.Context, run *Run) outcome.Outcome
}

// StepFunc adapts a function to Step.
type StepFunc func(ctx context.Context, run *Run) outcome.Outcome

// Run implements Step.
func (f StepFunc) Run(ctx context.Context, run *Run) outcome.Outcome {
	return f(ctx, run)
}

// FatalError is the error Execute returns when a step stops the run.
type FatalError struct {
	Step role.StepID
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf(messages.ProvisionFatalFmt, e.Step, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Orchestrator runs role plans against a fixed set of step implementations.
type Orchestrator struct {
	Steps map[role.StepID]Step
	// Now defaults to time.Now.
	Now func() time.Time
}

// Execute runs the plan of run.Role in order and stops at the first fatal
// outcome. Steps are never run concurrently, skipped or reordered.
func (o *Orchestrator) Execute(ctx context.Context, run *Run) error {
	plan := role.Plan(run.Role)
	if len(plan) == 0 {
		return &FatalError{Step: "plan", Err: fmt.Errorf(messages.RoleUnknownFmt, role.ErrUnknownRole, run.Role.String())}
	}
	for _, id := range plan {
		if o.Steps[id] == nil {
			return &FatalError{Step: id, Err: fmt.Errorf(messages.ProvisionStepMissingFmt, ErrStepMissing, id)}
		}
	}

	start := o.now()
	run.Log.Info("provisioning started", "role", run.Role.String(), "steps", len(plan))
	for i, id := range plan {
		stepStart := o.now()
		position := fmt.Sprintf("%d/%d", i+1, len(plan))
		run.Log.Info("step started", "step", id, "position", position)

		if err := ctx.Err(); err != nil {
			run.Log.Error(err, "step failed", "step", id, "position", position)
			return &FatalError{Step: id, Err: err}
		}
		out := o.Steps[id].Run(ctx, run)
		if out.OK() {
			run.Log.Info("step completed", "step", id, "position", position, "elapsed", o.now().Sub(stepStart).Round(time.Millisecond).String())
			continue
		}
		err := out.Err
		switch {
		case err == nil:
			err = errors.New(messages.ProvisionFailedWithoutError)
		case out.Kind == outcome.Retryable:
			err = fmt.Errorf(messages.ProvisionRetryEscapedFmt, err)
		}
		run.Log.Error(err, "step failed", "step", id, "position", position)
		return &FatalError{Step: id, Err: err}
	}
	run.Log.Info("provisioning completed", "role", run.Role.String(), "elapsed", o.now().Sub(start).Round(time.Millisecond).String())
	return nil
}

func (o *Orchestrator) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

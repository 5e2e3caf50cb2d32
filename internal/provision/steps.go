package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/edgeswarm/swarmprov/internal/messages"
	"github.com/edgeswarm/swarmprov/internal/netif"
	"github.com/edgeswarm/swarmprov/internal/outcome"
	"github.com/edgeswarm/swarmprov/internal/prompt"
	"github.com/edgeswarm/swarmprov/internal/wifi"
)

// Interface selection errors.
var (
	ErrNoCandidates     = errors.New("no matching interface")
	ErrInvalidSelection = errors.New("invalid interface selection")
)

// Snapshotter takes the interface snapshot. netif.Catalog satisfies it.
type Snapshotter interface {
	Snapshot() (*netif.Snapshot, error)
}

// Renamer renames an interface and records it in the snapshot.
// netif.Renamer satisfies it.
type Renamer interface {
	Rename(snap *netif.Snapshot, name string, newName string) (bool, error)
}

// APProber reports access point support. wifi.Probe satisfies it.
type APProber interface {
	SupportsAP(ctx context.Context, iface string) (bool, error)
}

// APProvisioner brings the hotspot up. wifi.Provisioner satisfies it.
type APProvisioner interface {
	Provision(ctx context.Context, iface string) outcome.Outcome
}

// PackageInstaller installs system packages. collab.Packages satisfies it.
type PackageInstaller interface {
	Install(ctx context.Context, withAccessPoint bool) error
}

// CatalogStep takes the run's interface snapshot.
type CatalogStep struct {
	Catalog Snapshotter
}

// Run implements Step.
func (s CatalogStep) Run(_ context.Context, run *Run) outcome.Outcome {
	snap, err := s.Catalog.Snapshot()
	if err != nil {
		return outcome.Fail(err)
	}
	run.Snapshot = snap
	for _, iface := range snap.All() {
		run.Log.Info("interface detected", "name", iface.Name, "kind", iface.Kind.String())
	}
	return outcome.Ok()
}

// InterfaceStep picks an interface of one kind and gives it its canonical name.
type InterfaceStep struct {
	Kind   netif.Kind
	Target string
	// Preselected skips the prompt when set.
	Preselected string
	Chooser     prompt.Chooser
	Renamer     Renamer
}

// Candidates lists the interfaces the step may pick from. The Ethernet
// menu falls back to every non-wireless interface when none is tagged
// Ethernet.
func (s InterfaceStep) Candidates(snap *netif.Snapshot) []netif.Interface {
	candidates := snap.OfKind(s.Kind)
	if len(candidates) == 0 && s.Kind == netif.Ethernet {
		candidates = snap.Except(netif.Wireless)
	}
	return candidates
}

// Run implements Step.
func (s InterfaceStep) Run(_ context.Context, run *Run) outcome.Outcome {
	if run.Snapshot == nil {
		return outcome.Fail(netif.ErrNoInterfaces)
	}
	candidates := s.Candidates(run.Snapshot)
	if len(candidates) == 0 {
		return outcome.Fail(fmt.Errorf(messages.ProvisionNoCandidatesFmt, ErrNoCandidates, s.Kind))
	}
	name, err := s.choose(run.Snapshot, candidates)
	if err != nil {
		return outcome.Fail(err)
	}
	renamed, err := s.Renamer.Rename(run.Snapshot, name, s.Target)
	if err != nil {
		return outcome.Fail(err)
	}
	if renamed {
		run.Log.Info("interface renamed", "kind", s.Kind.String(), "from", name, "to", s.Target)
	} else {
		run.Log.Info("interface already named", "kind", s.Kind.String(), "name", s.Target)
	}
	switch s.Kind {
	case netif.Wireless:
		run.Wireless = s.Target
	default:
		run.Ethernet = s.Target
	}
	return outcome.Ok()
}

func (s InterfaceStep) choose(snap *netif.Snapshot, candidates []netif.Interface) (string, error) {
	if s.Preselected != "" {
		iface, ok := snap.Lookup(s.Preselected)
		if !ok {
			return "", fmt.Errorf(messages.ProvisionNotInCatalogFmt, ErrInvalidSelection, s.Preselected)
		}
		for _, candidate := range candidates {
			if candidate.Name == iface.Name {
				return iface.Name, nil
			}
		}
		return "", fmt.Errorf(messages.ProvisionWrongKindFmt, ErrInvalidSelection, iface.Name, iface.Kind)
	}
	options := make([]string, len(candidates))
	for i, candidate := range candidates {
		options[i] = fmt.Sprintf(messages.ProvisionOptionFmt, candidate.Name, candidate.Kind)
	}
	index, err := s.Chooser.Choose(fmt.Sprintf(messages.ProvisionMenuTitleFmt, s.Kind, s.Target), options)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(candidates) {
		return "", fmt.Errorf(messages.ProvisionChoiceRangeFmt, ErrInvalidSelection, index+1)
	}
	return candidates[index].Name, nil
}

// ProbeStep confirms the chosen wireless interface can run an access point.
type ProbeStep struct {
	Probe APProber
}

// Run implements Step.
func (s ProbeStep) Run(ctx context.Context, run *Run) outcome.Outcome {
	if run.Wireless == "" {
		return outcome.Fail(fmt.Errorf(messages.ProvisionNotSelectedFmt, netif.Wireless))
	}
	ok, err := s.Probe.SupportsAP(ctx, run.Wireless)
	if err != nil {
		return outcome.Fail(err)
	}
	if !ok {
		return outcome.Fail(wifi.ErrNotAPCapable)
	}
	run.Log.Info("access point mode supported", "interface", run.Wireless)
	return outcome.Ok()
}

// AccessPointStep stands up the hotspot on the chosen wireless interface.
type AccessPointStep struct {
	AP APProvisioner
}

// Run implements Step.
func (s AccessPointStep) Run(ctx context.Context, run *Run) outcome.Outcome {
	if run.Wireless == "" {
		return outcome.Fail(fmt.Errorf(messages.ProvisionNotSelectedFmt, netif.Wireless))
	}
	return s.AP.Provision(ctx, run.Wireless)
}

// PackagesStep installs the system packages for the run's role.
type PackagesStep struct {
	Packages PackageInstaller
}

// Run implements Step.
func (s PackagesStep) Run(ctx context.Context, run *Run) outcome.Outcome {
	return outcome.FromError(s.Packages.Install(ctx, run.Role.RequiresAccessPoint()))
}

// Action wraps a collaborator call that either works or stops the run.
func Action(fn func(ctx context.Context) error) Step {
	return StepFunc(func(ctx context.Context, _ *Run) outcome.Outcome {
		return outcome.FromError(fn(ctx))
	})
}

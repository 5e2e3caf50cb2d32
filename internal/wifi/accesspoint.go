package wifi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/edgeswarm/swarmprov/internal/command"
	"github.com/edgeswarm/swarmprov/internal/messages"
	"github.com/edgeswarm/swarmprov/internal/outcome"
)

// ErrRetriesExhausted reports that every activation attempt failed.
var ErrRetriesExhausted = errors.New("access point creation exhausted its retries")

// nmcliNotFound is nmcli's exit code for a missing connection, device or AP.
const nmcliNotFound = 10

// LinkController brings links up. netif.NetlinkSystem satisfies it.
type LinkController interface {
	SetUp(name string) error
}

// Provisioner brings up the hotspot on a prepared wireless interface.
// Each attempt prepares the radio, replaces the connection profile and
// restarts NetworkManager before activating, because activations
// right after a rename or rfkill change fail intermittently.
type Provisioner struct {
	Runner       command.Runner
	Links        LinkController
	Spec         Spec
	Policy       RetryPolicy
	LinkSettle   time.Duration
	DaemonSettle time.Duration
	Log          logr.Logger
	// Sleep defaults to a context-aware blocking sleep.
	Sleep func(ctx context.Context, d time.Duration) error
}

type apState int

const (
	statePrepare apState = iota
	stateClean
	stateDefine
	stateActivate
	stateBackoff
	stateDone
	stateExhausted
	stateCancelled
)

var stageNames = map[apState]string{
	statePrepare:  "prepare",
	stateClean:    "clean",
	stateDefine:   "define",
	stateActivate: "activate",
}

// apMachine is the attempt counter plus the current state.
type apMachine struct {
	state   apState
	attempt int
	last    outcome.Outcome
}

func (m apMachine) terminal() bool {
	return m.state == stateDone || m.state == stateExhausted || m.state == stateCancelled
}

// Provision runs attempts until one activates the connection or the policy's
// attempt budget is spent. It returns Success or Fatal, never Retryable.
func (p *Provisioner) Provision(ctx context.Context, iface string) outcome.Outcome {
	policy := p.policy()
	m := apMachine{state: statePrepare, attempt: 1}
	p.Log.Info("access point attempt", "attempt", m.attempt, "max", policy.MaxAttempts, "interface", iface)
	for !m.terminal() {
		m = p.advance(ctx, iface, policy, m)
	}
	switch m.state {
	case stateDone:
		p.Log.Info("access point up", "connection", p.Spec.ConnectionName, "ssid", p.Spec.SSID, "attempts", m.attempt)
		return outcome.Ok()
	case stateCancelled:
		return outcome.Fail(fmt.Errorf(messages.WifiCancelledFmt, m.attempt, m.last.Err))
	default:
		p.Log.Info("access point retries exhausted", "attempts", m.attempt)
		return outcome.Fail(fmt.Errorf(messages.WifiExhaustedFmt, ErrRetriesExhausted, m.attempt, m.last.Err))
	}
}

// advance performs the work of the current state and returns the next machine.
func (p *Provisioner) advance(ctx context.Context, iface string, policy RetryPolicy, m apMachine) apMachine {
	var (
		err  error
		next apState
	)
	switch m.state {
	case statePrepare:
		next = stateClean
		err = p.prepare(ctx, iface)
	case stateClean:
		next = stateDefine
		err = p.clean(ctx)
	case stateDefine:
		next = stateActivate
		err = p.define(ctx, iface)
	case stateActivate:
		next = stateDone
		err = p.activate(ctx)
	case stateBackoff:
		return p.backoff(ctx, iface, policy, m)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			m.state, m.last = stateCancelled, outcome.Fail(ctxErr)
			return m
		}
		p.Log.Error(err, "access point attempt failed", "attempt", m.attempt, "stage", stageNames[m.state])
		m.state, m.last = stateBackoff, outcome.Retry(err)
		return m
	}
	m.state = next
	return m
}

// backoff waits the fixed delay and starts the next attempt, or ends the
// machine when the budget is spent.
func (p *Provisioner) backoff(ctx context.Context, iface string, policy RetryPolicy, m apMachine) apMachine {
	if m.attempt >= policy.MaxAttempts {
		m.state = stateExhausted
		return m
	}
	p.Log.Info("retrying access point", "after", policy.Backoff.String())
	if err := p.sleep(ctx, policy.Backoff); err != nil {
		m.state, m.last = stateCancelled, outcome.Fail(err)
		return m
	}
	m.attempt++
	m.state = statePrepare
	p.Log.Info("access point attempt", "attempt", m.attempt, "max", policy.MaxAttempts, "interface", iface)
	return m
}

// prepare marks the interface managed, unblocks the radio and raises the link.
func (p *Provisioner) prepare(ctx context.Context, iface string) error {
	if _, err := p.Runner.Run(ctx, "nmcli", "device", "set", iface, "managed", "yes"); err != nil {
		return err
	}
	if _, err := p.Runner.Run(ctx, "rfkill", "unblock", "wifi"); err != nil {
		return err
	}
	if err := p.Links.SetUp(iface); err != nil {
		return fmt.Errorf(messages.WifiLinkUpFmt, iface, err)
	}
	return p.sleep(ctx, p.LinkSettle)
}

// clean deletes every well-known profile; a missing profile is fine.
func (p *Provisioner) clean(ctx context.Context) error {
	for _, name := range p.Spec.cleanupNames() {
		if err := p.DeleteConnection(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// DeleteConnection removes the named connection profile. Deleting a profile
// that does not exist succeeds.
func (p *Provisioner) DeleteConnection(ctx context.Context, name string) error {
	_, err := p.Runner.Run(ctx, "nmcli", "connection", "delete", name)
	if err == nil || isNotFound(err) {
		return nil
	}
	return err
}

// define creates the hotspot profile bound to iface.
func (p *Provisioner) define(ctx context.Context, iface string) error {
	if _, err := p.Runner.Run(ctx, "nmcli", p.defineArgs(iface)...); err != nil {
		// The command line carries the passphrase; report only the outcome.
		return fmt.Errorf(messages.WifiDefineFailedFmt, p.Spec.ConnectionName, command.ExitCode(err), lastLine(command.Output(err)))
	}
	return nil
}

func (p *Provisioner) defineArgs(iface string) []string {
	spec := p.Spec
	args := []string{
		"connection", "add",
		"type", "wifi",
		"ifname", iface,
		"con-name", spec.ConnectionName,
		"autoconnect", "yes",
		"ssid", spec.SSID,
		"802-11-wireless.mode", Mode,
		"802-11-wireless.band", spec.Band,
	}
	if spec.Channel > 0 {
		args = append(args, "802-11-wireless.channel", strconv.Itoa(spec.Channel))
	}
	return append(args,
		"ipv4.method", IPv4Method,
		"wifi-sec.key-mgmt", KeyMgmt,
		"wifi-sec.psk", spec.Passphrase,
	)
}

// activate restarts NetworkManager, waits for it and brings the profile up.
func (p *Provisioner) activate(ctx context.Context) error {
	if _, err := p.Runner.Run(ctx, "systemctl", "restart", "NetworkManager"); err != nil {
		return err
	}
	if err := p.sleep(ctx, p.DaemonSettle); err != nil {
		return err
	}
	_, err := p.Runner.Run(ctx, "nmcli", "connection", "up", p.Spec.ConnectionName)
	return err
}

func (p *Provisioner) policy() RetryPolicy {
	policy := p.Policy
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = DefaultRetryPolicy().MaxAttempts
	}
	return policy
}

func (p *Provisioner) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	return SleepContext(ctx, d)
}

// SleepContext blocks for d or until ctx is done.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isNotFound(err error) bool {
	if command.ExitCode(err) == nmcliNotFound {
		return true
	}
	out := strings.ToLower(command.Output(err))
	return strings.Contains(out, "unknown connection") || strings.Contains(out, "no such connection")
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

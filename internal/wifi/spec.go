// Package wifi validates access point support and stands up the swarm
// hotspot through NetworkManager.
package wifi

import (
	"time"

	"github.com/edgeswarm/swarmprov/internal/config"
)

// Fixed connection profile properties.
const (
	Mode       = "ap"
	IPv4Method = "shared"
	KeyMgmt    = "wpa-psk"
)

// Spec describes the hotspot connection profile.
type Spec struct {
	ConnectionName string
	// StaleConnections are removed before the profile is defined.
	StaleConnections []string
	SSID             string
	Passphrase       string
	Band             string
	Channel          int
}

// SpecFromConfig builds a Spec from the access_point config section.
func SpecFromConfig(cfg config.AccessPointConfig) Spec {
	return Spec{
		ConnectionName:   cfg.ConnectionName,
		StaleConnections: append([]string(nil), cfg.StaleConnections...),
		SSID:             cfg.SSID,
		Passphrase:       cfg.Passphrase,
		Band:             cfg.Band,
		Channel:          cfg.Channel,
	}
}

// cleanupNames returns the stale names plus the profile name, deduplicated.
func (s Spec) cleanupNames() []string {
	seen := map[string]struct{}{}
	var names []string
	for _, name := range append(append([]string(nil), s.StaleConnections...), s.ConnectionName) {
		if _, ok := seen[name]; ok || name == "" {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// RetryPolicy bounds activation attempts with a fixed delay between them.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultRetryPolicy is five attempts five seconds apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 5, Backoff: 5 * time.Second}
}

// RetryPolicyFromConfig builds a RetryPolicy from the retry config section.
func RetryPolicyFromConfig(cfg config.RetryConfig) RetryPolicy {
	return RetryPolicy{MaxAttempts: cfg.MaxAttempts, Backoff: cfg.Backoff.Duration}
}

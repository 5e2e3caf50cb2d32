// Package config loads the provisioning configuration from TOML.
//
// Every field has a built-in default, so a host can be provisioned without a
// config file. A file only needs the keys it overrides.
package config

import (
	"fmt"
	"time"
)

// Config is the full provisioning configuration.
type Config struct {
	Log         LogConfig         `toml:"log"`
	Interfaces  InterfacesConfig  `toml:"interfaces"`
	AccessPoint AccessPointConfig `toml:"access_point"`
	Retry       RetryConfig       `toml:"retry"`
	Settle      SettleConfig      `toml:"settle"`
	Packages    PackagesConfig    `toml:"packages"`
	Repository  RepositoryConfig  `toml:"repository"`
	Python      PythonConfig      `toml:"python"`
	Images      []ImageConfig     `toml:"images"`
}

// LogConfig controls the append-only run log.
type LogConfig struct {
	Path            string `toml:"path"`
	TimestampFormat string `toml:"timestamp_format"`
}

// InterfacesConfig holds the canonical interface names downstream software expects.
type InterfacesConfig struct {
	Ethernet string `toml:"ethernet"`
	Wireless string `toml:"wireless"`
}

// AccessPointConfig describes the hotspot connection profile.
type AccessPointConfig struct {
	ConnectionName   string   `toml:"connection_name"`
	StaleConnections []string `toml:"stale_connections"`
	SSID             string   `toml:"ssid"`
	Passphrase       string   `toml:"passphrase"`
	Band             string   `toml:"band"`
	// Channel 0 lets NetworkManager pick one.
	Channel int `toml:"channel"`
}

// RetryConfig bounds access point activation attempts.
type RetryConfig struct {
	MaxAttempts int      `toml:"max_attempts"`
	Backoff     Duration `toml:"backoff"`
}

// SettleConfig holds the pauses that let the driver and daemon catch up.
type SettleConfig struct {
	Link   Duration `toml:"link"`
	Daemon Duration `toml:"daemon"`
}

// PackagesConfig lists system packages installed through apt.
type PackagesConfig struct {
	Common      []string `toml:"common"`
	AccessPoint []string `toml:"access_point"`
}

// RepositoryConfig names the swarm software repository.
type RepositoryConfig struct {
	URL  string `toml:"url"`
	Ref  string `toml:"ref"`
	Path string `toml:"path"`
}

// PythonConfig describes the isolated Python environment.
type PythonConfig struct {
	Interpreter  string   `toml:"interpreter"`
	Venv         string   `toml:"venv"`
	Requirements []string `toml:"requirements"`
}

// ImageConfig is a container image pulled from Source and tagged as Tag.
type ImageConfig struct {
	Source string `toml:"source"`
	Tag    string `toml:"tag"`
}

// Duration is a time.Duration written as a Go duration string ("5s").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText renders the duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Seconds is a helper for building Durations in code.
func Seconds(n int) Duration {
	return Duration{Duration: time.Duration(n) * time.Second}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, 5*time.Second, cfg.Retry.Backoff.Duration)
	assert.Equal(t, "eth0", cfg.Interfaces.Ethernet)
	assert.Equal(t, "wlan0", cfg.Interfaces.Wireless)
	assert.Len(t, cfg.Images, 2)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swarmprov.toml")
	data := `
[access_point]
ssid = "FieldNet"
band = "a"
channel = 36

[retry]
backoff = "1500ms"

[[images]]
source = "docker.io/library/nginx:1"
tag = "swarm/web:latest"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "FieldNet", cfg.AccessPoint.SSID)
	assert.Equal(t, "a", cfg.AccessPoint.Band)
	assert.Equal(t, 36, cfg.AccessPoint.Channel)
	assert.Equal(t, 1500*time.Millisecond, cfg.Retry.Backoff.Duration)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, Default().AccessPoint.Passphrase, cfg.AccessPoint.Passphrase)
	assert.Equal(t, []ImageConfig{{Source: "docker.io/library/nginx:1", Tag: "swarm/web:latest"}}, cfg.Images)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing config file")
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[access_point]\nssid = \"x\"\nhidden = true\n"), "test.toml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigValidation)
	assert.Contains(t, err.Error(), "test.toml")
}

func TestParseRejectsSyntaxErrors(t *testing.T) {
	_, err := Parse([]byte("[retry\n"), "broken.toml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigValidation)
	assert.Contains(t, err.Error(), "invalid config broken.toml")
}

func TestParseRejectsBadDuration(t *testing.T) {
	_, err := Parse([]byte("[retry]\nbackoff = \"soon\"\n"), "test.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "soon")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults"},
		{name: "short passphrase", mutate: func(c *Config) { c.AccessPoint.Passphrase = "short" }, wantErr: "passphrase"},
		{name: "long ssid", mutate: func(c *Config) { c.AccessPoint.SSID = "this-ssid-is-far-too-long-for-802.11" }, wantErr: "ssid"},
		{name: "unknown band", mutate: func(c *Config) { c.AccessPoint.Band = "6ghz" }, wantErr: "band"},
		{name: "zero attempts", mutate: func(c *Config) { c.Retry.MaxAttempts = 0 }, wantErr: "max_attempts"},
		{name: "negative backoff", mutate: func(c *Config) { c.Retry.Backoff.Duration = -time.Second }, wantErr: "retry.backoff"},
		{name: "same canonical names", mutate: func(c *Config) { c.Interfaces.Wireless = "eth0" }, wantErr: "must differ"},
		{name: "long interface name", mutate: func(c *Config) { c.Interfaces.Ethernet = "ethernet-uplink0" }, wantErr: "interfaces.ethernet"},
		{name: "incomplete image", mutate: func(c *Config) { c.Images = []ImageConfig{{Source: "redis:7"}} }, wantErr: "images[0]"},
		{name: "missing repository", mutate: func(c *Config) { c.Repository.URL = "" }, wantErr: "repository.url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			err := cfg.Validate("test.toml")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfigValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEncodeRoundTripsThroughParse(t *testing.T) {
	data, err := Encode(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "backoff")
	assert.Contains(t, string(data), "5s")

	cfg, err := Parse(data, "encoded")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestExpandPath(t *testing.T) {
	got, err := ExpandPath("~/swarm-node", "/home/operator")
	require.NoError(t, err)
	assert.Equal(t, "/home/operator/swarm-node", got)

	got, err = ExpandPath("/opt/swarm", "/home/operator")
	require.NoError(t, err)
	assert.Equal(t, "/opt/swarm", got)

	t.Setenv("HOME", "/root")
	got, err = ExpandPath("~/swarm-node", "")
	require.NoError(t, err)
	assert.Equal(t, "/root/swarm-node", got)
}

func TestLookupScalarsAndTables(t *testing.T) {
	cfg := Default()
	cfg.AccessPoint.Channel = 6

	got, err := Lookup(cfg, "access_point.ssid")
	require.NoError(t, err)
	assert.Equal(t, "EdgeSwarm\n", got)

	got, err = Lookup(cfg, "retry.max_attempts")
	require.NoError(t, err)
	assert.Equal(t, "5\n", got)

	got, err = Lookup(cfg, "retry.backoff")
	require.NoError(t, err)
	assert.Equal(t, "5s\n", got)

	got, err = Lookup(cfg, "python.requirements")
	require.NoError(t, err)
	assert.Equal(t, "paho-mqtt\npyyaml\nrequests\ndocker\n", got)

	got, err = Lookup(cfg, "settle")
	require.NoError(t, err)
	assert.Contains(t, got, "link")
	assert.Contains(t, got, "2s")

	got, err = Lookup(cfg, "images")
	require.NoError(t, err)
	assert.Contains(t, got, "swarm/broker:latest")
	assert.Contains(t, got, "swarm/state:latest")
}

func TestLookupUnknownKey(t *testing.T) {
	for _, key := range []string{"", "nope", "access_point.nope"} {
		_, err := Lookup(Default(), key)
		assert.ErrorIs(t, err, ErrUnknownKey, key)
	}
}

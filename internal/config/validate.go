package config

import (
	"fmt"

	"github.com/edgeswarm/swarmprov/internal/messages"
)

// maxInterfaceName is IFNAMSIZ minus the trailing NUL.
const maxInterfaceName = 15

var validBands = map[string]struct{}{
	"bg": {},
	"a":  {},
}

// Validate ensures the config is complete and consistent.
// source names the config in error messages.
func (c *Config) Validate(source string) error {
	if err := c.validate(source); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return nil
}

func (c *Config) validate(source string) error {
	if c.Log.Path == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "log.path")
	}
	if err := validInterfaceName(source, "interfaces.ethernet", c.Interfaces.Ethernet); err != nil {
		return err
	}
	if err := validInterfaceName(source, "interfaces.wireless", c.Interfaces.Wireless); err != nil {
		return err
	}
	if c.Interfaces.Ethernet == c.Interfaces.Wireless {
		return fmt.Errorf(messages.ConfigInterfaceNamesEqualFmt, source)
	}

	ap := c.AccessPoint
	if ap.ConnectionName == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "access_point.connection_name")
	}
	if n := len(ap.SSID); n < 1 || n > 32 {
		return fmt.Errorf(messages.ConfigSSIDLengthFmt, source, n)
	}
	if n := len(ap.Passphrase); n < 8 || n > 63 {
		return fmt.Errorf(messages.ConfigPassphraseLengthFmt, source)
	}
	if _, ok := validBands[ap.Band]; !ok {
		return fmt.Errorf(messages.ConfigBandInvalidFmt, source, ap.Band)
	}
	if ap.Channel < 0 {
		return fmt.Errorf(messages.ConfigChannelInvalidFmt, source, ap.Channel)
	}

	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf(messages.ConfigMaxAttemptsInvalidFmt, source, c.Retry.MaxAttempts)
	}
	for field, d := range map[string]Duration{
		"retry.backoff": c.Retry.Backoff,
		"settle.link":   c.Settle.Link,
		"settle.daemon": c.Settle.Daemon,
	} {
		if d.Duration < 0 {
			return fmt.Errorf(messages.ConfigDurationNegativeFmt, source, field)
		}
	}

	if c.Repository.URL == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "repository.url")
	}
	if c.Repository.Path == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "repository.path")
	}
	if c.Python.Venv == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "python.venv")
	}
	for i, image := range c.Images {
		if image.Source == "" || image.Tag == "" {
			return fmt.Errorf(messages.ConfigImageIncompleteFmt, source, i)
		}
	}
	return nil
}

func validInterfaceName(source string, field string, name string) error {
	if name == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, field)
	}
	if len(name) > maxInterfaceName {
		return fmt.Errorf(messages.ConfigInterfaceNameTooLongFmt, source, field, name)
	}
	return nil
}

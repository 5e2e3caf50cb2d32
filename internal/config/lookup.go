package config

import (
	"errors"
	"fmt"
	"strings"

	tomltree "github.com/pelletier/go-toml"

	"github.com/edgeswarm/swarmprov/internal/messages"
)

// ErrUnknownKey reports a dotted key that names no configuration value.
var ErrUnknownKey = errors.New("unknown configuration key")

// Lookup returns the value stored under a dotted key such as
// "access_point.ssid" in the encoded cfg. Tables and arrays of tables render
// as TOML; scalar arrays render one element per line.
func Lookup(cfg Config, key string) (string, error) {
	data, err := Encode(cfg)
	if err != nil {
		return "", err
	}
	tree, err := tomltree.LoadBytes(data)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigEncodeFailedFmt, err)
	}
	if strings.TrimSpace(key) == "" || !tree.Has(key) {
		return "", fmt.Errorf(messages.ConfigUnknownKeyFmt, ErrUnknownKey, key)
	}
	switch v := tree.Get(key).(type) {
	case *tomltree.Tree:
		return v.ToTomlString()
	case []*tomltree.Tree:
		parts := make([]string, 0, len(v))
		for _, table := range v {
			s, err := table.ToTomlString()
			if err != nil {
				return "", fmt.Errorf(messages.ConfigEncodeFailedFmt, err)
			}
			parts = append(parts, strings.TrimRight(s, "\n"))
		}
		return strings.Join(parts, "\n\n") + "\n", nil
	case []interface{}:
		lines := make([]string, 0, len(v))
		for _, item := range v {
			lines = append(lines, fmt.Sprint(item))
		}
		return strings.Join(lines, "\n") + "\n", nil
	default:
		return fmt.Sprintf("%v\n", v), nil
	}
}

package config

import (
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

// ExpandPath resolves a leading "~" against home, or against the current
// user's home directory when home is empty.
func ExpandPath(path string, home string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	if home == "" {
		return homedir.Expand(path)
	}
	rest := strings.TrimPrefix(path, "~")
	if rest != "" && !strings.HasPrefix(rest, "/") {
		// ~otheruser is not supported.
		return homedir.Expand(path)
	}
	return filepath.Join(home, rest), nil
}

// Package role defines the node roles and the provisioning plan of each.
package role

import (
	"errors"
	"fmt"
	"strings"

	"github.com/edgeswarm/swarmprov/internal/messages"
	"github.com/edgeswarm/swarmprov/internal/prompt"
)

// ErrUnknownRole reports a role token that names no role.
var ErrUnknownRole = errors.New("unknown role")

// Role is a node's function in the swarm.
type Role int

// Roles in menu order.
const (
	Coordinator Role = iota + 1
	APManager
	SNManager
)

// All returns every role in menu order.
func All() []Role {
	return []Role{Coordinator, APManager, SNManager}
}

// String returns the display name used in menus and logs.
func (r Role) String() string {
	switch r {
	case Coordinator:
		return "Coordinator"
	case APManager:
		return "AP Manager"
	case SNManager:
		return "SN Manager"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Token returns the flag spelling of r.
func (r Role) Token() string {
	switch r {
	case Coordinator:
		return "coordinator"
	case APManager:
		return "ap-manager"
	case SNManager:
		return "sn-manager"
	default:
		return ""
	}
}

// RequiresAccessPoint reports whether r hosts the swarm hotspot.
func (r Role) RequiresAccessPoint() bool {
	return r == APManager
}

var tokens = map[string]Role{
	"1":           Coordinator,
	"coordinator": Coordinator,
	"2":           APManager,
	"ap-manager":  APManager,
	"apmanager":   APManager,
	"ap manager":  APManager,
	"3":           SNManager,
	"sn-manager":  SNManager,
	"snmanager":   SNManager,
	"sn manager":  SNManager,
}

// Parse maps a role token to a Role. Matching ignores case and surrounding
// space; menu numbers are accepted.
func Parse(token string) (Role, error) {
	if r, ok := tokens[strings.ToLower(strings.TrimSpace(token))]; ok {
		return r, nil
	}
	return 0, fmt.Errorf(messages.RoleUnknownFmt, ErrUnknownRole, token)
}

// Select asks chooser for a role from the numbered role menu.
func Select(chooser prompt.Chooser) (Role, error) {
	roles := All()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	index, err := chooser.Choose(messages.RoleMenuTitle, names)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(roles) {
		return 0, fmt.Errorf(messages.RoleUnknownFmt, ErrUnknownRole, fmt.Sprint(index+1))
	}
	return roles[index], nil
}

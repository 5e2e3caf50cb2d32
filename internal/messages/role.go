package messages

// Role selection messages.
const (
	RoleUnknownFmt  = "%w %q (want coordinator, ap-manager or sn-manager)"
	RoleMenuTitle   = "Select the role of this node:"
	RoleSelectedFmt = "selected role %s"
)

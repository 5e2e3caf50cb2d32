package messages

// Privilege messages.
const (
	PrivilegeSudoIDFmt = "invalid %s %q: %w"
	PrivilegeChownFmt  = "chown %s to %d:%d: %w"
)

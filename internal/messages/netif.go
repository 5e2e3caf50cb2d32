package messages

// Interface catalog and rename messages.
const (
	NetifListLinksFmt     = "list links: %w"
	NetifRenameUnknownFmt = "%w %s: not in the interface catalog"
	NetifRenameTakenFmt   = "%w %s: %s is already in use by another interface"
	NetifRenameSetDownFmt = "%w %s: bring down: %w"
	NetifRenameSetNameFmt = "%w %s to %s: %w"
	NetifRenameSetUpFmt   = "%w %s: bring %s up: %w"
)

package messages

// Access point probe and provisioning messages.
const (
	WifiProbeQueryFmt   = "query supported modes of %s: %w"
	WifiProbeNoPhyFmt   = "no wiphy found for %s"
	WifiLinkUpFmt       = "bring %s up: %w"
	WifiDefineFailedFmt = "define connection %s: nmcli exited %d: %s"
	WifiExhaustedFmt    = "%w after %d attempts: %w"
	WifiCancelledFmt    = "access point creation cancelled during attempt %d: %w"
)

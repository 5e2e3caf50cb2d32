package messages

// Run lock messages.
const (
	RunlockOpenFmt    = "open run lock %s: %w"
	RunlockAcquireFmt = "acquire run lock %s: %w"
	RunlockHeldFmt    = "%w: another swarmprov run holds %s (waited %s)"
)

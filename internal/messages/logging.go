package messages

// Log sink messages.
const (
	LoggingOpenFmt = "open log %s: %w"
)

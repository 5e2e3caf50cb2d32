package messages

// Config messages for configuration loading and validation.
const (
	// ConfigDefaultSource names the built-in configuration in errors.
	ConfigDefaultSource       = "built-in defaults"
	ConfigMissingFileFmt      = "missing config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized config keys: %s"
	ConfigEncodeFailedFmt     = "encode config: %w"
	ConfigUnknownKeyFmt       = "%w %q"

	ConfigFieldRequiredFmt        = "%s: %s is required"
	ConfigInterfaceNameTooLongFmt = "%s: %s %q exceeds 15 characters"
	ConfigInterfaceNamesEqualFmt  = "%s: interfaces.ethernet and interfaces.wireless must differ"
	ConfigSSIDLengthFmt           = "%s: access_point.ssid must be 1-32 bytes (got %d)"
	ConfigPassphraseLengthFmt     = "%s: access_point.passphrase must be 8-63 characters"
	ConfigBandInvalidFmt          = "%s: access_point.band must be bg or a (got %q)"
	ConfigChannelInvalidFmt       = "%s: access_point.channel must not be negative (got %d)"
	ConfigMaxAttemptsInvalidFmt   = "%s: retry.max_attempts must be at least 1 (got %d)"
	ConfigDurationNegativeFmt     = "%s: %s must not be negative"
	ConfigImageIncompleteFmt      = "%s: images[%d] needs both source and tag"
)

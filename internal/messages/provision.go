package messages

// Provisioning run messages.
const (
	ProvisionFatalFmt           = "provisioning failed at %s: %v"
	ProvisionStepMissingFmt     = "%w: %s"
	ProvisionRetryEscapedFmt    = "step gave up with a retryable failure: %w"
	ProvisionFailedWithoutError = "step failed without reporting an error"
	ProvisionNoCandidatesFmt    = "%w: no %s interface available"
	ProvisionNotInCatalogFmt    = "%w: %s is not in the interface catalog"
	ProvisionWrongKindFmt       = "%w: %s is a %s interface"
	ProvisionMenuTitleFmt       = "Select the %s interface (it becomes %s):"
	ProvisionOptionFmt          = "%s (%s)"
	ProvisionNotSelectedFmt     = "no %s interface selected"
	ProvisionChoiceRangeFmt     = "%w: choice %d out of range"
)

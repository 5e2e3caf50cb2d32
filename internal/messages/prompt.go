package messages

// Operator prompt text.
const (
	PromptOptionFmt        = "  %d) %s\n"
	PromptSelectFmt        = "Select [1-%d]: "
	PromptInvalidChoiceFmt = "Invalid choice %q, enter a number from 1 to %d."
	PromptNoOptionsFmt     = "%s: nothing to choose from"
	PromptUnansweredFmt    = "%w: %s"
	PromptRequiresTerminal = "interactive forms require an interactive terminal"
)

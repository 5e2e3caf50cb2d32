package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse   = "swarmprov"
	RootShort = "Provision a node of the edge swarm"

	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagConfig = "Path to a TOML configuration file (defaults apply when omitted)"

	ProvisionUse          = "provision"
	ProvisionShort        = "Configure interfaces, the access point and the swarm software for a role"
	ProvisionFlagRole     = "Role of this node: coordinator, ap-manager or sn-manager (prompted when omitted)"
	ProvisionFlagEthernet = "Ethernet interface to rename (prompted when omitted)"
	ProvisionFlagWireless = "Wireless interface to rename for the access point (prompted when omitted)"
	ProvisionFlagLogFile  = "Append the run log to this file instead of the configured path"
	ProvisionFlagTUI      = "Use interactive forms instead of numbered prompts"
	ProvisionTUIFallback  = "Warning: --tui needs an interactive terminal; using numbered prompts"
	ProvisionSucceededFmt = "provisioning complete: %s"
	ProvisionStepRole     = "role"
	ProvisionStepSetup    = "setup"

	InterfacesUse     = "interfaces"
	InterfacesShort   = "List the network interfaces swarmprov can configure"
	InterfacesLineFmt = "%-16s %s\n"

	ProbeUse            = "probe-ap NAME"
	ProbeShort          = "Report whether a wireless interface supports access point mode"
	ProbeSupportedFmt   = "%s: access point mode supported"
	ProbeUnsupportedFmt = "%s: %v"

	ConfigUse       = "config"
	ConfigShort     = "Print the effective configuration"
	ConfigFlagDiff  = "Show a unified diff against the built-in defaults"
	ConfigFlagKey   = "Print only the value under a dotted key such as access_point.ssid"
	ConfigDiffLabel = "defaults"
	ConfigNoDiff    = "configuration matches the built-in defaults"
)

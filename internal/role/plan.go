package role

// StepID names one provisioning step.
type StepID string

// Provisioning steps.
const (
	StepCatalog     StepID = "catalog"
	StepEthernet    StepID = "ethernet"
	StepWireless    StepID = "wireless"
	StepAPProbe     StepID = "ap-probe"
	StepAccessPoint StepID = "access-point"
	StepPackages    StepID = "packages"
	StepRepository  StepID = "repository"
	StepPythonEnv   StepID = "python-env"
	StepImages      StepID = "images"
)

// StepIDs returns every step in canonical order.
func StepIDs() []StepID {
	return []StepID{
		StepCatalog, StepEthernet, StepWireless, StepAPProbe, StepAccessPoint,
		StepPackages, StepRepository, StepPythonEnv, StepImages,
	}
}

// Plan returns the ordered steps for r. Only APManager touches the
// wireless interface; only Coordinator pulls container images.
func Plan(r Role) []StepID {
	switch r {
	case Coordinator:
		return []StepID{StepCatalog, StepEthernet, StepPackages, StepRepository, StepPythonEnv, StepImages}
	case APManager:
		return []StepID{StepCatalog, StepEthernet, StepWireless, StepAPProbe, StepAccessPoint, StepPackages, StepRepository, StepPythonEnv}
	case SNManager:
		return []StepID{StepCatalog, StepEthernet, StepPackages, StepRepository, StepPythonEnv}
	default:
		return nil
	}
}

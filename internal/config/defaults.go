package config

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Path:            "/var/log/swarmprov.log",
			TimestampFormat: "2006-01-02 15:04:05",
		},
		Interfaces: InterfacesConfig{
			Ethernet: "eth0",
			Wireless: "wlan0",
		},
		AccessPoint: AccessPointConfig{
			ConnectionName:   "Hotspot",
			StaleConnections: []string{"Hotspot", "swarm-ap"},
			SSID:             "EdgeSwarm",
			Passphrase:       "edgeswarm-ap",
			Band:             "bg",
		},
		Retry: RetryConfig{
			MaxAttempts: 5,
			Backoff:     Seconds(5),
		},
		Settle: SettleConfig{
			Link:   Seconds(2),
			Daemon: Seconds(5),
		},
		Packages: PackagesConfig{
			Common:      []string{"git", "python3", "python3-venv", "python3-pip", "docker.io"},
			AccessPoint: []string{"network-manager", "rfkill", "iw"},
		},
		Repository: RepositoryConfig{
			URL:  "https://github.com/edgeswarm/swarm-node.git",
			Ref:  "main",
			Path: "~/swarm-node",
		},
		Python: PythonConfig{
			Interpreter:  "python3",
			Venv:         "~/swarm-node/.venv",
			Requirements: []string{"paho-mqtt", "pyyaml", "requests", "docker"},
		},
		Images: []ImageConfig{
			{Source: "docker.io/library/eclipse-mosquitto:2", Tag: "swarm/broker:latest"},
			{Source: "docker.io/library/redis:7-alpine", Tag: "swarm/state:latest"},
		},
	}
}

// applyDefaults fills every zero-valued field of cfg from def.
func applyDefaults(cfg *Config, def Config) {
	setString(&cfg.Log.Path, def.Log.Path)
	setString(&cfg.Log.TimestampFormat, def.Log.TimestampFormat)
	setString(&cfg.Interfaces.Ethernet, def.Interfaces.Ethernet)
	setString(&cfg.Interfaces.Wireless, def.Interfaces.Wireless)
	setString(&cfg.AccessPoint.ConnectionName, def.AccessPoint.ConnectionName)
	setStrings(&cfg.AccessPoint.StaleConnections, def.AccessPoint.StaleConnections)
	setString(&cfg.AccessPoint.SSID, def.AccessPoint.SSID)
	setString(&cfg.AccessPoint.Passphrase, def.AccessPoint.Passphrase)
	setString(&cfg.AccessPoint.Band, def.AccessPoint.Band)
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry.MaxAttempts = def.Retry.MaxAttempts
	}
	setDuration(&cfg.Retry.Backoff, def.Retry.Backoff)
	setDuration(&cfg.Settle.Link, def.Settle.Link)
	setDuration(&cfg.Settle.Daemon, def.Settle.Daemon)
	setStrings(&cfg.Packages.Common, def.Packages.Common)
	setStrings(&cfg.Packages.AccessPoint, def.Packages.AccessPoint)
	setString(&cfg.Repository.URL, def.Repository.URL)
	setString(&cfg.Repository.Ref, def.Repository.Ref)
	setString(&cfg.Repository.Path, def.Repository.Path)
	setString(&cfg.Python.Interpreter, def.Python.Interpreter)
	setString(&cfg.Python.Venv, def.Python.Venv)
	setStrings(&cfg.Python.Requirements, def.Python.Requirements)
	if cfg.Images == nil {
		cfg.Images = append([]ImageConfig(nil), def.Images...)
	}
}

func setString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func setStrings(dst *[]string, def []string) {
	if *dst == nil {
		*dst = append([]string(nil), def...)
	}
}

func setDuration(dst *Duration, def Duration) {
	if dst.Duration == 0 {
		*dst = def
	}
}

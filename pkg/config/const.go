package config

const (
	AppName           = "timestamp"
	CliConfigFileName = "timestamp.yaml"

	// EnvPrefix prefixes every environment override, e.g. TIMESTAMP_LABEL_FORMAT.
	EnvPrefix = "TIMESTAMP"
	// ConfigPathEnvVar points at a directory holding timestamp.yaml.
	ConfigPathEnvVar = "TIMESTAMP_CONFIG_PATH"

	DefaultLogsFile  = "/dev/stderr"
	DefaultLogsLevel = "Info"

	DefaultFormat    = "hms"
	DefaultDirection = "increase"
	DefaultStart     = "zero"
	DefaultScale     = "1s"
)

package schema

import "time"

// Configuration represents the schema of `timestamp.yaml` merged with
// TIMESTAMP_* environment variables and command-line flags.
type Configuration struct {
	Logs  Logs  `yaml:"logs,omitempty" json:"logs,omitempty" mapstructure:"logs"`
	Label Label `yaml:"label,omitempty" json:"label,omitempty" mapstructure:"label"`

	// ConfigPath is the config file that was read, if any.
	ConfigPath string `yaml:"-" json:"-" mapstructure:"-"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

// Label holds the raw label settings. They are validated when the label is built.
type Label struct {
	Format     string            `yaml:"format" json:"format" mapstructure:"format"`
	Direction  string            `yaml:"direction" json:"direction" mapstructure:"direction"`
	Start      string            `yaml:"start" json:"start" mapstructure:"start"`
	Scale      string            `yaml:"scale" json:"scale" mapstructure:"scale"`
	ZeroOffset time.Duration     `yaml:"zero_offset" json:"zero_offset" mapstructure:"zero_offset"`
	UTC        bool              `yaml:"utc" json:"utc" mapstructure:"utc"`
	Plain      bool              `yaml:"plain" json:"plain" mapstructure:"plain"`
	Ticks      uint64            `yaml:"ticks,omitempty" json:"ticks,omitempty" mapstructure:"ticks"`
	Attributes map[string]string `yaml:"attributes,omitempty" json:"attributes,omitempty" mapstructure:"attributes"`
}

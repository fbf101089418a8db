package fest

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/jugglefest/jugglefest/fest/trace"
)

// RunConfig holds the settings of one assignment run, loadable from a YAML file.
// Empty strings and nil pointers mean "not set in YAML"; they do not override
// command-line defaults.
type RunConfig struct {
	Input    string       `yaml:"input"`
	Output   string       `yaml:"output"`
	LogLevel string       `yaml:"log_level"`
	Report   ReportConfig `yaml:"report"`
	Trace    TraceConfig  `yaml:"trace"`
}

// ReportConfig controls what is printed after a run.
type ReportConfig struct {
	Circuit string `yaml:"circuit"` // circuit whose juggler name sum is printed
	Summary *bool  `yaml:"summary"`
}

// TraceConfig controls decision tracing.
type TraceConfig struct {
	Level string `yaml:"level"`
}

// LoadRunConfig reads and parses a YAML run configuration file.
// Unknown keys are rejected so that typos surface as errors.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var cfg RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &cfg, nil
}

// Validate checks level names in the configuration.
func (c *RunConfig) Validate() error {
	if !trace.IsValidTraceLevel(c.Trace.Level) {
		return fmt.Errorf("unknown trace level %q", c.Trace.Level)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("invalid log_level: %w", err)
		}
	}
	return nil
}

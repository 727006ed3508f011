package domain

import "fmt"

// Output modes for the validate command.
const (
	OutputTUI  = "tui"
	OutputJSON = "json"
)

// DefaultChecklistFile is the checklist path used when neither the config
// file nor the --checklist flag names one.
const DefaultChecklistFile = "AIIF-Conformance-Checklist.json"

// Config is the project configuration read from .aiifcheck.yaml.
// Zero values mean "not set"; explicit flags always win over config.
type Config struct {
	Checklist    string `yaml:"checklist"`
	StrictShould bool   `yaml:"strict_should"`
	Output       string `yaml:"output"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Checklist: DefaultChecklistFile,
		Output:    OutputTUI,
	}
}

// Validate catches typos in user-supplied config before it is used.
func (c Config) Validate() error {
	switch c.Output {
	case "", OutputTUI, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output mode %q (want %q or %q)", c.Output, OutputTUI, OutputJSON)
	}
}

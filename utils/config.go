package utils

import (
	"encoding/json"
	"io/fs"
	"os"

	"github.com/pkg/errors"
)

// ConfigFile is read from the working directory when present
const ConfigFile = "config.json"

// Config holds the configuration for a run
type Config struct {
	ParamsFile     string `json:"params_file"`
	FinalStateFile string `json:"final_state_file"`
	Generations    int    `json:"generations"`
	Workers        int    `json:"workers"`
	LogLevel       string `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		ParamsFile:     "input.params",
		FinalStateFile: "final_state.dat",
		Generations:    3,
		Workers:        1, // sequential kernel
		LogLevel:       "warn",
	}
}

// LoadConfig loads configuration from a JSON file over the defaults.
// A missing file is not an error.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, &FatalError{
			Kind:  KindOpen,
			Check: "could not open config file",
			Err:   errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename),
		}
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, &FatalError{
			Kind:  KindMalformed,
			Check: "could not parse config file",
			Err:   errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename),
		}
	}

	if err = config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// Validate checks the values a run depends on
func (c Config) Validate() error {
	switch {
	case c.ParamsFile == "":
		return NewFatalError(KindMalformed, "invalid config", "params_file is empty")
	case c.FinalStateFile == "":
		return NewFatalError(KindMalformed, "invalid config", "final_state_file is empty")
	case c.Generations < 0:
		return NewFatalError(KindMalformed, "invalid config", "generations must be >= 0, got %d", c.Generations)
	case c.Workers < 0:
		return NewFatalError(KindMalformed, "invalid config", "workers must be >= 0, got %d", c.Workers)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

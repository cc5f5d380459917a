package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the merge tool configuration as loaded from YAML.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls the merged output stream.
type OutputConfig struct {
	SampleRate    int    `yaml:"sample_rate"`
	NormalizePeak bool   `yaml:"normalize_peak"`
	Preprocess    bool   `yaml:"preprocess"`
	Quality       string `yaml:"quality"` // "sinc" or "nearest"
}

// LoggingConfig controls logger verbosity and format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			SampleRate:    16000,
			NormalizePeak: true,
			Quality:       "sinc",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads and parses the configuration file. Fields absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate checks output parameters.
func (c *OutputConfig) Validate() error {
	if c.SampleRate < 8000 || c.SampleRate > 192000 {
		return fmt.Errorf("sample_rate must be between 8000 and 192000, got %d", c.SampleRate)
	}

	switch c.Quality {
	case "sinc", "nearest":
	default:
		return fmt.Errorf("quality must be \"sinc\" or \"nearest\", got %q", c.Quality)
	}

	return nil
}

// Validate checks logging parameters.
func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Level)
	}

	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Format)
	}

	return nil
}

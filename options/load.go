package options

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

// LoadFile loads and validates a YAML configuration file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML data on top of Default, so missing keys keep their
// default value, and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

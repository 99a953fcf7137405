package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// parseFile reads command settings from a YAML file. Durations are written
// as Go duration strings ("10s").
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	fileCfg.ConfigFilePath = ""

	return &fileCfg, nil
}

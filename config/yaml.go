package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads index settings from a YAML file, for operators who keep
// index definitions outside of the JSON-tagged configuration API.
func LoadYAML(path string) (IndexSettings, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-controlled configuration, not user input
	if err != nil {
		return IndexSettings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var settings IndexSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return IndexSettings{}, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	settings.ApplyDefaults()
	return settings, nil
}

// SaveYAML writes index settings to a YAML file.
func SaveYAML(path string, settings IndexSettings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- settings are not secret material
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	return nil
}

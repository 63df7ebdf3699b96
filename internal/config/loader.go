package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directories.
const FileName = "mines.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.mines/configs/mines.yaml -> ./configs/mines.yaml -> embedded default
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	cfg := embedded()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fromFile := cfg
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return fromFile, fromFile.Validate()
	}

	return cfg, cfg.Validate()
}

// embedded parses the embedded default YAML.
func embedded() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultMinesYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mines", "configs", filename)
}

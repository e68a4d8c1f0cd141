package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "chicken.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.chicken-road/configs/chicken.yaml ->
// ./configs/chicken.yaml -> embedded default.
// Files are overlaid on the defaults, so they may set only some keys.
// Only an explicit customPath produces an error; broken files found
// during the search are skipped.
func Load(customPath string) (ChickenConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChickenConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return ChickenConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return ChickenConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", configFile)}
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parse(data)
		if err != nil || cfg.Validate() != nil {
			continue
		}
		return cfg, nil
	}

	cfg, err := parse(defaultChickenYAML)
	if err != nil {
		return DefaultChickenConfig(), nil
	}
	return cfg, nil
}

// parse overlays YAML data on the built-in defaults.
func parse(data []byte) (ChickenConfig, error) {
	cfg := DefaultChickenConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChickenConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chicken-road", "configs", filename)
}

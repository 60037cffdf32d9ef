package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ymgch/epg-comb/app/area"
)

// Loader handles loading and validation of area configurations
type Loader struct {
	configDir string
}

// NewLoader creates a new configuration loader
func NewLoader(configDir string) *Loader {
	return &Loader{configDir: configDir}
}

// LoadAll loads all YAML configuration files from the config directory,
// keyed by area id.
func (l *Loader) LoadAll() (map[string]*AreaConfig, error) {
	configs := make(map[string]*AreaConfig)

	// Check if config directory exists
	if _, err := os.Stat(l.configDir); os.IsNotExist(err) {
		return configs, nil // Return empty map if directory doesn't exist
	}

	files, err := filepath.Glob(filepath.Join(l.configDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YAML files: %w", err)
	}

	// Also check for .yml extension
	ymlFiles, err := filepath.Glob(filepath.Join(l.configDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YML files: %w", err)
	}
	files = append(files, ymlFiles...)

	for _, file := range files {
		config, err := l.loadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}

		if err := l.validate(config); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", file, err)
		}

		if _, dup := configs[config.Area.ID]; dup {
			return nil, fmt.Errorf("duplicate config for area %s in %s", config.Area.ID, file)
		}

		configs[config.Area.ID] = config
		slog.Debug("Loaded area configuration", "file", file, "area", config.Area.ID)
	}

	return configs, nil
}

// loadFile loads a single YAML configuration file
func (l *Loader) loadFile(path string) (*AreaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config AreaConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &config, nil
}

// validate validates the configuration
func (l *Loader) validate(config *AreaConfig) error {
	if config.Area.ID == "" {
		return fmt.Errorf("area id is required")
	}
	if !area.IsValid(config.Area.ID) {
		return fmt.Errorf("unknown area id: %s", config.Area.ID)
	}

	seen := make(map[string]bool)
	for _, id := range config.Settings.SkipStations {
		if id == "" {
			return fmt.Errorf("skip_stations must not contain empty ids")
		}
		if seen[id] {
			return fmt.Errorf("duplicate station id in skip_stations: %s", id)
		}
		seen[id] = true
	}

	return nil
}

// SkipSet returns the config's permanent skip list as a set.
func (c *AreaConfig) SkipSet() map[string]bool {
	skip := make(map[string]bool, len(c.Settings.SkipStations))
	for _, id := range c.Settings.SkipStations {
		skip[id] = true
	}
	return skip
}

// AllowsStation reports whether the allow-list admits a station id. An
// empty allow-list admits everything.
func (c *AreaConfig) AllowsStation(id string) bool {
	if len(c.Settings.Stations) == 0 {
		return true
	}
	for _, s := range c.Settings.Stations {
		if s == id {
			return true
		}
	}
	return false
}

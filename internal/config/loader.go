package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/keepercfg/internal/files"
)

// Load loads the application settings.
// Search order: customPath -> ~/.keeper/keeper.yaml -> ./configs/keeper.yaml -> embedded default
// Files only need to list the settings they change.
func Load(customPath string) (Settings, error) {
	cfg := DefaultSettings()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("keeper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultSettings()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/keeper.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultSettings()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".keeper", filename)
}

// FileGroups returns the group directories for the files package. Groups
// the settings leave out keep their default directory.
func (s Settings) FileGroups() map[files.Group]string {
	groups := files.DefaultGroups()
	for name, dir := range s.Groups {
		groups[files.Group(name)] = dir
	}
	return groups
}

// NewFileLoader builds a file loader for the install tree described by s.
func (s Settings) NewFileLoader() (*files.Loader, error) {
	enc, err := files.Encoding(s.Encoding)
	if err != nil {
		return nil, err
	}
	l := files.NewLoader(files.NewResolver(s.DataDir, s.FileGroups()))
	if s.MaxFileSize > 0 {
		l.MaxSize = s.MaxFileSize
	}
	l.Encoding = enc
	return l, nil
}

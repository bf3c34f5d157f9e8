package config

import (
	_ "embed"
)

//go:embed defaults/keeper.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		DataDir: ".",
		Groups: map[string]string{
			"fxdata":  "fxdata",
			"creatrs": "creatrs",
			"data":    "data",
		},
		CreatureFile: "creature.cfg",
		MaxFileSize:  65536,
		Encoding:     "windows-1252",
		Logging: Logging{
			Level:  "info",
			Format: "text",
			Prefix: "keeper",
		},
		DBPath: "~/.keeper/keeper.db",
	}
}

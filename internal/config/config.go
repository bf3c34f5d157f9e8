// Package config provides YAML-based application settings for the keeper
// tools: where the install tree lives, how its files are read, logging and
// the history database.
package config

// Settings contains all application settings.
type Settings struct {
	DataDir      string            `yaml:"data_dir"`
	Groups       map[string]string `yaml:"groups"`
	CreatureFile string            `yaml:"creature_file"`
	MaxFileSize  int               `yaml:"max_file_size"`
	Encoding     string            `yaml:"encoding"`
	TerrainFile  string            `yaml:"terrain_file"`
	Features     Features          `yaml:"features"`
	Logging      Logging           `yaml:"logging"`
	DBPath       string            `yaml:"db_path"`
}

// Features toggles optional behaviour.
type Features struct {
	BigPointer bool `yaml:"big_pointer"`
}

// Logging configures the process logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Prefix string `yaml:"prefix"`
}

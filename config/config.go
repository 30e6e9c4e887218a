package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the user-tunable settings read from the TOML config file.
type Config struct {
	EnableLogger bool   `toml:"enable_logger"`
	LogFile      string `toml:"log_file"`
	BackupOnSave bool   `toml:"backup_on_save"`
}

func DefaultConfig() Config {
	return Config{
		EnableLogger: false,
		LogFile:      "ged.log",
		BackupOnSave: false,
	}
}

// Path returns the config file location under the user config directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ged", "config.toml"), nil
}

// LoadConfig reads the config file, falling back to the defaults when the
// file is missing or malformed.
func LoadConfig() Config {
	path, err := Path()
	if err != nil {
		return DefaultConfig()
	}
	return loadFrom(path)
}

func loadFrom(path string) Config {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig writes cfg to the config file, creating the directory first.
func SaveConfig(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return saveTo(path, cfg)
}

func saveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

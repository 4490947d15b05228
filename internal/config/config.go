package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store backend names accepted in the config file.
const (
	StoreExcel  = "xlsx"
	StoreSQLite = "sqlite"
)

// Config holds the user-adjustable settings. Everything has a working
// default; the config file is optional.
type Config struct {
	// Store selects the record store backend: "xlsx" or "sqlite".
	Store string `yaml:"store"`
	// DataFile is the path of the records file. Defaults to a file
	// under ~/.timerforwork matching the chosen backend.
	DataFile string `yaml:"data_file"`
	// WorkweekOnly limits the week view to Monday through Friday.
	WorkweekOnly bool `yaml:"workweek_only"`
}

// Load reads ~/.timerforwork/config.yaml, falling back to defaults when
// the file does not exist.
func Load() (Config, error) {
	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(filepath.Join(dir, "config.yaml"))
}

// LoadFile reads the given config file, applying defaults for anything
// unset. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	cfg := Config{Store: StoreExcel}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return applyDefaults(cfg)
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Store == "" {
		cfg.Store = StoreExcel
	}
	if cfg.Store != StoreExcel && cfg.Store != StoreSQLite {
		return Config{}, fmt.Errorf("unknown store backend %q in %s", cfg.Store, path)
	}
	return applyDefaults(cfg)
}

func applyDefaults(cfg Config) (Config, error) {
	if cfg.DataFile != "" {
		return cfg, nil
	}
	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}
	name := "time_records.xlsx"
	if cfg.Store == StoreSQLite {
		name = "time_records.db"
	}
	cfg.DataFile = filepath.Join(dir, name)
	return cfg, nil
}

func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".timerforwork"), nil
}

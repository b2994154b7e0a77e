package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// cliConfig is the optional YAML config file. Flags always win over config
// values; the config exists so agents and heavy users can stop repeating
// --catalog and --pantry, and so the reducer word lists can be extended
// without a rebuild.
type cliConfig struct {
	Catalog        string   `yaml:"catalog"`
	Pantry         string   `yaml:"pantry"`
	ExtraUnits     []string `yaml:"extraUnits"`
	ExtraStopWords []string `yaml:"extraStopWords"`
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error; everything has flag or
// built-in defaults.
func loadConfig(path string) (cliConfig, error) {
	explicit := path != ""
	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return cliConfig{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cliConfig{}, nil
		}
		return cliConfig{}, invalidArgsError(
			fmt.Sprintf("cannot read config file %s: %v", path, err),
			"larder --config ~/.larder/config.yaml",
		)
	}

	var cfg cliConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cliConfig{}, invalidArgsError(
			fmt.Sprintf("cannot parse config file %s: %v", path, err),
			"Config keys: catalog, pantry, extraUnits, extraStopWords.",
		)
	}
	return cfg, nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".larder", "config.yaml")
}

// pantryPath resolves the pantry state file: flag, then config, then the
// default under the user's home directory.
func pantryPath() (string, error) {
	if flagPantry != "" {
		return flagPantry, nil
	}
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return "", err
	}
	if cfg.Pantry != "" {
		return cfg.Pantry, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", invalidArgsError(
			"cannot resolve home directory for pantry state; pass --pantry PATH",
			"larder pantry list --pantry ./pantry.json",
		)
	}
	return filepath.Join(home, ".larder", "pantry.json"), nil
}

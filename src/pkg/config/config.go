// Package config provides functionality for loading and managing
// application configuration settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"roster/local-app/src/pkg/model"
)

// DefaultConfigPath is where ConfigLoad looks for the configuration file.
const DefaultConfigPath = "./data/config.toml"

// Global variables to store the current configuration and its file path.
var (
	currentConfig *model.Config
	configPath    = DefaultConfigPath
)

// ConfigDefault returns the configuration used when no file is present.
func ConfigDefault() *model.Config {
	return &model.Config{
		Prompt:       "> ",
		HistoryFile:  "",
		StoreType:    "memory",
		LogFolder:    "",
		CommandLog:   "commands.log",
		ErrorLog:     "errors.log",
		InfoLog:      "info.log",
		LogLevel:     "info",
		PreserveCase: false,
	}
}

// ConfigLoad loads the configuration from the TOML file.
// If the file doesn't exist, the defaults are used and nothing is written.
func ConfigLoad() error {
	cfg, err := ConfigLoadFile(configPath)
	if err != nil {
		return err
	}
	currentConfig = cfg
	return nil
}

// ConfigLoadFile reads the configuration at path on top of the defaults.
func ConfigLoadFile(path string) (*model.Config, error) {
	cfg := ConfigDefault()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Keys absent from the file keep their default values
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if cfg.StoreType == "" {
		cfg.StoreType = "memory"
	}

	return cfg, nil
}

// ConfigGet returns the current configuration.
func ConfigGet() *model.Config {
	if currentConfig == nil {
		return ConfigDefault()
	}
	return currentConfig
}

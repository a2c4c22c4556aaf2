package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"howitworks/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/howitworks"
	projectConfigDir = ".howitworks"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user, and project settings.
func LoadConfig() (AppConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else {
		if config, err = overlayFromFile(config, userConfigPath); err != nil {
			return AppConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else {
		if config, err = overlayFromFile(config, projectConfigPath); err != nil {
			return AppConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// LoadConfigFile layers a single explicit file over the defaults.
func LoadConfigFile(path string) (AppConfig, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), overlay)
	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

func overlayFromFile(base AppConfig, path string) (AppConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	logging.Debug("Config", "Loaded configuration layer %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads an AppConfig from a YAML file.
func loadConfigFromFile(filePath string) (AppConfig, error) {
	var config AppConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return AppConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in the
// overlay leave the base untouched.
func mergeConfigs(base, overlay AppConfig) AppConfig {
	merged := base

	if overlay.Content.Path != "" {
		merged.Content.Path = overlay.Content.Path
	}

	if overlay.Layout.Breakpoint.Prefix != "" {
		merged.Layout.Breakpoint.Prefix = overlay.Layout.Breakpoint.Prefix
	}
	if overlay.Layout.Breakpoint.Columns != 0 {
		merged.Layout.Breakpoint.Columns = overlay.Layout.Breakpoint.Columns
	}

	if overlay.Theme.Mode != "" {
		merged.Theme.Mode = overlay.Theme.Mode
	}

	if overlay.Server.Host != "" {
		merged.Server.Host = overlay.Server.Host
	}
	if overlay.Server.Port != 0 {
		merged.Server.Port = overlay.Server.Port
	}
	if overlay.Server.MCPEnabled != nil {
		merged.Server.MCPEnabled = overlay.Server.MCPEnabled
	}
	if overlay.Server.Watch != nil {
		merged.Server.Watch = overlay.Server.Watch
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

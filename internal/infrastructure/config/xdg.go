package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "themesync"
	configFileName = "config.toml"
	databaseName   = "themesync.db"

	// EnvHome puts config and data under one directory, e.g. a checkout's
	// .dev folder.
	EnvHome = "THEMESYNC_HOME"
)

// BaseDir returns $env when set, else ~/<fallback...>.
func BaseDir(env string, fallback ...string) (string, error) {
	if dir := os.Getenv(env); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

func appDir(env string, fallback ...string) (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	base, err := BaseDir(env, fallback...)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

// GetConfigFile is $XDG_CONFIG_HOME/themesync/config.toml.
func GetConfigFile() (string, error) {
	dir, err := appDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetDatabaseFile is $XDG_DATA_HOME/themesync/themesync.db.
func GetDatabaseFile() (string, error) {
	dir, err := appDir("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, databaseName), nil
}

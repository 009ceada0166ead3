package config

import (
	"os"
	"path/filepath"
	"strings"
)

// BaseDir is where noteboard keeps its config, token, database and logs.
// NOTEBOARD_HOME overrides the default of ~/.noteboard.
func BaseDir() (string, error) {
	if override := strings.TrimSpace(os.Getenv("NOTEBOARD_HOME")); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".noteboard"), nil
}

func ConfigPath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "config.toml"), nil
}

func DataDir() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "data"), nil
}

func DBPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "noteboard.db"), nil
}

func TokenPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "token"), nil
}

func ServerLogPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "server.log"), nil
}

// Package config loads the TOML configuration governing the server
// address, logging, the UI locale and per-card defaults.
package config

import (
	"errors"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultServerAddress = "127.0.0.1:7799"

const (
	// DefaultMaxNotes caps how many notes a card shows at once.
	DefaultMaxNotes = 8
)

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
	Cards   CardsConfig   `toml:"cards"`
}

type ServerConfig struct {
	Address string `toml:"address"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

// UIConfig carries the optional startup locale override. Empty means
// follow the server-side setting.
type UIConfig struct {
	Locale string `toml:"locale"`
}

type CardsConfig struct {
	Notes NotesCardConfig `toml:"notes"`
}

type NotesCardConfig struct {
	MaxNotes       int   `toml:"max_notes"`
	ShowCategories *bool `toml:"show_categories"`
}

func Default() Config {
	show := true
	return Config{
		Server:  ServerConfig{Address: defaultServerAddress},
		Logging: LoggingConfig{Level: "info"},
		UI:      UIConfig{},
		Cards: CardsConfig{
			Notes: NotesCardConfig{
				MaxNotes:       DefaultMaxNotes,
				ShowCategories: &show,
			},
		},
	}
}

// Load reads the config file if present, layering it over defaults.
// A missing file is not an error.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return loadFromPath(path)
}

func loadFromPath(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg.normalized(), nil
}

func (c Config) normalized() Config {
	if strings.TrimSpace(c.Server.Address) == "" {
		c.Server.Address = defaultServerAddress
	}
	c.UI.Locale = strings.TrimSpace(c.UI.Locale)
	if c.Cards.Notes.MaxNotes <= 0 {
		c.Cards.Notes.MaxNotes = DefaultMaxNotes
	}
	if c.Cards.Notes.ShowCategories == nil {
		show := true
		c.Cards.Notes.ShowCategories = &show
	}
	return c
}

func (c Config) ServerAddress() string {
	addr := strings.TrimSpace(c.Server.Address)
	if addr == "" {
		return defaultServerAddress
	}
	return addr
}

// BaseURL is the address the client dials, derived from the configured
// host and the fixed port.
func (c Config) BaseURL() string {
	return "http://" + c.ServerAddress()
}

// Render emits the effective config as TOML, for `noteboard config`.
func (c Config) Render() (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

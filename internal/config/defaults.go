package config

import (
	"github.com/ziadkadry99/devlog-hub/internal/content"
	"github.com/ziadkadry99/devlog-hub/internal/theme"
)

// DefaultConfig returns a Config with sensible defaults, pointed at the
// public dev-logs repository.
func DefaultConfig() *Config {
	return &Config{
		RawBase:     "https://raw.githubusercontent.com",
		ForgeBase:   "https://github.com",
		Owner:       "ziadkadry99",
		Repo:        "dev-logs",
		Prefix:      "DEV LOGS - ",
		Port:        8080,
		AllowAll:    false,
		ThemeCookie: theme.DefaultCookie,
		ExportDir:   "exports",
	}
}

// Source builds the content source from the configured remote fields.
func (c *Config) Source() content.Source {
	return content.Source{
		RawBase:   c.RawBase,
		ForgeBase: c.ForgeBase,
		Owner:     c.Owner,
		Repo:      c.Repo,
		Prefix:    c.Prefix,
	}
}

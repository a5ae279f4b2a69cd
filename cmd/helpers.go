package cmd

import (
	"fmt"

	"github.com/ziadkadry99/devlog-hub/internal/config"
	"github.com/ziadkadry99/devlog-hub/internal/content"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `devlog init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newFetcher builds the content fetcher from config.
func newFetcher(cfg *config.Config) *content.Fetcher {
	return content.NewFetcher(cfg.Source())
}

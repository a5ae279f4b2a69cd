package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// forgePresets maps a forge choice to its raw-content and browsable hosts.
var forgePresets = map[string]struct {
	RawBase   string
	ForgeBase string
}{
	"github.com": {RawBase: "https://raw.githubusercontent.com", ForgeBase: "https://github.com"},
	"gitlab.com": {RawBase: "https://gitlab.com", ForgeBase: "https://gitlab.com"},
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .devlog.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to devlog! Let's configure your content source.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Forge selection.
	forgePrompt := promptui.Select{
		Label: "Select content host",
		Items: []string{"github.com", "gitlab.com"},
	}
	_, forge, err := forgePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("forge selection: %w", err)
	}
	preset := forgePresets[forge]
	cfg.RawBase = preset.RawBase
	cfg.ForgeBase = preset.ForgeBase

	// 2. Repository coordinates.
	ownerPrompt := promptui.Prompt{
		Label:   "Repository owner",
		Default: cfg.Owner,
	}
	if cfg.Owner, err = ownerPrompt.Run(); err != nil {
		return nil, fmt.Errorf("owner: %w", err)
	}

	repoPrompt := promptui.Prompt{
		Label:   "Repository name",
		Default: cfg.Repo,
	}
	if cfg.Repo, err = repoPrompt.Run(); err != nil {
		return nil, fmt.Errorf("repo: %w", err)
	}

	prefixPrompt := promptui.Prompt{
		Label:   "Document filename prefix",
		Default: cfg.Prefix,
	}
	if cfg.Prefix, err = prefixPrompt.Run(); err != nil {
		return nil, fmt.Errorf("prefix: %w", err)
	}

	// 3. Viewer port.
	portPrompt := promptui.Prompt{
		Label:   "Viewer port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(".devlog.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to .devlog.yml")
	return cfg, nil
}

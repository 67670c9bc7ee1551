package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// CommitConfig holds the commit message templates.
// Templates may contain the {folder} placeholder.
type CommitConfig struct {
	AddMessage       string `toml:"add_message"`
	UpdateMessage    string `toml:"update_message"`
	UpdateOneMessage string `toml:"update_one_message"`
}

// UpdateConfig holds update-related configuration
type UpdateConfig struct {
	Rebase bool `toml:"rebase"` // merge remote changes with --rebase instead of --merge
}

// Config holds the subm configuration
type Config struct {
	Color  string       `toml:"color"` // "auto", "always", or "never"
	Commit CommitConfig `toml:"commit"`
	Update UpdateConfig `toml:"update"`
}

// Default commit message templates
const (
	DefaultAddMessage       = "Add submodule {folder}"
	DefaultUpdateMessage    = "Update submodules"
	DefaultUpdateOneMessage = "Update submodule {folder}"
)

// Default returns the default configuration
func Default() Config {
	return Config{
		Color: "auto",
		Commit: CommitConfig{
			AddMessage:       DefaultAddMessage,
			UpdateMessage:    DefaultUpdateMessage,
			UpdateOneMessage: DefaultUpdateOneMessage,
		},
	}
}

// Message expands a commit message template for the given folder.
func Message(template, folder string) string {
	return strings.ReplaceAll(template, "{folder}", folder)
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "subm", "config.toml"), nil
}

// Load reads config from ~/.config/subm/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a TOML config document.
// Empty fields fall back to their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Config{}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Color != "" && cfg.Color != "auto" && cfg.Color != "always" && cfg.Color != "never" {
		return Default(), fmt.Errorf("invalid color %q: must be \"auto\", \"always\" or \"never\"", cfg.Color)
	}

	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	if cfg.Commit.AddMessage == "" {
		cfg.Commit.AddMessage = DefaultAddMessage
	}
	if cfg.Commit.UpdateMessage == "" {
		cfg.Commit.UpdateMessage = DefaultUpdateMessage
	}
	if cfg.Commit.UpdateOneMessage == "" {
		cfg.Commit.UpdateOneMessage = DefaultUpdateOneMessage
	}

	return cfg, nil
}

// WriteDefault writes the default config file.
// Fails if the file already exists, unless force is set.
func WriteDefault(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}

	return path, nil
}

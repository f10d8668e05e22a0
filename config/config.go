package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/ionut-t/gomotion/core"
)

// Config holds the motion and display configuration
type Config struct {
	Motion  MotionConfig  `toml:"motion"`
	Display DisplayConfig `toml:"display"`
}

// MotionConfig configures caret mode and word boundaries
type MotionConfig struct {
	Caret       string `toml:"caret"`       // "exclusive" or "inclusive"
	Punctuation string `toml:"punctuation"` // Characters that split vi "words"
}

// DisplayConfig configures the demo viewer
type DisplayConfig struct {
	Language    string `toml:"language"`
	Theme       string `toml:"theme"`
	LineNumbers bool   `toml:"line_numbers"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Motion: MotionConfig{
			Caret:       "exclusive",
			Punctuation: core.DefaultPunctuation,
		},
		Display: DisplayConfig{
			Language:    "markdown",
			Theme:       "catppuccin-mocha",
			LineNumbers: true,
		},
	}
}

// DefaultPath returns the config file location
// ($XDG_CONFIG_HOME/gomotion/config.toml, falling back to ~/.config)
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gomotion", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML on top of the defaults and validates the result.
// Keys absent from the input keep their default values.
func Decode(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config to path, creating the directory if needed
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Validate checks the caret mode and compiles the punctuation set once.
func (c Config) Validate() error {
	if _, err := c.CaretMode(); err != nil {
		return err
	}
	if _, err := c.Classifiers(); err != nil {
		return err
	}
	return nil
}

func (c Config) CaretMode() (core.CaretMode, error) {
	return core.ParseCaretMode(c.Motion.Caret)
}

// Classifiers compiles the word and WORD classifiers for the configured punctuation
func (c Config) Classifiers() (*core.Classifiers, error) {
	return core.NewClassifiers(c.Motion.Punctuation)
}

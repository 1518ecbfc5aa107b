// Package config provides TOML file configuration with defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig mirrors the TOML config file. Pointer fields distinguish an
// absent setting from an explicit zero.
type FileConfig struct {
	Test   TestConfig   `toml:"test"`
	Speech SpeechConfig `toml:"speech"`
}

// TestConfig maps test-round settings.
type TestConfig struct {
	Size               *int  `toml:"size"`
	MistakeCap         *int  `toml:"mistake-cap"`
	GlobalMistakeScope *bool `toml:"global-mistake-scope"`
	FeedbackMS         *int  `toml:"feedback-ms"`
}

// SpeechConfig maps text-to-speech settings.
type SpeechConfig struct {
	Provider *string `toml:"provider"`
	Voice    *string `toml:"voice"`
}

// Config is the resolved configuration: file values over defaults.
type Config struct {
	TestSize           int
	MistakeCap         int
	GlobalMistakeScope bool
	FeedbackDelay      time.Duration
	SpeechProvider     string
	SpeechVoice        string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TestSize:           10,
		MistakeCap:         5,
		GlobalMistakeScope: true,
		FeedbackDelay:      1500 * time.Millisecond,
		SpeechProvider:     "auto",
		SpeechVoice:        "Kore",
	}
}

// Load reads the TOML file at path and resolves it against the defaults.
// A missing file yields the defaults; a malformed one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to stat config: %w", err)
	}

	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	return resolve(cfg, fc), nil
}

func resolve(cfg Config, fc FileConfig) Config {
	if fc.Test.Size != nil && *fc.Test.Size > 0 {
		cfg.TestSize = *fc.Test.Size
	}
	if fc.Test.MistakeCap != nil && *fc.Test.MistakeCap > 0 {
		cfg.MistakeCap = *fc.Test.MistakeCap
	}
	if fc.Test.GlobalMistakeScope != nil {
		cfg.GlobalMistakeScope = *fc.Test.GlobalMistakeScope
	}
	if fc.Test.FeedbackMS != nil && *fc.Test.FeedbackMS >= 0 {
		cfg.FeedbackDelay = time.Duration(*fc.Test.FeedbackMS) * time.Millisecond
	}
	if fc.Speech.Provider != nil {
		cfg.SpeechProvider = *fc.Speech.Provider
	}
	if fc.Speech.Voice != nil && *fc.Speech.Voice != "" {
		cfg.SpeechVoice = *fc.Speech.Voice
	}
	return cfg
}

// DefaultPath returns the default TOML config location under the XDG
// config home.
func DefaultPath() string {
	return filepath.Join(xdgConfigHome(), "pindrill", "config.toml")
}

func xdgConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

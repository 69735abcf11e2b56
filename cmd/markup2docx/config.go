package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-markup2docx/internal/fileutil"
	"github.com/alnah/go-markup2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds startup configuration for the listener. Read once, immutable
// afterwards.
type Config struct {
	From           string `yaml:"from"`           // source format (default typst)
	App            string `yaml:"app"`            // word or wps (default word)
	TitlePattern   string `yaml:"titlePattern"`   // empty = app default
	StraightQuotes bool   `yaml:"straightQuotes"` // fold curly quotes
	Hotkey         string `yaml:"hotkey"`         // default ctrl+shift+t
	KeepFragment   string `yaml:"keepFragment"`   // directory, empty = off
	Notify         bool   `yaml:"notify"`         // success toast
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		From:   "typst",
		App:    "word",
		Hotkey: "ctrl+shift+t",
	}
}

// applyDefaults fills fields a config file may have left empty.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.From == "" {
		c.From = def.From
	}
	if c.App == "" {
		c.App = def.App
	}
	if c.Hotkey == "" {
		c.Hotkey = def.Hotkey
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, then the user config dir.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "markup2docx", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

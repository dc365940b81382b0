// Package config loads the optional vitrine YAML configuration file.
package config

import (
	"os"
	"path/filepath"
)

// Defaults applied to any field left empty.
const (
	DefaultTheme     = "light"
	DefaultLocale    = "en-US"
	DefaultLogLevel  = "info"
	DefaultDocsStyle = "dark"
	DefaultDocsWrap  = 80
)

// Config is the root configuration document.
type Config struct {
	Theme     string        `yaml:"theme" validate:"omitempty,oneof=light dark"`
	Locale    string        `yaml:"locale" validate:"omitempty,bcp47"`
	StartPage string        `yaml:"start_page" validate:"omitempty,page_id"`
	Sidebar   SidebarConfig `yaml:"sidebar"`
	Log       LogConfig     `yaml:"log"`
	Docs      DocsConfig    `yaml:"docs"`
}

// SidebarConfig holds the initial sidebar state.
type SidebarConfig struct {
	// Open is nil when the file does not mention it.
	Open *bool `yaml:"open"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	// File receives logs while the gallery owns the terminal. Empty discards them.
	File string `yaml:"file"`
}

// DocsConfig controls markdown rendering.
type DocsConfig struct {
	Style string `yaml:"style" validate:"omitempty,oneof=ascii dark dracula light notty pink tokyo-night"`
	Wrap  int    `yaml:"wrap" validate:"omitempty,min=20,max=200"`
}

// Default returns a configuration with every default filled in.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every empty field with its default.
func (c *Config) ApplyDefaults() {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.Sidebar.Open == nil {
		open := true
		c.Sidebar.Open = &open
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Docs.Style == "" {
		c.Docs.Style = DefaultDocsStyle
	}
	if c.Docs.Wrap == 0 {
		c.Docs.Wrap = DefaultDocsWrap
	}
}

// SidebarOpen reports the initial sidebar state.
func (c *Config) SidebarOpen() bool {
	return c.Sidebar.Open == nil || *c.Sidebar.Open
}

// DefaultPath returns $XDG_CONFIG_HOME/vitrine/config.yaml, falling back to
// the platform config directory.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, "vitrine", "config.yaml"), nil
}

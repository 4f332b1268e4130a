// Package config manages pbc configuration: an optional YAML file, a .env
// file and PBC_* environment variables.
package config

import (
	"github.com/ironsheep/backdrop-mcp/internal/layout"
)

// Config represents the application configuration.
type Config struct {
	// SaveDir is the directory every save writes to unless overridden.
	SaveDir  string `yaml:"save_dir"`
	LogLevel string `yaml:"log_level"`
	Silent   bool   `yaml:"silent"`

	// Margins are the default margins for every background. Recipes and tool
	// calls override individual values.
	Margins layout.Config `yaml:"margins"`

	Preview PreviewConfig `yaml:"preview"`
}

// PreviewConfig controls the images returned by background_preview.
type PreviewConfig struct {
	Scale  float64 `yaml:"scale"`
	Guides bool    `yaml:"guides"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Preview: PreviewConfig{
			Scale:  1.0,
			Guides: true,
		},
	}
}

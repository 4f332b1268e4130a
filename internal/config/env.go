package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfig   = "PBC_CONFIG"
	EnvSaveDir  = "PBC_SAVE_DIR"
	EnvLogLevel = "PBC_LOG_LEVEL"
	EnvSilent   = "PBC_SILENT"
)

// DefaultEnvFile is the .env file read from the working directory.
const DefaultEnvFile = ".env"

// LoadEnv reads KEY=value pairs from the given files into the process
// environment. Variables that are already set are not overridden. Missing files
// are skipped; it returns how many files were read.
func LoadEnv(paths ...string) (int, error) {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}

	loaded := 0
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, fmt.Errorf("failed to load %s: %w", p, err)
		}
		loaded++
	}
	return loaded, nil
}

// ApplyEnv overrides fields with the PBC_* environment variables that are set.
func (c *Config) ApplyEnv() {
	c.SaveDir = GetEnvOrDefault(EnvSaveDir, c.SaveDir)
	c.LogLevel = GetEnvOrDefault(EnvLogLevel, c.LogLevel)
	if os.Getenv(EnvSilent) != "" {
		c.Silent = GetEnvBool(EnvSilent)
	}
}

// GetEnvOrDefault returns the environment variable value or a default.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvBool returns true if the environment variable is set to "true", "1" or "yes".
func GetEnvBool(key string) bool {
	value := strings.ToLower(os.Getenv(key))
	return value == "true" || value == "1" || value == "yes"
}

// Package config loads CLI configuration from YAML files with strict
// parsing: unknown fields are rejected so typos fail loudly.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file exceeds maximum size")
)

// maxConfigSize limits config input to prevent memory exhaustion (1MB).
const maxConfigSize = 1 << 20

// Config holds all configuration for the esp2kanji CLI.
type Config struct {
	Rules        string             `yaml:"rules"`        // rule JSON path (empty = embedded sample)
	Placeholders PlaceholdersConfig `yaml:"placeholders"` //
	Format       string             `yaml:"format"`       // ruby-html, html, parentheses, text
	Notation     string             `yaml:"notation"`     // circumflex, x, caret
	Workers      int                `yaml:"workers"`      // parallel chunk workers (0/1 = serial)
	Timeout      string             `yaml:"timeout"`      // PDF render timeout, e.g. "30s"
	Output       OutputConfig       `yaml:"output"`       //
	Serve        ServeConfig        `yaml:"serve"`        //
}

// PlaceholdersConfig points at the two sentinel list files. Empty paths
// mean sentinels are generated internally.
type PlaceholdersConfig struct {
	Skip      string `yaml:"skip"`      // %...% sentinel list
	Localized string `yaml:"localized"` // @...@ sentinel list
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // default output directory (empty = alongside source)
}

// ServeConfig defines HTTP server options.
type ServeConfig struct {
	Addr string `yaml:"addr"` // listen address (default ":8080")
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Format:   "text",
		Notation: "circumflex",
		Serve:    ServeConfig{Addr: ":8080"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// Names (no path separator) are searched in the current directory and then
// ~/.config/esp2kanji/, trying .yaml then .yml. Returns an error if the
// file is not found; there is no silent fallback.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), maxConfigSize)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "esp2kanji", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the configuration file structure
type Config struct {
	InputPath string `json:"input_path"`
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`
	LogLevel  string `json:"log_level"`
	Workers   int    `json:"workers"`
}

// Load loads configuration from config.json file
func Load() (*Config, error) {
	configPath := "config.json"

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		return defaults(&Config{}), nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return defaults(&config), nil
}

func defaults(c *Config) *Config {
	if c.Format == "" {
		c.Format = "png"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Workers <= 0 {
		c.Workers = 8
	}
	return c
}

// ResolveInputPath resolves the input path, using input_path from config if needed
func ResolveInputPath(inputPath string, config *Config) string {
	// If it's an absolute path or contains path separators, use as-is
	if filepath.IsAbs(inputPath) || strings.Contains(inputPath, string(filepath.Separator)) {
		return inputPath
	}

	// If config has input_path and input looks like just a filename, combine them
	if config != nil && config.InputPath != "" {
		return filepath.Join(config.InputPath, inputPath)
	}

	// Otherwise use as-is
	return inputPath
}

package task

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".todo.yaml"

// ConfigOptions holds configurable options for locating the config file
type ConfigOptions struct {
	Dir  string // Directory searched for .todo.yaml (default: working directory)
	Path string // Explicit config file; overrides Dir
}

// DefaultConfigOptions returns the default config options
func DefaultConfigOptions() ConfigOptions {
	return ConfigOptions{Dir: "."}
}

// Config holds todo configuration
type Config struct {
	File     string `yaml:"file,omitempty"`      // Tasks file path
	NoColor  bool   `yaml:"no_color,omitempty"`  // Disable styled output
	LogLevel string `yaml:"log_level,omitempty"` // debug, info, warn or error
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		File:     DefaultTasksFile,
		LogLevel: "warn",
	}
}

// ConfigPath resolves the config file location for the given options
func (o ConfigOptions) ConfigPath() string {
	if o.Path != "" {
		return o.Path
	}
	return filepath.Join(o.Dir, defaultConfigFile)
}

// LoadConfigWithOptions loads configuration with custom options. A missing
// file is not an error; unset fields keep their defaults.
func LoadConfigWithOptions(opts ConfigOptions) (*Config, error) {
	path := opts.ConfigPath()
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if config.File == "" {
		config.File = DefaultTasksFile
	}

	return config, nil
}

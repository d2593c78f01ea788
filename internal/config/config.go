// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"tariff-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Data contains tariff dataset configuration
	Data DataConfig `json:"data"`

	// Interpreter contains duty-text interpreter configuration
	Interpreter InterpreterConfig `json:"interpreter"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// DataConfig locates the tariff dataset files
type DataConfig struct {
	// Directory is the directory holding the dataset files
	Directory string `json:"directory"`

	// GeneralFile is the general rates and descriptions file
	GeneralFile string `json:"general_file"`

	// Section301File is the Section 301 list file
	Section301File string `json:"section301_file"`

	// CodeColumn is the raw HTS code column name
	CodeColumn string `json:"code_column"`

	// ScenariosFile optionally overrides the scenario catalog (HCL)
	ScenariosFile string `json:"scenarios_file,omitempty"`
}

// InterpreterConfig configures the duty-text interpretation collaborator
type InterpreterConfig struct {
	// Endpoint is the interpretation service URL; empty selects the
	// built-in heuristic interpreter
	Endpoint string `json:"endpoint,omitempty"`

	// TimeoutSeconds bounds the single best-effort call
	TimeoutSeconds int `json:"timeout_seconds"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Data: DataConfig{
			Directory:      "data",
			GeneralFile:    "Final_HTS.csv",
			Section301File: "Section_301.csv",
			CodeColumn:     "HTS_Code",
		},
		Interpreter: InterpreterConfig{
			TimeoutSeconds: 30,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}

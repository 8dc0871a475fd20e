package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the configuration for the analyzer bundle
type Config struct {
	// Analyzer configuration
	Analyzers struct {
		CloserType   AnalyzerConfig `yaml:"closer_type" json:"closer_type"`
		CloseFields  AnalyzerConfig `yaml:"close_fields" json:"close_fields"`
		Finalizer    AnalyzerConfig `yaml:"finalizer" json:"finalizer"`
		NativeHandle AnalyzerConfig `yaml:"native_handle" json:"native_handle"`
		ParamCount   AnalyzerConfig `yaml:"param_count" json:"param_count"`
	} `yaml:"analyzers" json:"analyzers"`

	// Thresholds for the design checks
	Thresholds struct {
		MaxParameters   int `yaml:"max_parameters" json:"max_parameters"`
		MaxReturnValues int `yaml:"max_return_values" json:"max_return_values"`
	} `yaml:"thresholds" json:"thresholds"`

	// Bundle toggles third-party analyzers onto the same multichecker run
	Bundle struct {
		Staticcheck bool `yaml:"staticcheck" json:"staticcheck"` // honnef.co SA analyzers
		Bodyclose   bool `yaml:"bodyclose" json:"bodyclose"`     // HTTP response body closing
		Decorder    bool `yaml:"decorder" json:"decorder"`       // declaration order
	} `yaml:"bundle" json:"bundle"`
}

// AnalyzerConfig represents configuration for a single analyzer
type AnalyzerConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Severity string `yaml:"severity,omitempty" json:"severity,omitempty"` // Override default severity
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	config := &Config{}

	config.Analyzers.CloserType.Enabled = true
	config.Analyzers.CloseFields.Enabled = true
	config.Analyzers.Finalizer.Enabled = true
	config.Analyzers.NativeHandle.Enabled = true
	config.Analyzers.ParamCount.Enabled = true

	config.Thresholds.MaxParameters = 5
	config.Thresholds.MaxReturnValues = 3

	// Third-party bundles stay opt-in
	config.Bundle.Staticcheck = false
	config.Bundle.Bodyclose = false
	config.Bundle.Decorder = false

	return config
}

// findConfigPath searches for a config file in common locations
func findConfigPath() string {
	locations := []string{
		".relguard.yaml",
		".relguard.yml",
		".relguard.json",
		"relguard.yaml",
		"relguard.yml",
		"relguard.json",
	}

	// Check the current directory
	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	// Check home directory
	home, _ := os.UserHomeDir()
	if home == "" {
		return ""
	}

	for _, loc := range locations {
		configPath := filepath.Join(home, ".config", "relguard", loc)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}
	return ""
}

// LoadConfig loads configuration from a file or returns default
func LoadConfig(path string) (*Config, error) {
	resolvedPath := resolveConfigPath(path)
	if resolvedPath == "" {
		return DefaultConfig(), nil
	}

	file, err := os.Open(resolvedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return decodeConfigFile(file, resolvedPath)
}

func resolveConfigPath(path string) string {
	if path != "" {
		return path
	}
	return findConfigPath()
}

func decodeConfigFile(r io.ReadSeeker, path string) (*Config, error) {
	config := &Config{}
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		if err := json.NewDecoder(r).Decode(config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	case ".yaml", ".yml":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML config: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		if err := tryJSONThenYAML(r, config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

func tryJSONThenYAML(r io.ReadSeeker, config *Config) error {
	if err := json.NewDecoder(r).Decode(config); err == nil {
		return nil
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to reset file position: %w", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read config for YAML parsing: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config (tried JSON and YAML): %w", err)
	}
	return nil
}

// GetAnalyzerConfig returns config for a specific analyzer
func (c *Config) GetAnalyzerConfig(analyzerName string) AnalyzerConfig {
	analyzerConfigMap := map[string]AnalyzerConfig{
		"closertype":   c.Analyzers.CloserType,
		"closefields":  c.Analyzers.CloseFields,
		"finalizer":    c.Analyzers.Finalizer,
		"nativehandle": c.Analyzers.NativeHandle,
		"paramcount":   c.Analyzers.ParamCount,
	}

	if cfg, ok := analyzerConfigMap[strings.ToLower(analyzerName)]; ok {
		return cfg
	}
	return AnalyzerConfig{Enabled: true}
}

// Package config loads pokernuts settings from an HCL file, an optional .env
// file and the process environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/lox/pokernuts/poker"
)

// Environment variables that override file settings.
const (
	EnvDisplay  = "POKERNUTS_DISPLAY"
	EnvLogLevel = "POKERNUTS_LOG_LEVEL"
	EnvWorkers  = "POKERNUTS_WORKERS"
)

// Config is the resolved configuration.
type Config struct {
	Display   DisplaySettings
	Log       LogSettings
	Evaluator EvaluatorSettings
}

// DisplaySettings controls how cards are printed.
type DisplaySettings struct {
	Mode string `hcl:"mode,optional"`
}

// LogSettings controls logging.
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// EvaluatorSettings controls hand evaluation.
type EvaluatorSettings struct {
	// Workers is the number of goroutines used to rank the 21 five-card
	// subsets of a seven-card hand; 0 or 1 evaluates sequentially.
	Workers int `hcl:"workers,optional"`
}

// fileConfig mirrors the HCL layout; every block is optional.
type fileConfig struct {
	Display   *DisplaySettings   `hcl:"display,block"`
	Log       *LogSettings       `hcl:"log,block"`
	Evaluator *EvaluatorSettings `hcl:"evaluator,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Display:   DisplaySettings{Mode: "ascii"},
		Log:       LogSettings{Level: "warn"},
		Evaluator: EvaluatorSettings{Workers: 1},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	config := Default()
	if filename == "" {
		return config, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return config, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if fc.Display != nil && fc.Display.Mode != "" {
		config.Display.Mode = fc.Display.Mode
	}
	if fc.Log != nil && fc.Log.Level != "" {
		config.Log.Level = fc.Log.Level
	}
	if fc.Evaluator != nil && fc.Evaluator.Workers != 0 {
		config.Evaluator.Workers = fc.Evaluator.Workers
	}
	return config, nil
}

// LoadEnvFile loads KEY=value pairs from a .env file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadEnvFile(filename string) error {
	if filename == "" {
		return nil
	}
	if err := godotenv.Load(filename); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return nil
}

// ApplyEnv overrides settings from environment variables read through lookup.
// Pass os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDisplay); ok && v != "" {
		c.Display.Mode = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWorkers, v, err)
		}
		c.Evaluator.Workers = n
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := poker.ParseDisplayMode(c.Display.Mode); err != nil {
		return err
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Evaluator.Workers < 0 {
		return fmt.Errorf("evaluator workers cannot be negative")
	}
	return nil
}

// DisplayMode returns the parsed display mode. Call Validate first.
func (c *Config) DisplayMode() poker.DisplayMode {
	mode, _ := poker.ParseDisplayMode(c.Display.Mode)
	return mode
}

// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Default values applied by Defaults.
const (
	DefaultTimeoutSeconds = 10
	DefaultPort           = 8080
	DefaultSummaryLength  = 400
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	URL            string `json:"url,omitempty" validate:"omitempty,max=2048"`       // Company website to profile
	Out            string `json:"out,omitempty"`                                      // Output file for the JSON record
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"gte=0,lte=300"` // Per-page fetch timeout
	UserAgent      string `json:"user_agent,omitempty" validate:"omitempty,max=512"`
	SummaryLength  int    `json:"summary_length,omitempty" validate:"gte=0,lte=100000"` // Characters kept in what_they_do

	Verbose        bool `json:"verbose,omitempty"`         // Print detailed debug information
	ValidateOutput bool `json:"validate_output,omitempty"` // Check the record against the JSON Schema

	Port int `json:"port,omitempty" validate:"gte=0,lte=65535"` // HTTP API port
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		TimeoutSeconds: DefaultTimeoutSeconds,
		Port:           DefaultPort,
		SummaryLength:  DefaultSummaryLength,
	}
}

// Timeout returns the per-page fetch timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("config error: '%s' failed '%s' check (value: %v)", fe.Field(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("config error: %w", err)
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.UserAgent == "" {
		result.UserAgent = defaults.UserAgent
	}

	// Int fields: use default if zero
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.SummaryLength == 0 {
		result.SummaryLength = defaults.SummaryLength
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: true in either wins
	result.Verbose = result.Verbose || defaults.Verbose
	result.ValidateOutput = result.ValidateOutput || defaults.ValidateOutput

	return result
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvTimeoutSeconds = "PROFILER_TIMEOUT_SECONDS"
	EnvUserAgent      = "PROFILER_USER_AGENT"
	EnvPort           = "PROFILER_PORT"
	EnvSummaryLength  = "PROFILER_SUMMARY_LENGTH"
)

// FromEnv builds a partial Config from environment variables. Unset
// variables leave the corresponding field zero. The CLI loads .env with
// godotenv before calling this.
func FromEnv() (Config, error) {
	var cfg Config
	var err error

	cfg.UserAgent = os.Getenv(EnvUserAgent)

	if cfg.TimeoutSeconds, err = intFromEnv(EnvTimeoutSeconds); err != nil {
		return Config{}, err
	}
	if cfg.Port, err = intFromEnv(EnvPort); err != nil {
		return Config{}, err
	}
	if cfg.SummaryLength, err = intFromEnv(EnvSummaryLength); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func intFromEnv(key string) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return v, nil
}

// Resolve layers file, environment and built-in defaults, in that order of
// precedence, and validates the result. An empty path skips the file.
func Resolve(path string) (*Config, error) {
	fileCfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		fileCfg = loaded
	}

	envCfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	merged := fileCfg.MergeWithDefaults(envCfg.MergeWithDefaults(Defaults()))
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

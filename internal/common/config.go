package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string        `toml:"environment"` // "development" or "production"
	Server      ServerConfig  `toml:"server"`
	Logging     LoggingConfig `toml:"logging"`
	Ingest      IngestConfig  `toml:"ingest"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Format     string   `toml:"format"`      // "json" or "text"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for log lines
}

// IngestConfig controls the source normalizers
type IngestConfig struct {
	UserAgent         string        `toml:"user_agent"`          // User agent for outbound fetches
	RequestTimeout    time.Duration `toml:"request_timeout"`     // HTTP request timeout
	MaxBodySize       int64         `toml:"max_body_size"`       // Maximum response body size in bytes
	RequestsPerSecond float64       `toml:"requests_per_second"` // Outbound fetch pacing
	NormalizeMarkdown bool          `toml:"normalize_markdown"`  // Flatten markdown-looking pasted text before analysis
}

// LoadFromFiles loads configuration with precedence:
// defaults -> file1 -> file2 -> ... -> environment variables.
// Later config files override earlier ones. Missing files are an error;
// passing no files loads defaults plus environment overrides.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := DefaultConfig()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyFlagOverrides applies command-line flag values (highest priority).
// Zero values mean the flag was not set.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks configuration invariants
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Ingest.RequestTimeout <= 0 {
		return fmt.Errorf("ingest request_timeout must be positive")
	}
	if c.Ingest.MaxBodySize <= 0 {
		return fmt.Errorf("ingest max_body_size must be positive")
	}
	if c.Ingest.RequestsPerSecond <= 0 {
		return fmt.Errorf("ingest requests_per_second must be positive")
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("DIGERO_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("DIGERO_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("DIGERO_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Logging configuration
	if level := os.Getenv("DIGERO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("DIGERO_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv("DIGERO_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Ingest configuration
	if ua := os.Getenv("DIGERO_INGEST_USER_AGENT"); ua != "" {
		config.Ingest.UserAgent = ua
	}
	if timeout := os.Getenv("DIGERO_INGEST_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Ingest.RequestTimeout = d
		}
	}
	if size := os.Getenv("DIGERO_INGEST_MAX_BODY_SIZE"); size != "" {
		if s, err := strconv.ParseInt(size, 10, 64); err == nil {
			config.Ingest.MaxBodySize = s
		}
	}
	if rps := os.Getenv("DIGERO_INGEST_REQUESTS_PER_SECOND"); rps != "" {
		if r, err := strconv.ParseFloat(rps, 64); err == nil {
			config.Ingest.RequestsPerSecond = r
		}
	}
}

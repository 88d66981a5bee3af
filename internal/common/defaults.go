// Package common provides shared configuration, logging, and version
// utilities.
package common

import "time"

// DefaultConfig returns the baseline configuration before file, environment,
// and flag overrides are applied. This is the single source of truth for
// default values.
func DefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8085,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
		Ingest: IngestConfig{
			UserAgent:         "digero/1.0 (+https://github.com/ternarybob/digero)",
			RequestTimeout:    30 * time.Second,
			MaxBodySize:       10 * 1024 * 1024, // 10 MB
			RequestsPerSecond: 2,
			NormalizeMarkdown: true,
		},
	}
}

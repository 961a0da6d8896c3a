package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds runtime settings, populated from environment variables.
// None of these change the wetness model itself.
type Config struct {
	LogLevel        string
	LogFormat       string
	ChartPath       string
	HTTPAddr        string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:        strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "json")),
		ChartPath:       sharedcfg.EnvOrDefault("CHART_PATH", "wetness_vs_speed.png"),
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ""),
		ShutdownTimeout: shutdownTimeout,
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}
	switch strings.ToLower(filepath.Ext(cfg.ChartPath)) {
	case ".png", ".svg", ".pdf":
	default:
		return nil, fmt.Errorf("invalid CHART_PATH %q: extension must be .png, .svg or .pdf", cfg.ChartPath)
	}

	return cfg, nil
}

// Serve reports whether the chart should be served over HTTP after rendering.
func (c *Config) Serve() bool {
	return c.HTTPAddr != ""
}

// Package config loads application configuration the same way across the
// API server and the CLI: defaults, then an optional JSON file, then a
// .env file, then environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `json:"server"`
	Engine  EngineConfig  `json:"engine"`
	Logging LoggingConfig `json:"logging"`
	Export  ExportConfig  `json:"export"`
}

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	AllowedOrigin   string        `json:"allowed_origin"`
}

// EngineConfig selects the default simulation profile.
type EngineConfig struct {
	DefaultProfile string `json:"default_profile"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `json:"level"`
	// Development switches to the human-readable console encoder.
	Development bool `json:"development"`
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	ReportTitle  string `json:"report_title"`
	ReportAuthor string `json:"report_author"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			AllowedOrigin:   "*",
		},
		Engine: EngineConfig{
			DefaultProfile: "ril-25",
		},
		Logging: LoggingConfig{
			Level:       "info",
			Development: true,
		},
		Export: ExportConfig{
			ReportTitle: "Forest Logging Simulation Report",
		},
	}
}

// Load loads configuration from an optional JSON file and environment
// variables. A missing file is not an error; a malformed one is.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Pick up a local .env if present; real environment variables win.
	_ = godotenv.Load()

	overrideWithEnv(config)

	return config, nil
}

func overrideWithEnv(config *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if origin := os.Getenv("SERVER_ALLOWED_ORIGIN"); origin != "" {
		config.Server.AllowedOrigin = origin
	}
	if profile := os.Getenv("ENGINE_DEFAULT_PROFILE"); profile != "" {
		config.Engine.DefaultProfile = profile
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if dev := os.Getenv("LOG_DEVELOPMENT"); dev != "" {
		if d, err := strconv.ParseBool(dev); err == nil {
			config.Logging.Development = d
		}
	}
	if title := os.Getenv("EXPORT_REPORT_TITLE"); title != "" {
		config.Export.ReportTitle = title
	}
	if author := os.Getenv("EXPORT_REPORT_AUTHOR"); author != "" {
		config.Export.ReportAuthor = author
	}
}

// GetServerAddr returns the server address.
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

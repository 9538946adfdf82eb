package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port            int           `env:"APP_PORT" envDefault:"5555" json:"port"`
	Host            string        `env:"APP_HOST" envDefault:"localhost" json:"host"`
	Environment     string        `env:"APP_ENV" envDefault:"development" json:"environment"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" json:"shutdown_timeout"`

	// Database configuration, either a postgres:// URL, sqlite:///path or a bare file path
	DatabaseURI string `env:"DB_URI" envDefault:"sqlite:///app.db" json:"database_uri"`
	SeedOnStart bool   `env:"SEED_ON_START" envDefault:"true" json:"seed_on_start"`

	// Logging configuration, empty means derive from Environment
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, ShutdownTimeout: %s, DatabaseURI: %s, SeedOnStart: %t, LogLevel: %s}",
		c.Port, c.Host, c.Environment, c.ShutdownTimeout, maskDatabaseURL(c.DatabaseURI), c.SeedOnStart, c.LogLevel)
}

// Level resolves the logrus level, preferring LogLevel over the environment mapping
func (c *Config) Level() logrus.Level {
	if c.LogLevel != "" {
		if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
			return level
		}
		log.Warnf("Invalid LOG_LEVEL %q, falling back to environment default", c.LogLevel)
	}
	return LevelForEnvironment(c.Environment)
}

// LevelForEnvironment maps APP_ENV to a log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}

// LoadConfig reads the configuration from environment variables and returns a Config struct
// Returns an error if any environment variable has an invalid format
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("APP_PORT out of range: %d", config.Port)
	}
	if config.DatabaseURI == "" {
		return nil, fmt.Errorf("DB_URI must not be empty")
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	vars := []string{
		"APP_PORT", "APP_HOST", "APP_ENV", "LOG_LEVEL", "DB_URI", "SEED_ON_START", "SHUTDOWN_TIMEOUT",
	}
	cleanupTestEnv := func() {
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("APP_ENV", "production")
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("DB_URI", "postgres://pizza:hunter2@db:5432/pizzas?sslmode=disable")
		t.Setenv("SEED_ON_START", "false")
		t.Setenv("SHUTDOWN_TIMEOUT", "3s")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "production", config.Environment)
		assert.Equal(t, "warn", config.LogLevel)
		assert.Equal(t, "postgres://pizza:hunter2@db:5432/pizzas?sslmode=disable", config.DatabaseURI)
		assert.False(t, config.SeedOnStart)
		assert.Equal(t, 3*time.Second, config.ShutdownTimeout)
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with out of range port", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "70000")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 5555, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Equal(t, "development", config.Environment)
		assert.Equal(t, "sqlite:///app.db", config.DatabaseURI)
		assert.True(t, config.SeedOnStart)
		assert.Equal(t, 10*time.Second, config.ShutdownTimeout)
		assert.Empty(t, config.LogLevel)
	})
}

func TestConfigString(t *testing.T) {
	config := &Config{
		Port:        5555,
		Host:        "localhost",
		DatabaseURI: "postgres://pizza:hunter2@db:5432/pizzas",
	}

	s := config.String()

	assert.NotContains(t, s, "hunter2")
	assert.Contains(t, s, "pizza:REDACTED@db:5432")
	assert.True(t, strings.HasPrefix(s, "Config{Port: 5555"))
}

func TestConfigLevel(t *testing.T) {
	testCases := []struct {
		name        string
		environment string
		logLevel    string
		expected    logrus.Level
	}{
		{name: "explicit level wins", environment: "production", logLevel: "debug", expected: logrus.DebugLevel},
		{name: "development defaults to debug", environment: "development", expected: logrus.DebugLevel},
		{name: "production defaults to error", environment: "production", expected: logrus.ErrorLevel},
		{name: "unknown environment defaults to info", environment: "staging", expected: logrus.InfoLevel},
		{name: "invalid level falls back to environment", environment: "production", logLevel: "loud", expected: logrus.ErrorLevel},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{Environment: tt.environment, LogLevel: tt.logLevel}
			assert.Equal(t, tt.expected, config.Level())
		})
	}
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}

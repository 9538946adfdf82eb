package database

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	memoryPath = ":memory:"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL connection URL, and the parts of it that are safe to log
	URL  string
	Host string
	User string
	Name string

	// SQLite-specific configuration
	Path string
}

// ParseDatabaseURI builds a DatabaseConfig from a connection string.
// Accepted forms: postgres://..., postgresql://..., sqlite:///relative/path,
// sqlite:////absolute/path, sqlite:// (in memory) and a bare file path.
func ParseDatabaseURI(uri string) (DatabaseConfig, error) {
	uri = strings.TrimSpace(uri)
	switch {
	case uri == "":
		return DatabaseConfig{}, fmt.Errorf("empty database URI")

	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		parsed, err := url.Parse(uri)
		if err != nil {
			return DatabaseConfig{}, fmt.Errorf("invalid postgres URI: %w", err)
		}
		cfg := DatabaseConfig{
			Driver: DriverPostgres,
			URL:    uri,
			Host:   parsed.Host,
			Name:   strings.TrimPrefix(parsed.Path, "/"),
		}
		if parsed.User != nil {
			cfg.User = parsed.User.Username()
		}
		return cfg, nil

	case uri == "sqlite://", uri == "sqlite:///":
		return DatabaseConfig{Driver: DriverSQLite, Path: memoryPath}, nil

	case strings.HasPrefix(uri, "sqlite:///"):
		return DatabaseConfig{Driver: DriverSQLite, Path: strings.TrimPrefix(uri, "sqlite:///")}, nil

	case strings.Contains(uri, "://"):
		return DatabaseConfig{}, fmt.Errorf("unsupported database URI scheme: %s (supported: postgres, sqlite)", strings.SplitN(uri, "://", 2)[0])

	default:
		return DatabaseConfig{Driver: DriverSQLite, Path: uri}, nil
	}
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, User: %s, Password: [REDACTED], Name: %s, Path: %s}",
		c.Driver, c.Host, c.User, c.Name, c.Path)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case DriverPostgres, "postgresql":
		return c.URL
	case DriverSQLite, "":
		// enforce foreign keys, SQLite leaves them off per connection
		sep := "?"
		if strings.Contains(c.Path, "?") {
			sep = "&"
		}
		return c.Path + sep + "_foreign_keys=on"
	default:
		return ""
	}
}

// Package config provides configuration loading for the HomeWise client.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucianookdp/HomeWise/internal/common"
	"github.com/spf13/viper"
)

// Config holds everything the client needs to run.
type Config struct {
	// APIURL is the Apps Script endpoint that writes into the spreadsheet.
	APIURL string
	// DatabasePath locates the local SQLite file holding the session.
	DatabasePath string
}

// Load reads configuration with this precedence:
// 1. Viper configuration (config file or HOMEWISE_ env vars)
// 2. Direct environment variables (HOMEWISE_API_URL, HOMEWISE_DATABASE_PATH)
// 3. Default values
func Load() (*Config, error) {
	cfg := &Config{
		APIURL:       viper.GetString("api.url"),
		DatabasePath: expandPath(viper.GetString("database.path")),
	}

	if cfg.APIURL == "" {
		cfg.APIURL = os.Getenv("HOMEWISE_API_URL")
	}
	if cfg.DatabasePath == "" {
		if v := os.Getenv("HOMEWISE_DATABASE_PATH"); v != "" {
			cfg.DatabasePath = expandPath(v)
		}
	}
	if cfg.DatabasePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.DatabasePath = filepath.Join(home, ".config", "homewise", "homewise.db")
	}

	return cfg, nil
}

// Validate checks that the endpoint is configured. A missing endpoint
// is recoverable: callers turn it into a status message instead of
// aborting startup.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("%w: api.url (HOMEWISE_API_URL) is not set", common.ErrMissingConfig)
	}
	return nil
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home + path[1:]
		}
	}
	return os.ExpandEnv(path)
}

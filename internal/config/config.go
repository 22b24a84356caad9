// Package config handles configuration for usermanager, including defaults,
// JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/credentials"
	"golang.org/x/crypto/bcrypt"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Config holds runtime settings for usermanager.
//
// Fields:
//   - DatabaseDriver: "pgx" for PostgreSQL or "sqlite" for an embedded file.
//   - DatabaseDSN: connection string for the selected driver.
//   - BcryptCost: work factor for newly produced hashes.
//   - RehashOnCostChange: re-hash stored credentials with a different cost on login.
//   - LogLevel: debug, info, warn or error.
//   - ConnectTimeout: upper bound for opening the database and running migrations.
type Config struct {
	DatabaseDriver     string
	DatabaseDSN        string
	BcryptCost         int
	RehashOnCostChange bool
	LogLevel           string
	ConnectTimeout     time.Duration
}

// LoadDefaults populates Config with development defaults: a local SQLite
// file, so the tool runs without a database server.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = DriverSQLite
	c.DatabaseDSN = "file:usermanager.db?_pragma=busy_timeout(5000)"
	c.BcryptCost = credentials.DefaultCost
	c.RehashOnCostChange = false
	c.LogLevel = "info"
	c.ConnectTimeout = 10 * time.Second
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown database driver %q", common.ErrInvalidInput, c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("%w: database DSN is empty", common.ErrInvalidInput)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", common.ErrInvalidInput, c.BcryptCost)
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("%w: connect timeout must be positive", common.ErrInvalidInput)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

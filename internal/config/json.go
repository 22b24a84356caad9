package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/usermanager/internal/flagx"
	"github.com/dmitrijs2005/usermanager/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Pointer fields
// tell an absent key from a zero value, so a partial file only overrides the
// keys it names. Durations go through timex.Duration and accept both "10s"
// and integer nanoseconds.
type JsonConfig struct {
	DatabaseDriver     *string         `json:"database_driver"`
	DatabaseDSN        *string         `json:"database_dsn"`
	BcryptCost         *int            `json:"bcrypt_cost"`
	RehashOnCostChange *bool           `json:"rehash_on_cost_change"`
	LogLevel           *string         `json:"log_level"`
	ConnectTimeout     *timex.Duration `json:"connect_timeout"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flag into config. Without the flag nothing is loaded. An unreadable
// file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DatabaseDriver != nil {
		config.DatabaseDriver = *c.DatabaseDriver
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	if c.RehashOnCostChange != nil {
		config.RehashOnCostChange = *c.RehashOnCostChange
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.ConnectTimeout != nil {
		config.ConnectTimeout = c.ConnectTimeout.Duration
	}
}

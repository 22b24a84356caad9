package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/usermanager/internal/flagx"
)

// ValueFlags lists every flag of the binary that consumes the following
// argument as its value. The CLI uses it to find the command name.
var ValueFlags = []string{"-c", "-config", "-d", "-driver", "-cost", "-l", "-t"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-d string       database DSN
//	-driver string  database driver (pgx or sqlite)
//	-cost int       bcrypt cost for new hashes
//	-rehash         re-hash credentials with a different cost on login
//	-l string       log level
//	-t int          connect timeout, seconds
//
// os.Args is filtered with flagx.FilterArgs first so the command name and
// the -c/-config flag do not reach this flag set.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-driver", "-cost", "-rehash", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabaseDriver, "driver", config.DatabaseDriver, "database driver (pgx|sqlite)")
	fs.IntVar(&config.BcryptCost, "cost", config.BcryptCost, "bcrypt cost")
	fs.BoolVar(&config.RehashOnCostChange, "rehash", config.RehashOnCostChange, "re-hash on cost change")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	connectTimeout := fs.Int("t", int(config.ConnectTimeout.Seconds()), "connect timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ConnectTimeout = time.Duration(*connectTimeout) * time.Second
}

package config

import (
	"flag"
	"fmt"
	"strconv"
	"time"
)

// ParseFlags parses all configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-d database DSN ("memory" for a non-persistent store)
//	-c/-config json file path with configs
//	-connect-timeout connect attempt timeout (e.g., "30s", "1m")
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-app-name widget application name
//	-app-icon widget application icon
//	-show-balance show the wallet balance (true/false)
//	-balance-refresh balance refresh interval (e.g., "30s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var databaseDSN string
	var jsonConfigPath string
	var connectTimeout time.Duration
	var logFile string
	var logLevel string
	var appName string
	var appIcon string
	var showBalance *bool
	var balanceRefresh time.Duration

	fs := flag.NewFlagSet("bitcoin-connect", flag.ContinueOnError)
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "Connect attempt timeout (e.g., 30s, 1m)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&appName, "app-name", "", "Widget application name")
	fs.StringVar(&appIcon, "app-icon", "", "Widget application icon")
	fs.Func("show-balance", "Show wallet balance (true/false)", func(s string) error {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		showBalance = &v
		return nil
	})

	fs.DurationVar(&balanceRefresh, "balance-refresh", 0, "Balance refresh interval (e.g., 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Connect: Connect{
			Timeout: connectTimeout,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		Widget: Widget{
			AppName:     appName,
			AppIcon:     appIcon,
			ShowBalance: showBalance,
		},
		Workers: Workers{
			BalanceRefresh: balanceRefresh,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

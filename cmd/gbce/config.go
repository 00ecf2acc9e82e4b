package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/peter-kozarec/gbce/internal/dbg"
	"github.com/peter-kozarec/gbce/pkg/middleware"
)

const (
	Version = "0.1.0"

	defaultEnv     = dbg.EnvDevelopment
	defaultWindow  = 15 * time.Minute
	defaultMonitor = "all"
)

type Config struct {
	Env          string
	VwapWindow   time.Duration
	MonitorFlags middleware.MonitorFlags
}

// LoadConfig reads an optional .env file and then the GBCE_* environment variables.
func LoadConfig(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load %s: %w", envFile, err)
	}

	window, err := getDuration("GBCE_VWAP_WINDOW", defaultWindow)
	if err != nil {
		return nil, err
	}

	flags, err := parseMonitorFlags(getString("GBCE_MONITOR", defaultMonitor))
	if err != nil {
		return nil, err
	}

	return &Config{
		Env:          getString("GBCE_ENV", defaultEnv),
		VwapWindow:   window,
		MonitorFlags: flags,
	}, nil
}

func parseMonitorFlags(s string) (middleware.MonitorFlags, error) {
	switch s {
	case "all":
		return middleware.MonitorAll, nil
	case "buys":
		return middleware.MonitorBuys, nil
	case "sells":
		return middleware.MonitorSells, nil
	case "none":
		return middleware.MonitorNone, nil
	default:
		return 0, fmt.Errorf("invalid GBCE_MONITOR value %q", s)
	}
}

func getString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: duration must be positive", key)
	}
	return d, nil
}

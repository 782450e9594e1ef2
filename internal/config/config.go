package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	OracleAddress   string
	OracleOrigin    string
	AdminUsername   string
	AdminPassword   string
	SessionSecret   string
	SessionTTL      time.Duration
	StaleAfter      time.Duration
	PollInterval    time.Duration
	WorkerPoolSize  int
	StaleBatchSize  int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress    = ":8080"
	defaultOracleAddress = "https://ethiopianpassportapi.ethiopianairlines.com"
	defaultOracleOrigin  = "https://www.ethiopianpassportservices.gov.et"
	defaultSessionSecret = "change-me-in-production"
	defaultSessionTTL    = 24 * time.Hour

	// The source dashboard commented "3 hours" next to a literal 30 minute
	// interval; the literal value is authoritative.
	defaultStaleAfter = 30 * time.Minute
	// Likewise "10 minutes" next to a literal 10s timer.
	defaultPollInterval = 10 * time.Second

	defaultWorkerPoolSize  = 4
	defaultStaleBatchSize  = 64
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		OracleAddress:   getString(lookup, "ORACLE_ADDRESS", defaultOracleAddress),
		OracleOrigin:    getString(lookup, "ORACLE_ORIGIN", defaultOracleOrigin),
		AdminUsername:   getString(lookup, "ADMIN_USERNAME", ""),
		AdminPassword:   getString(lookup, "ADMIN_PASSWORD", ""),
		SessionSecret:   getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:      getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		StaleAfter:      getDuration(lookup, "STALE_AFTER", defaultStaleAfter),
		PollInterval:    getDuration(lookup, "POLL_INTERVAL", defaultPollInterval),
		WorkerPoolSize:  getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		StaleBatchSize:  getInt(lookup, "STALE_BATCH_SIZE", defaultStaleBatchSize),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("passboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		staleAfterStr      = cfg.StaleAfter.String()
		pollIntervalStr    = cfg.PollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.OracleAddress, "r", cfg.OracleAddress, "Payment status service base URL")
	fs.StringVar(&cfg.OracleOrigin, "origin", cfg.OracleOrigin, "Origin header sent to the status service")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&staleAfterStr, "stale-after", staleAfterStr, "Age after which a pending order is reconciled")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between update polls")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent status probes")
	fs.IntVar(&cfg.StaleBatchSize, "stale-batch", cfg.StaleBatchSize, "Maximum stale orders per reconciliation pass")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.StaleAfter, err = time.ParseDuration(staleAfterStr); err != nil {
		return nil, fmt.Errorf("invalid stale-after: %w", err)
	}

	if cfg.PollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.StaleBatchSize <= 0 {
		cfg.StaleBatchSize = defaultStaleBatchSize
	}

	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = defaultStaleAfter
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin credentials must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

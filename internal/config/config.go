package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	AllowedOrigin     string
	RazorpayKeyID     string
	RazorpayKeySecret string
	RazorpayBaseURL   string
	GoogleSheetID     string
	GoogleClientEmail string
	GooglePrivateKey  string
	LedgerTimeout     time.Duration
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress      = ":5000"
	defaultAllowedOrigin   = "*"
	defaultRazorpayBaseURL = "https://api.razorpay.com"
	defaultLedgerTimeout   = 15 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		AllowedOrigin:     getString(lookup, "FRONTEND_URL", defaultAllowedOrigin),
		RazorpayKeyID:     getString(lookup, "RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getString(lookup, "RAZORPAY_KEY_SECRET", ""),
		RazorpayBaseURL:   getString(lookup, "RAZORPAY_BASE_URL", defaultRazorpayBaseURL),
		GoogleSheetID:     getString(lookup, "GOOGLE_SHEET_ID", ""),
		GoogleClientEmail: getString(lookup, "GOOGLE_SHEETS_CLIENT_EMAIL", ""),
		GooglePrivateKey:  getString(lookup, "GOOGLE_SHEETS_PRIVATE_KEY", ""),
		LedgerTimeout:     getDuration(lookup, "LEDGER_TIMEOUT", defaultLedgerTimeout),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	if port, ok := lookup("PORT"); ok && port != "" {
		cfg.RunAddress = ":" + port
	}

	fs := flag.NewFlagSet("payserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		ledgerTimeoutStr   = cfg.LedgerTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.AllowedOrigin, "origin", cfg.AllowedOrigin, "Allowed CORS origin")
	fs.StringVar(&cfg.RazorpayKeyID, "razorpay-key", cfg.RazorpayKeyID, "Razorpay API key id")
	fs.StringVar(&cfg.RazorpayBaseURL, "razorpay-url", cfg.RazorpayBaseURL, "Razorpay API base URL")
	fs.StringVar(&cfg.GoogleSheetID, "sheet-id", cfg.GoogleSheetID, "Order ledger spreadsheet id")
	fs.StringVar(&ledgerTimeoutStr, "ledger-timeout", ledgerTimeoutStr, "Per-call ledger timeout")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.LedgerTimeout, err = time.ParseDuration(ledgerTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid ledger timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("RAZORPAY_KEY_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read razorpay secret file: %w", err)
		}
		cfg.RazorpayKeySecret = strings.TrimSpace(string(content))
	}

	if keyFile, ok := lookup("GOOGLE_SHEETS_PRIVATE_KEY_FILE"); ok && keyFile != "" {
		content, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, fmt.Errorf("read sheets private key file: %w", err)
		}
		cfg.GooglePrivateKey = string(content)
	}

	// Deployment platforms hand the PEM over with literal \n sequences.
	cfg.GooglePrivateKey = strings.ReplaceAll(cfg.GooglePrivateKey, `\n`, "\n")

	if cfg.LedgerTimeout <= 0 {
		cfg.LedgerTimeout = defaultLedgerTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

// LedgerConfigured reports whether every credential of the optional order
// ledger is present. A partially configured ledger counts as absent.
func (c *Config) LedgerConfigured() bool {
	return c.GoogleSheetID != "" && c.GoogleClientEmail != "" && c.GooglePrivateKey != ""
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
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

package config

import (
	"flag"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	Port             string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	NovaPoshtaAPIKey string
	NovaPoshtaAPIURL string
	TelegramBotToken string
	TelegramChatID   string
	ShutdownTimeout  time.Duration
	NotifyQueueSize  int
}

const (
	defaultPort             = "3000"
	defaultDBHost           = "localhost"
	defaultDBPort           = "5432"
	defaultNovaPoshtaAPIURL = "https://api.novaposhta.ua/v2.0/json/"
	defaultShutdownTimeout  = 10 * time.Second
	defaultNotifyQueueSize  = 64
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		Port:             getString(lookup, "PORT", defaultPort),
		DBHost:           getString(lookup, "DB_HOST", defaultDBHost),
		DBPort:           getString(lookup, "DB_PORT", defaultDBPort),
		DBUser:           getString(lookup, "DB_USER", ""),
		DBPassword:       getString(lookup, "DB_PASSWORD", ""),
		DBName:           getString(lookup, "DB_NAME", ""),
		NovaPoshtaAPIKey: getString(lookup, "NOVAPOSHTA_API_KEY", ""),
		NovaPoshtaAPIURL: getString(lookup, "NOVAPOSHTA_API_URL", defaultNovaPoshtaAPIURL),
		TelegramBotToken: getString(lookup, "TG_BOT_TOKEN", ""),
		TelegramChatID:   getString(lookup, "TG_CHAT_ID", ""),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		NotifyQueueSize:  getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
	}

	fs := flag.NewFlagSet("chairshop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.Port, "port", cfg.Port, "HTTP server listen port")
	fs.StringVar(&cfg.DBHost, "db-host", cfg.DBHost, "PostgreSQL host")
	fs.StringVar(&cfg.DBName, "db-name", cfg.DBName, "PostgreSQL database name")
	fs.StringVar(&cfg.NovaPoshtaAPIURL, "np-url", cfg.NovaPoshtaAPIURL, "Nova Poshta API endpoint")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.NovaPoshtaAPIKey == "" {
		return nil, fmt.Errorf("NOVAPOSHTA_API_KEY must be provided")
	}

	if cfg.DBName == "" {
		return nil, fmt.Errorf("database name must be provided")
	}

	return cfg, nil
}

// ListenAddress returns the address the HTTP server binds to.
func (c *Config) ListenAddress() string {
	return ":" + c.Port
}

// DatabaseDSN assembles a PostgreSQL connection string from the parts
// supplied through DB_* environment variables.
func (c *Config) DatabaseDSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	if c.DBUser != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	}
	return u.String()
}

// NotificationsConfigured reports whether Telegram credentials are present.
func (c *Config) NotificationsConfigured() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/net/publicsuffix"
	"gopkg.in/yaml.v3"
)

var explorers = map[string]string{
	"testnet": "https://testnet.basescan.org",
	"mainnet": "https://basescan.org",
}

var drivers = map[string]bool{"memory": true, "jsonl": true, "sqlite3": true, "mysql": true, "postgres": true}

type Config struct {
	Env             string        `yaml:"env"`
	ListenAddr      string        `yaml:"listen_addr"`
	Network         string        `yaml:"network"`
	ExplorerBaseURL string        `yaml:"explorer_base_url"`
	ContractsPath   string        `yaml:"contracts_path"`
	FileReadTimeout time.Duration `yaml:"file_read_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	DemoUserID      int64         `yaml:"demo_user_id"`
	Store           StoreConfig   `yaml:"store"`
}

// StoreConfig selects the audit report backend. Workers > 0 makes saves
// asynchronous.
type StoreConfig struct {
	Driver  string `yaml:"driver"`
	DSN     string `yaml:"dsn"`
	Workers int    `yaml:"workers"`
	Queue   int    `yaml:"queue"`
}

func defaults() Config {
	return Config{
		Env:             "development",
		ListenAddr:      ":8080",
		Network:         "testnet",
		ContractsPath:   "deployed-contracts.json",
		FileReadTimeout: 5 * time.Second,
		RequestTimeout:  30 * time.Second,
		MaxBodyBytes:    1 << 20,
		DemoUserID:      1,
		Store:           StoreConfig{Driver: "memory", Queue: 64},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. A .env file in the working
// directory is loaded first without overriding variables already set. An
// empty path falls back to CONFIG_PATH, then config.yaml; a missing file is
// not an error.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg := defaults()
	if path == "" {
		path = getenv("CONFIG_PATH", "config.yaml")
	}
	if err := loadFile(path, &cfg); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)

	cfg.Network = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(cfg.Network)), "base-")
	if cfg.ExplorerBaseURL == "" {
		cfg.ExplorerBaseURL = explorers[cfg.Network]
	}
	cfg.ExplorerBaseURL = strings.TrimRight(cfg.ExplorerBaseURL, "/")
	if cfg.Store.DSN == "" {
		switch cfg.Store.Driver {
		case "jsonl":
			cfg.Store.DSN = "data/audit-reports.jsonl"
		case "sqlite3":
			cfg.Store.DSN = "data/audit.db"
		case "postgres":
			cfg.Store.DSN = os.Getenv("DATABASE_URL")
		}
	}
	return cfg, cfg.Validate()
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config unmarshal: %w", err)
	}
	return nil
}

func applyEnv(c *Config) {
	c.Env = getenv("APP_ENV", c.Env)
	c.ListenAddr = getenv("LISTEN_ADDR", c.ListenAddr)
	c.Network = getenv("NETWORK", c.Network)
	c.ExplorerBaseURL = getenv("EXPLORER_BASE_URL", c.ExplorerBaseURL)
	c.ContractsPath = getenv("CONTRACTS_PATH", c.ContractsPath)
	c.FileReadTimeout = getenvDuration("FILE_READ_TIMEOUT", c.FileReadTimeout)
	c.RequestTimeout = getenvDuration("REQUEST_TIMEOUT", c.RequestTimeout)
	c.MaxBodyBytes = int64(getenvInt("MAX_BODY_BYTES", int(c.MaxBodyBytes)))
	c.DemoUserID = int64(getenvInt("DEMO_USER_ID", int(c.DemoUserID)))
	c.Store.Driver = strings.ToLower(getenv("STORE_DRIVER", c.Store.Driver))
	c.Store.DSN = getenv("STORE_DSN", c.Store.DSN)
	c.Store.Workers = getenvInt("PERSIST_WORKERS", c.Store.Workers)
	c.Store.Queue = getenvInt("PERSIST_QUEUE", c.Store.Queue)
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if _, ok := explorers[c.Network]; !ok {
		errs = append(errs, fmt.Errorf("network %q: want testnet or mainnet", c.Network))
	}
	if err := validateExplorer(c.ExplorerBaseURL); err != nil {
		errs = append(errs, err)
	}
	if !drivers[c.Store.Driver] {
		errs = append(errs, fmt.Errorf("store driver %q not supported", c.Store.Driver))
	}
	if (c.Store.Driver == "mysql" || c.Store.Driver == "postgres") && c.Store.DSN == "" {
		errs = append(errs, fmt.Errorf("store driver %s requires STORE_DSN", c.Store.Driver))
	}
	if c.FileReadTimeout <= 0 || c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("timeouts must be positive"))
	}
	if c.Store.Workers < 0 {
		errs = append(errs, errors.New("PERSIST_WORKERS must not be negative"))
	}
	return errors.Join(errs...)
}

// validateExplorer requires an absolute http(s) URL on a public domain. IP
// literals and localhost are accepted for local setups.
func validateExplorer(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("explorer base url %q: want an absolute http(s) URL", raw)
	}
	host := u.Hostname()
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}
	if _, err := publicsuffix.EffectiveTLDPlusOne(host); err != nil {
		return fmt.Errorf("explorer host %q is not a public domain: %w", host, err)
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

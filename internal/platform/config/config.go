package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr       = ":3000"
	DefaultAPIBaseURL = "http://localhost:8080"
	DefaultConfigPath = "config/config.yaml"
)

// Config is the full runtime configuration of the dashboard.
type Config struct {
	Server Server      `yaml:"server"`
	API    API         `yaml:"api"`
	Redis  RedisConfig `yaml:"redis"`
	Log    Log         `yaml:"log"`
	Locale Locale      `yaml:"locale"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr string `yaml:"addr"`
}

// API points at the core loan API.
type API struct {
	BaseURL string `yaml:"base_url"`
}

// RedisConfig configures the flash message store. An empty URL selects the
// in-memory store.
type RedisConfig struct {
	URL          string        `yaml:"url"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Log configures the slog handler.
type Log struct {
	Level string `yaml:"level"`
}

// Locale drives currency and date formatting.
type Locale struct {
	Language string `yaml:"language"`
	Currency string `yaml:"currency"`
}

// FlashTTL bounds how long an undelivered toast survives.
var FlashTTL = 5 * time.Minute

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Server: Server{Addr: DefaultAddr},
		API:    API{BaseURL: DefaultAPIBaseURL},
		Redis: RedisConfig{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Log:    Log{Level: "info"},
		Locale: Locale{Language: "es-GT", Currency: "GTQ"},
	}
}

// Load builds the configuration: defaults, then the optional YAML file, then
// environment variables (a local .env file is loaded first when present).
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Defaults()
	path := os.Getenv("LOANDESK_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides fields with environment values. getenv is injected for tests.
func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("LOANDESK_ADDR"); v != "" {
		c.Server.Addr = v
	}
	// NEXT_PUBLIC_API_BASE_URL is the name older deployments used.
	if v := getenv("NEXT_PUBLIC_API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := getenv("API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("REDIS_URL"); v != "" {
		c.Redis.URL = v
	}
	if v, err := strconv.Atoi(getenv("REDIS_POOL_SIZE")); err == nil && v > 0 {
		c.Redis.PoolSize = v
	}
	if v := getenv("LOCALE"); v != "" {
		c.Locale.Language = v
	}
	if v := getenv("CURRENCY"); v != "" {
		c.Locale.Currency = strings.ToUpper(v)
	}
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("config: server address is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("config: api base url must be http(s), got %q", c.API.BaseURL)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

const (
	DefaultPort       = 8080
	DefaultCookieName = "truck_session"
	DefaultTokenTTL   = 30 * 24 * time.Hour
)

type Config struct {
	Database pg.Options
	App      struct {
		Host           string
		Port           int
		DegradeReads   bool
		LogQueries     bool
		AllowedOrigins []string
	}
	Auth struct {
		Secret        string
		OwnerOpenID   string
		CookieName    string
		SecureCookies bool
		TokenTTL      time.Duration
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
}

// Load reads the TOML file at path, applies environment overrides and defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv overrides secrets and endpoints from the environment (or a .env file loaded before).
func (c *Config) applyEnv() error {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		opt, err := pg.ParseURL(url)
		if err != nil {
			return fmt.Errorf("failed to parse DATABASE_URL: %w", err)
		}
		opt.PoolSize = c.Database.PoolSize
		opt.MaxRetries = c.Database.MaxRetries
		opt.MaxConnAge = c.Database.MaxConnAge
		c.Database = *opt
	}

	if lifetime := os.Getenv("DB_MAX_CONN_LIFETIME"); lifetime != "" {
		d, err := time.ParseDuration(lifetime)
		if err != nil {
			return fmt.Errorf("failed to parse DB_MAX_CONN_LIFETIME: %w", err)
		}
		c.Database.MaxConnAge = d
	}

	if conns := os.Getenv("DB_MAX_CONNS"); conns != "" {
		n, err := strconv.Atoi(conns)
		if err != nil {
			return fmt.Errorf("failed to parse DB_MAX_CONNS: %w", err)
		}
		c.Database.PoolSize = n
	}

	if secret := os.Getenv("AUTH_SECRET"); secret != "" {
		c.Auth.Secret = secret
	}
	if owner := os.Getenv("OWNER_OPEN_ID"); owner != "" {
		c.Auth.OwnerOpenID = owner
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		c.Redis.Password = password
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.App.Port == 0 {
		c.App.Port = DefaultPort
	}
	if c.Auth.CookieName == "" {
		c.Auth.CookieName = DefaultCookieName
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = DefaultTokenTTL
	}
	if c.Database.MaxRetries == 0 {
		c.Database.MaxRetries = 3
	}
}

func (c *Config) Validate() error {
	switch {
	case c.Auth.Secret == "":
		return errors.New("config: Auth.Secret is required")
	case c.App.Port < 1 || c.App.Port > 65535:
		return fmt.Errorf("config: invalid App.Port %d", c.App.Port)
	case c.Auth.TokenTTL < 0:
		return errors.New("config: Auth.TokenTTL must not be negative")
	}

	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

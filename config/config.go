package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the Hunter tools.
type Config struct {
	API      APIConfig
	Docstore DocstoreConfig
	Session  SessionConfig
	Scraper  ScraperConfig
}

// APIConfig holds Hunter REST API settings.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DocstoreConfig holds the PostgreSQL document-store connection settings.
type DocstoreConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (c DocstoreConfig) DSN() string {
	return "host=" + c.Host +
		" port=" + c.Port +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.DBName +
		" sslmode=" + c.SSLMode
}

// SessionConfig holds local session storage settings.
type SessionConfig struct {
	// Path of the token file; empty means the per-user default location.
	Path string `mapstructure:"path"`
}

// ScraperConfig holds retailer ingestion settings.
type ScraperConfig struct {
	Pages         int    `mapstructure:"pages"`
	RateLimitMs   int    `mapstructure:"rate_limit_ms"`
	ChromeBin     string `mapstructure:"chrome_bin"`
	KabumCategory string `mapstructure:"kabum_category"`
	SearchTerm    string `mapstructure:"search_term"`
}

// Load loads configuration from environment variables and config files.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/hunter/")

	v.SetEnvPrefix("HUNTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout", "30s")

	// Docstore defaults
	v.SetDefault("docstore.host", "localhost")
	v.SetDefault("docstore.port", "5432")
	v.SetDefault("docstore.user", "postgres")
	v.SetDefault("docstore.password", "")
	v.SetDefault("docstore.dbname", "hunter_db")
	v.SetDefault("docstore.sslmode", "disable")

	// Session defaults
	v.SetDefault("session.path", "")

	// Scraper defaults
	v.SetDefault("scraper.pages", 2)
	v.SetDefault("scraper.rate_limit_ms", 2000)
	v.SetDefault("scraper.chrome_bin", "")
	v.SetDefault("scraper.kabum_category", "hardware/monitores")
	v.SetDefault("scraper.search_term", "teclado")
}

// validate validates the configuration.
func validate(config *Config) error {
	u, err := url.Parse(config.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got: %q", config.API.BaseURL)
	}

	if config.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}

	if config.Scraper.Pages < 1 {
		return fmt.Errorf("scraper.pages must be at least 1, got: %d", config.Scraper.Pages)
	}

	return nil
}

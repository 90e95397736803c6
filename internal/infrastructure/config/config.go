package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Shopify  ShopifyConfig
	Dispatch DispatchConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
	MaxBodySize    int64
}

// ShopifyConfig holds the external catalog service settings
type ShopifyConfig struct {
	Shop        string
	Host        string
	Scheme      string
	AccessToken string
	APIVersion  string
	Timeout     int // in seconds
}

// DispatchConfig holds the rate-limited dispatch queue settings
type DispatchConfig struct {
	BatchSize int           // max submissions per tick
	Interval  time.Duration // delay between ticks
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with SHOPSYNC_ prefix (e.g. SHOPSYNC_SHOPIFY_ACCESS_TOKEN)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("SHOPSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:    v.GetDuration("http.read_timeout"),
			WriteTimeout:   v.GetDuration("http.write_timeout"),
			IdleTimeout:    v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes: v.GetInt("http.max_header_bytes"),
			MaxBodySize:    v.GetInt64("http.max_body_size"),
		},
		Shopify: ShopifyConfig{
			Shop:        v.GetString("shopify.shop"),
			Host:        v.GetString("shopify.host"),
			Scheme:      v.GetString("shopify.scheme"),
			AccessToken: v.GetString("shopify.access_token"),
			APIVersion:  v.GetString("shopify.api_version"),
			Timeout:     v.GetInt("shopify.timeout"),
		},
		Dispatch: DispatchConfig{
			BatchSize: v.GetInt("dispatch.batch_size"),
			Interval:  v.GetDuration("dispatch.interval"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "shopsync-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 10 << 20 // 10MB
	}
	if cfg.Shopify.Host == "" {
		cfg.Shopify.Host = "myshopify.com"
	}
	if cfg.Shopify.Scheme == "" {
		cfg.Shopify.Scheme = "https"
	}
	if cfg.Shopify.APIVersion == "" {
		cfg.Shopify.APIVersion = "2022-04"
	}
	if cfg.Shopify.Timeout == 0 {
		cfg.Shopify.Timeout = 30
	}
	if cfg.Dispatch.BatchSize == 0 {
		cfg.Dispatch.BatchSize = 2
	}
	if cfg.Dispatch.Interval == 0 {
		cfg.Dispatch.Interval = time.Second
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Dispatch.BatchSize < 0 {
		return fmt.Errorf("dispatch.batch_size cannot be negative")
	}
	if c.Dispatch.Interval < 0 {
		return fmt.Errorf("dispatch.interval cannot be negative")
	}
	if c.Shopify.Scheme != "http" && c.Shopify.Scheme != "https" {
		return fmt.Errorf("shopify.scheme must be http or https")
	}

	// Production-specific validations
	if c.App.Env == "production" {
		if c.Shopify.Shop == "" {
			return fmt.Errorf("shopify.shop is required in production")
		}
		if c.Shopify.AccessToken == "" {
			return fmt.Errorf("shopify.access_token is required in production")
		}
		if c.Shopify.Scheme != "https" {
			return fmt.Errorf("shopify.scheme must be https in production")
		}
	}

	return nil
}

// Package config provides centralized configuration management
// using Viper for configuration loading and validation
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Generation GenerationConfig `mapstructure:"generation"`
	Inventory  InventoryConfig  `mapstructure:"inventory"`
	Library    LibraryConfig    `mapstructure:"library"`
	Impact     ImpactConfig     `mapstructure:"impact"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig contains structured logging configuration
type LoggingConfig struct {
	Level       string   `mapstructure:"level"`
	Format      string   `mapstructure:"format"`
	Development bool     `mapstructure:"development"`
	OutputPaths []string `mapstructure:"output_paths"`
}

// StorageConfig selects and configures the collection store backend
type StorageConfig struct {
	Driver string       `mapstructure:"driver"`
	SQLite SQLiteConfig `mapstructure:"sqlite"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

// SQLiteConfig contains the file-backed store configuration
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig contains the Redis-backed store configuration
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	Database     int           `mapstructure:"database"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	PoolSize     int           `mapstructure:"pool_size"`
}

// GenerationConfig contains the recipe generation service configuration
type GenerationConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	VisionModel string        `mapstructure:"vision_model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// InventoryConfig contains inventory service tunables
type InventoryConfig struct {
	SavingsPerItem     float64 `mapstructure:"savings_per_item"`
	ExpiringWindowDays int     `mapstructure:"expiring_window_days"`
}

// LibraryConfig contains recipe library tunables
type LibraryConfig struct {
	HistoryLimit int `mapstructure:"history_limit"`
}

// ImpactConfig contains the per-recipe impact accounting constants
type ImpactConfig struct {
	SavingsPerItem     float64 `mapstructure:"savings_per_item"`
	WastePerItemGrams  float64 `mapstructure:"waste_per_item_grams"`
	TimeSavedPerRecipe float64 `mapstructure:"time_saved_per_recipe"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/fridgewise")
	}

	// Enable environment variable override
	v.SetEnvPrefix("FRIDGEWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Unmarshal configuration
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "FridgeWise")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "2m")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.request_timeout", "90s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.development", false)

	// Storage defaults
	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.sqlite.path", "fridgewise.db")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	// Registering the key lets AutomaticEnv fill it during Unmarshal
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.database", 0)
	v.SetDefault("storage.redis.dial_timeout", "5s")
	v.SetDefault("storage.redis.read_timeout", "3s")
	v.SetDefault("storage.redis.write_timeout", "3s")
	v.SetDefault("storage.redis.pool_size", 10)

	// Generation defaults
	v.SetDefault("generation.api_key", "")
	v.SetDefault("generation.base_url", "https://api.openai.com/v1")
	v.SetDefault("generation.model", "gpt-4o-mini")
	v.SetDefault("generation.vision_model", "gpt-4o")
	v.SetDefault("generation.temperature", 0.7)
	v.SetDefault("generation.max_tokens", 2000)
	v.SetDefault("generation.timeout", "60s")

	// Inventory defaults
	v.SetDefault("inventory.savings_per_item", 150)
	v.SetDefault("inventory.expiring_window_days", 3)

	// Library defaults
	v.SetDefault("library.history_limit", 50)

	// Impact defaults
	v.SetDefault("impact.savings_per_item", 150)
	v.SetDefault("impact.waste_per_item_grams", 200)
	v.SetDefault("impact.time_saved_per_recipe", 15)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	switch c.Storage.Driver {
	case "memory", "sqlite", "redis":
	default:
		return fmt.Errorf("storage.driver must be one of memory, sqlite, redis, got %q", c.Storage.Driver)
	}

	if c.Storage.Driver == "sqlite" && c.Storage.SQLite.Path == "" {
		return fmt.Errorf("storage.sqlite.path is required for the sqlite driver")
	}

	if c.Storage.Driver == "redis" && c.Storage.Redis.Addr == "" {
		return fmt.Errorf("storage.redis.addr is required for the redis driver")
	}

	if c.Generation.APIKey == "" && c.App.Environment == "production" {
		return fmt.Errorf("generation.api_key is required in production")
	}

	if c.Inventory.ExpiringWindowDays < 0 {
		return fmt.Errorf("inventory.expiring_window_days must not be negative")
	}

	if c.Library.HistoryLimit < 1 {
		return fmt.Errorf("library.history_limit must be at least 1")
	}

	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Addr returns the host:port the HTTP server binds to
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

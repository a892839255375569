package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	CORS     CORSConfig     `yaml:"cors"`
	Data     DataConfig     `yaml:"data"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `yaml:"port"`
	Host string `yaml:"host"`
	Addr string `yaml:"-"` // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DataConfig describes where exchange rates come from.
// An empty CSVPath serves whatever the database already holds.
type DataConfig struct {
	CSVPath           string `yaml:"csv_path"`
	ReferenceCurrency string `yaml:"reference_currency"`
}

// CacheConfig sizes the in-process dashboard cache.
type CacheConfig struct {
	SizeMB int           `yaml:"size_mb"`
	TTL    time.Duration `yaml:"ttl"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// ScheduleConfig holds cron expressions for background jobs.
type ScheduleConfig struct {
	CacheStatsCron string `yaml:"cache_stats_cron"`
}

// Load reads configuration from the .env file, an optional YAML file named by
// CONFIG_FILE and environment variables, in that order of precedence (lowest first).
// Unset values fall back to defaults.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}
	applyDefaults(config)

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnv overrides config fields with any environment variables that are set.
func applyEnv(c *Config) error {
	setString(&c.Server.Port, "SERVER_PORT")
	setString(&c.Server.Host, "SERVER_HOST")
	setString(&c.Database.Path, "DB_PATH")
	setString(&c.Data.CSVPath, "RATES_CSV_PATH")
	setString(&c.Data.ReferenceCurrency, "REFERENCE_CURRENCY")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Schedule.CacheStatsCron, "CACHE_STATS_CRON")

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowedOrigins = origins
	}

	if v := os.Getenv("CACHE_SIZE_MB"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CACHE_SIZE_MB %q: %w", v, err)
		}
		c.Cache.SizeMB = size
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CACHE_TTL %q: %w", v, err)
		}
		c.Cache.TTL = ttl
	}

	return nil
}

func applyDefaults(c *Config) {
	if c.Server.Port == "" {
		c.Server.Port = "5001"
	}
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/exchange_rates.db"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{
			"http://localhost:3000",
			"http://localhost",
		}
	}
	if c.Data.ReferenceCurrency == "" {
		c.Data.ReferenceCurrency = "USD"
	}
	if c.Cache.SizeMB == 0 {
		c.Cache.SizeMB = 32
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 10 * time.Minute
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Schedule.CacheStatsCron == "" {
		c.Schedule.CacheStatsCron = "@every 15m"
	}
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.ReferenceCurrency) == "" {
		return fmt.Errorf("reference currency is required")
	}
	if c.Cache.SizeMB <= 0 {
		return fmt.Errorf("cache size must be positive, got %d MB", c.Cache.SizeMB)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl must not be negative, got %s", c.Cache.TTL)
	}
	return nil
}

// setString gets an environment variable and stores it in dst when it is set
func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

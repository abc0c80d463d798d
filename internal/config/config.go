package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Session  SessionConfig  `mapstructure:"session"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Monitor  MonitorConfig  `mapstructure:"monitor"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Business BusinessConfig `mapstructure:"business"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout string `mapstructure:"timeout"`
}

type SessionConfig struct {
	FilePath string `mapstructure:"file"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CacheConfig struct {
	Backend      string `mapstructure:"backend"`
	DashboardTTL string `mapstructure:"dashboard_ttl"`
	ListTTL      string `mapstructure:"list_ttl"`
	DetailTTL    string `mapstructure:"detail_ttl"`
	StaticTTL    string `mapstructure:"static_ttl"`
}

type MonitorConfig struct {
	OverdueSchedule  string `mapstructure:"overdue_schedule"`
	UpcomingSchedule string `mapstructure:"upcoming_schedule"`
	UpcomingDays     int    `mapstructure:"upcoming_days"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type BusinessConfig struct {
	PenaltyRate         string `mapstructure:"penalty_rate"`
	MonthlyInterestRate string `mapstructure:"monthly_interest_rate"`
	InterestDivisorDays int    `mapstructure:"interest_divisor_days"`
}

// Load reads configuration from environment variables and files.
// Every key can be overridden by its env form, e.g. api.base_url by
// API_BASE_URL, cache.list_ttl by CACHE_LIST_TTL.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("api.base_url", "http://localhost:8080/api/v1")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("session.file", ".kitnet-session.json")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.dashboard_ttl", "1m")
	v.SetDefault("cache.list_ttl", "5m")
	v.SetDefault("cache.detail_ttl", "10m")
	v.SetDefault("cache.static_ttl", "1h")
	v.SetDefault("monitor.overdue_schedule", "0 0 8 * * *")
	v.SetDefault("monitor.upcoming_schedule", "0 0 9 * * MON")
	v.SetDefault("monitor.upcoming_days", 7)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("business.penalty_rate", "0.02")
	v.SetDefault("business.monthly_interest_rate", "0.01")
	v.SetDefault("business.interest_divisor_days", 30)

	// Read from environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Try to read from a config file (optional)
	v.SetConfigName("kitnet")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Don't fail if the config file doesn't exist
	_ = v.ReadInConfig()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}

	if _, err := time.ParseDuration(c.API.Timeout); err != nil {
		return fmt.Errorf("API_TIMEOUT must be a valid duration: %w", err)
	}

	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("CACHE_BACKEND must be memory or redis")
	}

	for name, ttl := range map[string]string{
		"CACHE_DASHBOARD_TTL": c.Cache.DashboardTTL,
		"CACHE_LIST_TTL":      c.Cache.ListTTL,
		"CACHE_DETAIL_TTL":    c.Cache.DetailTTL,
		"CACHE_STATIC_TTL":    c.Cache.StaticTTL,
	} {
		if _, err := time.ParseDuration(ttl); err != nil {
			return fmt.Errorf("%s must be a valid duration: %w", name, err)
		}
	}

	if c.Monitor.UpcomingDays <= 0 {
		return fmt.Errorf("MONITOR_UPCOMING_DAYS must be greater than 0")
	}

	if _, err := decimal.NewFromString(c.Business.PenaltyRate); err != nil {
		return fmt.Errorf("BUSINESS_PENALTY_RATE must be a valid decimal: %w", err)
	}

	if _, err := decimal.NewFromString(c.Business.MonthlyInterestRate); err != nil {
		return fmt.Errorf("BUSINESS_MONTHLY_INTEREST_RATE must be a valid decimal: %w", err)
	}

	if c.Business.InterestDivisorDays <= 0 {
		return fmt.Errorf("BUSINESS_INTEREST_DIVISOR_DAYS must be greater than 0")
	}

	return nil
}

// GetAPITimeout returns the API request timeout as duration
func (c *Config) GetAPITimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.API.Timeout)
	return timeout
}

// GetPenaltyRate returns the fixed late penalty rate as decimal
func (c *Config) GetPenaltyRate() decimal.Decimal {
	rate, _ := decimal.NewFromString(c.Business.PenaltyRate)
	return rate
}

// GetMonthlyInterestRate returns the monthly interest rate as decimal
func (c *Config) GetMonthlyInterestRate() decimal.Decimal {
	rate, _ := decimal.NewFromString(c.Business.MonthlyInterestRate)
	return rate
}

// GetDashboardTTL returns the dashboard cache TTL as duration
func (c *Config) GetDashboardTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Cache.DashboardTTL)
	return ttl
}

// GetListTTL returns the list cache TTL as duration
func (c *Config) GetListTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Cache.ListTTL)
	return ttl
}

// GetDetailTTL returns the detail cache TTL as duration
func (c *Config) GetDetailTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Cache.DetailTTL)
	return ttl
}

// GetStaticTTL returns the static cache TTL as duration
func (c *Config) GetStaticTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Cache.StaticTTL)
	return ttl
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreMemos    = "memos"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Task domain
	Analyzer AnalyzerConfig
	Store    StoreConfig
	Postgres PostgresConfig
	Memos    MemosConfig
	Redis    RedisConfig

	// Integrations
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// AnalyzerConfig sets the timezone that "today" is resolved in.
type AnalyzerConfig struct {
	Timezone string
}

type StoreConfig struct {
	Driver string
}

type PostgresConfig struct {
	DSN string
}

type MemosConfig struct {
	URL         string
	AccessToken string
	ExternalURL string // URL for generating user-facing links (e.g., http://localhost:5230)
}

// RedisConfig enables the task list cache when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type TelegramConfig struct {
	BotToken      string
	ChatID        int64
	WebhookURL    string
	WebhookSecret string
	AllowedIPs    []string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = stringList(v, "cors.allowed_origins")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Task domain
	cfg.Analyzer.Timezone = v.GetString("analyzer.timezone")
	cfg.Store.Driver = strings.ToLower(v.GetString("store.driver"))
	cfg.Postgres.DSN = v.GetString("postgres.dsn")

	cfg.Memos.URL = v.GetString("memos.url")
	cfg.Memos.AccessToken = v.GetString("memos.access_token")
	cfg.Memos.ExternalURL = v.GetString("memos.external_url")
	// If external URL not set, default to internal URL
	if cfg.Memos.ExternalURL == "" {
		cfg.Memos.ExternalURL = cfg.Memos.URL
	}

	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.TTL = v.GetDuration("redis.ttl")

	// Integrations
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = v.GetInt64("telegram.chat_id")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = v.GetString("telegram.webhook_secret")
	cfg.Telegram.AllowedIPs = stringList(v, "telegram.allowed_ips")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", []string{})
	v.SetDefault("rate_limit.requests_per_min", 60)

	v.SetDefault("analyzer.timezone", "UTC")
	v.SetDefault("store.driver", StoreMemory)
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("memos.url", "")
	v.SetDefault("memos.access_token", "")
	v.SetDefault("memos.external_url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "5m")

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", 0)
	v.SetDefault("telegram.webhook_url", "")
	v.SetDefault("telegram.webhook_secret", "")
	v.SetDefault("telegram.allowed_ips", []string{})
	v.SetDefault("google_calendar.credentials_path", "")
	v.SetDefault("google_calendar.calendar_id", "primary")
}

// Validate checks that the selected store is fully configured and the timezone exists.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if c.Postgres.DSN == "" {
			return errors.New("postgres.dsn is required for the postgres store")
		}
	case StoreMemos:
		if c.Memos.URL == "" {
			return errors.New("memos.url is required for the memos store")
		}
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}

	if _, err := time.LoadLocation(c.Analyzer.Timezone); err != nil {
		return fmt.Errorf("invalid analyzer.timezone %q: %w", c.Analyzer.Timezone, err)
	}
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("invalid http_server.port %d", c.HTTPServer.Port)
	}
	return nil
}

// stringList accepts a YAML list or a comma-separated env value.
func stringList(v *viper.Viper, key string) []string {
	var out []string
	for _, item := range v.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

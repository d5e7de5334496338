package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	AlertsBackendRedis = "redis"
	AlertsBackendSQS   = "sqs"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Sessions SessionsConfig `json:"sessions"`
	Provider ProviderConfig `json:"provider"`
	Notifier NotifierConfig `json:"notifier"`
	Webhook  WebhookConfig  `json:"webhook"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type SessionsConfig struct {
	Storage string `json:"storage"`
	APIKey  string `json:"api_key,omitempty"`
}

type ProviderConfig struct {
	APIKey        string  `json:"api_key,omitempty"`
	MaxIncidents  int     `json:"max_incidents"`
	AffectedRange float64 `json:"affected_range"`
}

type NotifierConfig struct {
	SleepTime       time.Duration `json:"sleep_time"`
	CycleTimeout    time.Duration `json:"cycle_timeout"`
	ServicesBaseURL string        `json:"services_base_url"`
	IncidentsAPIKey string        `json:"incidents_api_key,omitempty"`
	SessionsAPIKey  string        `json:"sessions_api_key,omitempty"`
	AlertsQueue     string        `json:"alerts_queue"`
	AlertsBackend   string        `json:"alerts_backend"`
	AWSRegion       string        `json:"aws_region"`
	LockKey         string        `json:"lock_key"`
	ExternalTimeout time.Duration `json:"external_timeout"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	sleepSeconds := getEnvInt("NOTIFIER_SLEEP_TIME_SECONDS", 180)

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "sport_sessions"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Sessions: SessionsConfig{
			Storage: strings.ToLower(getEnv("SESSIONS_STORAGE", StoragePostgres)),
			APIKey:  getEnv("SPORT_SESSIONS_API_KEY", "secret"),
		},
		Provider: ProviderConfig{
			APIKey:        getEnv("INCIDENTS_API_KEY", "secret"),
			MaxIncidents:  getEnvInt("MAX_ADVERSE_INCIDENTS", 5),
			AffectedRange: getEnvFloat("ADVERSE_INCIDENTS_AFFECTED_RANGE", 0.5),
		},
		Notifier: NotifierConfig{
			SleepTime:       time.Duration(sleepSeconds) * time.Second,
			CycleTimeout:    getEnvDuration("NOTIFIER_CYCLE_TIMEOUT", 60*time.Second),
			ServicesBaseURL: strings.TrimRight(getEnv("SPORTAPP_SERVICES_BASE_URL", "http://localhost:8000"), "/"),
			IncidentsAPIKey: getEnv("INCIDENTS_API_KEY", "secret"),
			SessionsAPIKey:  getEnv("SPORT_SESSIONS_API_KEY", "secret"),
			AlertsQueue:     getEnv("ADVERSE_INCIDENTS_ALERTS_QUEUE", "adverse_incidents_queue.fifo"),
			AlertsBackend:   strings.ToLower(getEnv("ALERTS_BACKEND", AlertsBackendRedis)),
			AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
			LockKey:         getEnv("NOTIFIER_LOCK_KEY", "adverse-incidents:poller"),
			ExternalTimeout: getEnvDuration("EXTERNAL_HTTP_TIMEOUT", 10*time.Second),
		},
		Webhook: WebhookConfig{
			URL:      getEnv("ALERTS_WEBHOOK_URL", ""),
			Disabled: getEnvBool("ALERTS_WEBHOOK_DISABLED", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("sessions_storage", cfg.Sessions.Storage),
		slog.String("alerts_backend", cfg.Notifier.AlertsBackend),
		slog.String("services_base_url", cfg.Notifier.ServicesBaseURL))

	return cfg, nil
}

// Validate checks settings shared by every binary. HTTP_PORT may be given as
// "8080" or ":8080"; the server adds the colon.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(strings.TrimPrefix(c.Http.Port, ":"))
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("HTTP_PORT %q is not a valid port", c.Http.Port)
	}
	return nil
}

func (c *Config) ValidateSessions() error {
	if c.Sessions.APIKey == "" {
		return errors.New("SPORT_SESSIONS_API_KEY is empty")
	}
	switch c.Sessions.Storage {
	case StoragePostgres:
		if c.Postgres.Host == "" {
			return errors.New("POSTGRES_HOST required")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("SESSIONS_STORAGE %q is not supported", c.Sessions.Storage)
	}
	return nil
}

func (c *Config) ValidateProvider() error {
	if c.Provider.APIKey == "" {
		return errors.New("INCIDENTS_API_KEY is empty")
	}
	if c.Provider.MaxIncidents < 1 {
		return errors.New("MAX_ADVERSE_INCIDENTS must be at least 1")
	}
	if c.Provider.AffectedRange <= 0 {
		return errors.New("ADVERSE_INCIDENTS_AFFECTED_RANGE must be positive")
	}
	return nil
}

func (c *Config) ValidateNotifier() error {
	n := c.Notifier
	if n.IncidentsAPIKey == "" || n.SessionsAPIKey == "" {
		return errors.New("INCIDENTS_API_KEY and SPORT_SESSIONS_API_KEY are required")
	}
	if n.SleepTime <= 0 {
		return errors.New("NOTIFIER_SLEEP_TIME_SECONDS must be positive")
	}
	if n.ServicesBaseURL == "" {
		return errors.New("SPORTAPP_SERVICES_BASE_URL required")
	}
	if n.AlertsQueue == "" {
		return errors.New("ADVERSE_INCIDENTS_ALERTS_QUEUE required")
	}
	switch n.AlertsBackend {
	case AlertsBackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR required for the redis alerts backend")
		}
	case AlertsBackendSQS:
		if n.AWSRegion == "" {
			return errors.New("AWS_REGION required for the sqs alerts backend")
		}
	default:
		return fmt.Errorf("ALERTS_BACKEND %q is not supported", n.AlertsBackend)
	}
	if c.Webhook.Disabled {
		slog.Warn("alert webhook forwarding disabled via ALERTS_WEBHOOK_DISABLED=true")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

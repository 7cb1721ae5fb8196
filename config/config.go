package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// Store backend names
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type StoreConfig struct {
	// Backend selects the slot store implementation: file, memory,
	// redis or postgres.
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir" envconfig:"STORE_DIR"`
	// EncryptionKey, when set, wraps the backend with AES-GCM
	// encryption at rest.
	EncryptionKey string `mapstructure:"encryption_key" envconfig:"STORE_ENCRYPTION_KEY"`
	RedisURL      string `mapstructure:"redis_url" envconfig:"REDIS_URL"`
	PostgresDSN   string `mapstructure:"postgres_dsn" envconfig:"POSTGRES_DSN"`
}

type AuthConfig struct {
	JWTSecret   string        `mapstructure:"jwt_secret" envconfig:"JWT_SECRET"`
	TokenExpiry time.Duration `mapstructure:"token_expiry"`
	// Bootstrap admin credential honored even with an empty users
	// collection, so a fresh install is reachable.
	BootstrapUsername string `mapstructure:"bootstrap_username"`
	BootstrapPassword string `mapstructure:"bootstrap_password"`
	// HashPasswords switches user credential storage from the legacy
	// plaintext format to bcrypt.
	HashPasswords bool `mapstructure:"hash_passwords"`
	BcryptCost    int  `mapstructure:"bcrypt_cost"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type SMTPConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	// NotifyTo receives a copy of persisted notifications by mail.
	NotifyTo string `mapstructure:"notify_to"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool   `mapstructure:"prometheus_enabled"`
	MetricsPath       string `mapstructure:"metrics_path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" envconfig:"LOG_LEVEL"`
	Pretty bool   `mapstructure:"pretty"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Store      StoreConfig      `mapstructure:"store"`
	Auth       AuthConfig       `mapstructure:"auth"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	SMTP       SMTPConfig       `mapstructure:"smtp"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Log        LogConfig        `mapstructure:"log"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, ReadTimeout: 15 * time.Second, WriteTimeout: 15 * time.Second},
		Store:  StoreConfig{Backend: BackendFile, Dir: "./data"},
		Auth: AuthConfig{
			JWTSecret:         "local-dev-secret",
			TokenExpiry:       24 * time.Hour,
			BootstrapUsername: "admin",
			BootstrapPassword: "000",
			BcryptCost:        12,
		},
		RateLimit:  RateLimitConfig{RequestsPerSecond: 50, Burst: 100},
		SMTP:       SMTPConfig{Port: 587},
		Monitoring: MonitoringConfig{PrometheusEnabled: true, MetricsPath: "/metrics"},
		Log:        LogConfig{Level: "info"},
	}
}

// LoadConfig reads config.yaml from the usual locations and applies
// CLINIC_* environment overrides. A missing config file is fine; the
// service then runs on defaults plus environment.
func LoadConfig() (*Config, error) {
	cfg := defaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("clinic", cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendMemory:
	case BackendRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("store backend redis requires store.redis_url")
		}
	case BackendPostgres:
		if c.Store.PostgresDSN == "" {
			return fmt.Errorf("store backend postgres requires store.postgres_dsn")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	return nil
}

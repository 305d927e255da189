// Package config loads process settings from .env, the environment and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every variable, e.g. KIRIMUANG_HTTP_ADDR
const EnvPrefix = "KIRIMUANG"

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
)

type Config struct {
	GRPCAddr  string `mapstructure:"GRPC_ADDR" validate:"required"`
	HTTPAddr  string `mapstructure:"HTTP_ADDR" validate:"required"`
	APIToken  string `mapstructure:"API_TOKEN" validate:"required"`
	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
	LogPretty bool   `mapstructure:"LOG_PRETTY"`

	// history records and rate snapshots
	Storage string `mapstructure:"STORAGE" validate:"oneof=memory postgres"`
	// language, theme and onboarding flag
	PreferenceStore string `mapstructure:"PREFERENCE_STORE" validate:"oneof=memory postgres sqlite redis"`

	DBConnStr  string `mapstructure:"DB_CONN_STR"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	SQLitePath string `mapstructure:"SQLITE_PATH" validate:"required_if=PreferenceStore sqlite"`

	RedisAddr     string `mapstructure:"REDIS_ADDR" validate:"required_if=PreferenceStore redis"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB" validate:"min=0"`

	// empty disables event publishing
	RabbitMQURL string `mapstructure:"RABBITMQ_URL"`

	// empty token disables the out-of-app notification channel
	TelegramToken  string `mapstructure:"TELEGRAM_TOKEN"`
	TelegramChatID int64  `mapstructure:"TELEGRAM_CHAT_ID" validate:"required_with=TelegramToken"`

	SubmitDelay        time.Duration `mapstructure:"SUBMIT_DELAY" validate:"min=0"`
	RateInterval       time.Duration `mapstructure:"RATE_INTERVAL" validate:"gt=0"`
	ManualRefreshDelay time.Duration `mapstructure:"MANUAL_REFRESH_DELAY" validate:"min=0"`
	ManualRefreshEvery time.Duration `mapstructure:"MANUAL_REFRESH_EVERY" validate:"gt=0"`
	SeedHistory        bool          `mapstructure:"SEED_HISTORY"`
}

var defaults = map[string]interface{}{
	"GRPC_ADDR":            ":8080",
	"HTTP_ADDR":            ":8081",
	"API_TOKEN":            "dev-token",
	"LOG_LEVEL":            "info",
	"LOG_PRETTY":           false,
	"STORAGE":              StorageMemory,
	"PREFERENCE_STORE":     StorageMemory,
	"DB_CONN_STR":          "",
	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_USER":              "postgres",
	"DB_PASSWORD":          "postgres",
	"DB_NAME":              "kirimuang",
	"SQLITE_PATH":          "kirimuang.db",
	"REDIS_ADDR":           "localhost:6379",
	"REDIS_PASSWORD":       "",
	"REDIS_DB":             0,
	"RABBITMQ_URL":         "",
	"TELEGRAM_TOKEN":       "",
	"TELEGRAM_CHAT_ID":     0,
	"SUBMIT_DELAY":         "2s",
	"RATE_INTERVAL":        "30s",
	"MANUAL_REFRESH_DELAY": "1s",
	"MANUAL_REFRESH_EVERY": "5s",
	"SEED_HISTORY":         true,
}

// Load reads the given .env files (".env" when none), then the environment.
// Missing .env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// DatabaseURL returns DB_CONN_STR, or builds one from the individual DB_* settings
func (c *Config) DatabaseURL() string {
	if c.DBConnStr != "" {
		return c.DBConnStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// NeedsPostgres reports whether any store is backed by Postgres
func (c *Config) NeedsPostgres() bool {
	return c.Storage == StoragePostgres || c.PreferenceStore == StoragePostgres
}

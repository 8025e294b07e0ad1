package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const defaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	APIAddress  string `validate:"required,hostname_port"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	StoreDriver string `validate:"oneof=postgres sqlite"`

	PostgresAddress  string `validate:"required_if=StoreDriver postgres"`
	PostgresUser     string `validate:"required_if=StoreDriver postgres"`
	PostgresPassword string
	PostgresDB       string `validate:"required_if=StoreDriver postgres"`

	SQLitePath string `validate:"required_if=StoreDriver sqlite"`

	RequestTimeout  time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// New returns process-wide config, loaded once. Invalid configuration is fatal.
func New() *Config {
	once.Do(func() {
		envFile := os.Getenv("CONFIG_ENV_FILE")
		if envFile == "" {
			envFile = defaultEnvFile
		}
		cfg, err := Load(envFile)
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads envFile into the process environment (a missing file is fine, the
// environment alone is used then), builds Config with defaults and validates it.
// Variables already present in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	}
	requestTimeout, err := getDuration("REQUEST_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		APIAddress:       getString("API_ADDRESS", ":8080"),
		LogLevel:         getString("LOG_LEVEL", "info"),
		StoreDriver:      getString("STORE_DRIVER", "postgres"),
		PostgresAddress:  os.Getenv("POSTGRES_DB_ADDRESS"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		SQLitePath:       os.Getenv("SQLITE_PATH"),
		RequestTimeout:   requestTimeout,
		ShutdownTimeout:  shutdownTimeout,
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func getString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return d, nil
}

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS" validate:"required"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`

	// Datasets, all relative to DataDir
	DataDir     string `env:"DATA_DIR" validate:"required"`
	BaseDataset string `env:"BASE_DATASET" validate:"required"`
	SailDataset string `env:"SAIL_DATASET" validate:"required"`
	ImageMap    string `env:"IMAGE_MAP"`
	ImageDir    string `env:"IMAGE_DIR"`

	// History store
	StoreDriver string `env:"STORE_DRIVER" validate:"oneof=sqlite postgres redis"`
	SQLitePath  string `env:"SQLITE_PATH" validate:"required_if=StoreDriver sqlite"`
	PostgresDSN string `env:"POSTGRES_DSN" validate:"required_if=StoreDriver postgres"`
	RedisAddr   string `env:"REDIS_ADDR" validate:"required_if=StoreDriver redis"`

	// Background history writes
	WriteWorkers int  `env:"WRITE_WORKERS" validate:"min=1"`
	WriteBuffer  int  `env:"WRITE_BUFFER" validate:"min=0"`
	WriteRetries uint `env:"WRITE_RETRIES" validate:"min=1"`

	TrainingSize int `env:"TRAINING_SIZE" validate:"min=1"`
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// FromEnv reads the configuration through getenv and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	r := reader{getenv: getenv}
	cfg := &Config{
		ServerAddress:   r.str("SERVER_ADDRESS", ""),
		ShutdownTimeout: r.duration("SHUTDOWN_TIMEOUT"),
		DataDir:         r.str("DATA_DIR", "data"),
		BaseDataset:     r.str("BASE_DATASET", "Quiz_Patente_Base_Finale_OK"),
		SailDataset:     r.str("SAIL_DATASET", "Quiz_Patente_Vela_Finale_OK"),
		ImageMap:        r.str("IMAGE_MAP", "Raccordoimmagini"),
		ImageDir:        r.str("IMAGE_DIR", "Immagini_Quiz"),
		StoreDriver:     r.str("STORE_DRIVER", "sqlite"),
		SQLitePath:      r.str("SQLITE_PATH", "nautiquiz.db"),
		PostgresDSN:     r.str("POSTGRES_DSN", ""),
		RedisAddr:       r.str("REDIS_ADDR", ""),
		WriteWorkers:    r.integer("WRITE_WORKERS", 2),
		WriteBuffer:     r.integer("WRITE_BUFFER", 64),
		WriteRetries:    uint(r.integer("WRITE_RETRIES", 3)),
		TrainingSize:    r.integer("TRAINING_SIZE", 20),
	}
	if err := errors.Join(r.errs...); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// reader collects parse errors so every bad variable is reported at once.
type reader struct {
	getenv func(string) string
	errs   []error
}

func (r *reader) str(k, fallback string) string {
	if v := r.getenv(k); v != "" {
		return v
	}
	return fallback
}

func (r *reader) duration(k string) time.Duration {
	v := r.getenv(k)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s=%q is not a valid duration: %w", k, v, err))
	}
	return d
}

func (r *reader) integer(k string, fallback int) int {
	v := r.getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s=%q is not a valid integer", k, v))
		return fallback
	}
	if n < 0 {
		r.errs = append(r.errs, fmt.Errorf("%s=%q must not be negative", k, v))
		return fallback
	}
	return n
}

package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

type Config struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	MetricsEnabled  bool
	LogLevel        string
	LogDevelopment  bool
}

// Addr is the listen address, e.g. "0.0.0.0:5001".
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LoadDotEnv loads .env into the process environment if present. A missing
// file is not an error.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "load .env")
	}
	return nil
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var (
		cfg Config
		err error
	)

	cfg.Host = getEnvOrDefault("CALCULATOR_HOST", "0.0.0.0")

	cfg.Port, err = strconv.Atoi(getEnvOrDefault("CALCULATOR_PORT", "5001"))
	if err != nil || cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, invalid("CALCULATOR_PORT", err)
	}

	if cfg.ReadTimeout, err = millis("CALCULATOR_READ_TIMEOUT_MS", "5000"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = millis("CALCULATOR_WRITE_TIMEOUT_MS", "10000"); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = millis("CALCULATOR_SHUTDOWN_TIMEOUT_MS", "5000"); err != nil {
		return Config{}, err
	}

	cfg.MaxBodyBytes, err = strconv.ParseInt(getEnvOrDefault("CALCULATOR_MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || cfg.MaxBodyBytes <= 0 {
		return Config{}, invalid("CALCULATOR_MAX_BODY_BYTES", err)
	}

	cfg.MetricsEnabled, err = strconv.ParseBool(getEnvOrDefault("CALCULATOR_METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, invalid("CALCULATOR_METRICS_ENABLED", err)
	}

	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	cfg.LogDevelopment, err = strconv.ParseBool(getEnvOrDefault("LOG_DEVELOPMENT", "false"))
	if err != nil {
		return Config{}, invalid("LOG_DEVELOPMENT", err)
	}

	return cfg, nil
}

// ClientURL is the base URL the client CLI calls, from CALCULATOR_URL.
func ClientURL() string {
	return getEnvOrDefault("CALCULATOR_URL", "http://localhost:5001")
}

func millis(key, defaultValue string) (time.Duration, error) {
	ms, err := strconv.Atoi(getEnvOrDefault(key, defaultValue))
	if err != nil || ms < 0 {
		return 0, invalid(key, err)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func invalid(key string, err error) error {
	if err == nil {
		err = errors.New("value out of range")
	}
	return errors.Wrapf(err, "invalid %s", key)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

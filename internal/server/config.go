package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the service configuration with environment variable
// support.
type Config struct {
	// Server address
	Addr string `env:"IPSCOPE_ADDR" envDefault:":8080"`

	// Timeouts
	ReadTimeout     time.Duration `env:"IPSCOPE_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"IPSCOPE_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"IPSCOPE_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"IPSCOPE_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Header limits
	MaxHeaderBytes int `env:"IPSCOPE_MAX_HEADER_BYTES" envDefault:"1048576"` // 1MB

	// Logging
	LogLevel  string `env:"IPSCOPE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"IPSCOPE_LOG_FORMAT" envDefault:"text"` // text or json

	// Lookups
	DNSEnabled bool          `env:"IPSCOPE_DNS_ENABLED" envDefault:"true"`
	DNSTimeout time.Duration `env:"IPSCOPE_DNS_TIMEOUT" envDefault:"3s"`
}

// LoadConfig reads the configuration from the environment. A .env file
// in the working directory is folded in first when present; a missing
// file is not an error.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Addr == "" {
		return Config{}, fmt.Errorf("server address is required")
	}

	return cfg, nil
}

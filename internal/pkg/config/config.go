package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (backend address, etc.)
// - default: Values common across all environments (timeout, log level, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	API API
	Log Log
}

type API struct {
	BaseURL string        `envconfig:"API_BASE_URL" default:"http://localhost:5000"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
}

type Log struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func (a API) Endpoint(path string) string {
	return strings.TrimRight(a.BaseURL, "/") + path
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: API{
			BaseURL: "http://127.0.0.1:0", // replaced per test with the fake server address
			Timeout: 5 * time.Second,
		},
		Log: Log{
			Level: "error", // Error level only for tests
		},
	}
}

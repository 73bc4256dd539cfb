package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPTimeout int     `yaml:"http-timeout-seconds" env:"HTTP_TIMEOUT_SECONDS" env-default:"10"`
	Hexpawn     Arbiter `yaml:"hexpawn" env-prefix:"HEXPAWN_"`
	Nim         Arbiter `yaml:"nim" env-prefix:"NIM_"`
}

type Arbiter struct {
	BaseURL string `yaml:"base-url" env:"ARBITER_URL"`
}

// The two arbiter services run side by side, so each gets its own port.
const (
	defaultHexpawnURL = "http://localhost:5001"
	defaultNimURL     = "http://localhost:5002"
)

// MustLoad - load all configurations from the given file, falling back to
// environment variables and defaults when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from environment: %w", err))
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if config.Hexpawn.BaseURL == "" {
		config.Hexpawn.BaseURL = defaultHexpawnURL
	}
	if config.Nim.BaseURL == "" {
		config.Nim.BaseURL = defaultNimURL
	}

	return config
}

// ResolvePath prefers a config.yml next to the binary's working directory
// and falls back to the XDG config home.
func ResolvePath() string {
	local := "config.yml"
	if _, err := os.Stat(local); err == nil {
		return local
	}

	return filepath.Join(xdg.ConfigHome, "wizardgames", "config.yml")
}

func (that *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(that.HTTPTimeout) * time.Second
}

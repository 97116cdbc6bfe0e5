package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAddress        = ":8080"
	defaultBasePath       = "/"
	defaultBackendBaseURL = "http://localhost:8000/api"
	defaultBackendTimeout = 15 * time.Second
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultIdleTimeout    = 60 * time.Second
)

// Config captures runtime configuration for the Mission Control frontend.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Address      string        `yaml:"address"`
	BasePath     string        `yaml:"base_path"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// BackendConfig configures the REST backend the dashboard renders from.
type BackendConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	// DemoMode serves deterministic fixture data instead of calling the
	// backend, mirroring the backend's own DEMO_MODE seeding.
	DemoMode bool `yaml:"demo_mode"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:      defaultAddress,
			BasePath:     defaultBasePath,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
			IdleTimeout:  defaultIdleTimeout,
		},
		Backend: BackendConfig{
			BaseURL: defaultBackendBaseURL,
			Timeout: defaultBackendTimeout,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the optional YAML file at path, then applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("config: read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MISSION_HTTP_ADDR"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("PORT"); v != "" && os.Getenv("MISSION_HTTP_ADDR") == "" {
		cfg.Server.Address = ":" + v
	}
	if v := os.Getenv("MISSION_BASE_PATH"); v != "" {
		cfg.Server.BasePath = v
	}
	if v := os.Getenv("MISSION_BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("MISSION_DEMO_MODE"); v != "" {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Backend.DemoMode = parsed
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Server.Address) == "" {
		return fmt.Errorf("config: server address is required")
	}
	if !c.Backend.DemoMode && strings.TrimSpace(c.Backend.BaseURL) == "" {
		return fmt.Errorf("config: backend base_url is required unless demo_mode is set")
	}
	return nil
}

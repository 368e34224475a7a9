package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is read from a YAML file under the user's home directory.
// All fields are optional; defaults are applied by the accessor helpers.
//
// Example (~/.lawyer-assistant/config.yaml):
//
// server:
//   host: 127.0.0.1
//   port: 8173
// backend:
//   base_url: http://localhost:8000
//
// Notes:
// - If the config file does not exist, Load returns defaults without error.
// - If the config file exists but cannot be parsed, Load returns an error.
// - Environment variables LAWYER_ASSISTANT_PORT and
//   LAWYER_ASSISTANT_BACKEND_URL override the file.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
}

type ServerConfig struct {
	Host *string `yaml:"host"`
	Port *int    `yaml:"port"`
}

type BackendConfig struct {
	BaseURL *string `yaml:"base_url"`
}

const (
	DefaultHost       = "127.0.0.1"
	DefaultPort       = 8173
	DefaultBackendURL = "http://localhost:8000"
)

// DefaultPaths returns the config dir and config file path.
func DefaultPaths() (configDir string, configFile string, err error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", fmt.Errorf("get user home dir: %w", err)
	}
	configDir = filepath.Join(home, ".lawyer-assistant")
	configFile = filepath.Join(configDir, "config.yaml")
	return configDir, configFile, nil
}

// Load reads ~/.lawyer-assistant/config.yaml and applies env overrides.
// If the file doesn't exist, it returns a default config and nil error.
func Load() (*AppConfig, string, error) {
	_, configFile, err := DefaultPaths()
	if err != nil {
		return nil, "", err
	}

	cfg := &AppConfig{}

	b, err := os.ReadFile(configFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("read config file %s: %w", configFile, err)
		}
	} else if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, "", fmt.Errorf("parse yaml config %s: %w", configFile, err)
	}

	applyEnvOverrides(cfg)

	// Validate
	host := cfg.Host()
	if strings.TrimSpace(host) == "" {
		return nil, "", fmt.Errorf("invalid server.host (empty) in %s", configFile)
	}

	port := cfg.Port()
	if port < 1 || port > 65535 {
		return nil, "", fmt.Errorf("invalid server.port %d in %s", port, configFile)
	}

	if _, err := url.Parse(cfg.BackendURL()); err != nil {
		return nil, "", fmt.Errorf("invalid backend.base_url %q: %w", cfg.BackendURL(), err)
	}

	return cfg, configFile, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("LAWYER_ASSISTANT_PORT")); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = ptr(p)
		}
	}
	if v := strings.TrimSpace(os.Getenv("LAWYER_ASSISTANT_BACKEND_URL")); v != "" {
		cfg.Backend.BaseURL = ptr(v)
	}
}

// EnsureDefaultConfig writes a default config file if it doesn't already
// exist. It is safe to call on startup.
func EnsureDefaultConfig() (string, error) {
	configDir, configFile, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configFile); err == nil {
		return configFile, nil
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("create config dir %s: %w", configDir, err)
	}

	defaultCfg := AppConfig{
		Server:  ServerConfig{Host: ptr(DefaultHost), Port: ptr(DefaultPort)},
		Backend: BackendConfig{BaseURL: ptr(DefaultBackendURL)},
	}
	b, err := yaml.Marshal(&defaultCfg)
	if err != nil {
		return "", fmt.Errorf("marshal default config: %w", err)
	}

	// Write with restrictive permissions.
	if err := os.WriteFile(configFile, b, 0o600); err != nil {
		return "", fmt.Errorf("write default config file %s: %w", configFile, err)
	}

	return configFile, nil
}

func (c *AppConfig) Host() string {
	if c == nil || c.Server.Host == nil {
		return DefaultHost
	}
	v := strings.TrimSpace(*c.Server.Host)
	if v == "" {
		return DefaultHost
	}
	return v
}

func (c *AppConfig) Port() int {
	if c == nil || c.Server.Port == nil {
		return DefaultPort
	}
	return *c.Server.Port
}

func (c *AppConfig) BackendURL() string {
	if c == nil || c.Backend.BaseURL == nil {
		return DefaultBackendURL
	}
	v := strings.TrimSpace(*c.Backend.BaseURL)
	if v == "" {
		return DefaultBackendURL
	}
	return strings.TrimRight(v, "/")
}

func ptr[T any](v T) *T { return &v }

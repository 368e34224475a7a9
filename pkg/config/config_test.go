package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile_ReturnsDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LAWYER_ASSISTANT_PORT", "")
	t.Setenv("LAWYER_ASSISTANT_BACKEND_URL", "")

	cfg, path, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path == "" {
		t.Fatalf("expected config path")
	}
	if got := cfg.Host(); got != DefaultHost {
		t.Fatalf("cfg.Host() = %q, want %q", got, DefaultHost)
	}
	if got := cfg.Port(); got != DefaultPort {
		t.Fatalf("cfg.Port() = %d, want %d", got, DefaultPort)
	}
	if got := cfg.BackendURL(); got != DefaultBackendURL {
		t.Fatalf("cfg.BackendURL() = %q, want %q", got, DefaultBackendURL)
	}
}

func TestEnsureDefaultConfig_CreatesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := EnsureDefaultConfig()
	if err != nil {
		t.Fatalf("EnsureDefaultConfig() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to exist at %s: %v", path, err)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LAWYER_ASSISTANT_PORT", "")
	t.Setenv("LAWYER_ASSISTANT_BACKEND_URL", "")

	configDir := filepath.Join(home, ".lawyer-assistant")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")

	content := "server:\n  host: 0.0.0.0\n  port: 9090\nbackend:\n  base_url: http://10.0.0.5:8000/\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.Host(); got != "0.0.0.0" {
		t.Fatalf("cfg.Host() = %q, want %q", got, "0.0.0.0")
	}
	if got := cfg.Port(); got != 9090 {
		t.Fatalf("cfg.Port() = %d, want %d", got, 9090)
	}
	// Trailing slash is trimmed so request paths can be joined naively.
	if got := cfg.BackendURL(); got != "http://10.0.0.5:8000" {
		t.Fatalf("cfg.BackendURL() = %q, want %q", got, "http://10.0.0.5:8000")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LAWYER_ASSISTANT_PORT", "9999")
	t.Setenv("LAWYER_ASSISTANT_BACKEND_URL", "http://backend.internal:8000")

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.Port(); got != 9999 {
		t.Fatalf("cfg.Port() = %d, want %d", got, 9999)
	}
	if got := cfg.BackendURL(); got != "http://backend.internal:8000" {
		t.Fatalf("cfg.BackendURL() = %q, want %q", got, "http://backend.internal:8000")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LAWYER_ASSISTANT_PORT", "")
	t.Setenv("LAWYER_ASSISTANT_BACKEND_URL", "")

	configDir := filepath.Join(home, ".lawyer-assistant")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("server:\n  port: 123456\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, err := Load(); err == nil {
		t.Fatalf("Load() expected error for out-of-range port")
	}
}

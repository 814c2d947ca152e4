package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "s4.yml", `
base_url: https://s4.internal.example.com/
key_id: file-id
key_secret: file-secret
timeout: 45s
max_redirects: 5
log:
  level: debug
  format: json
`)

	cfg, err := Load(Options{ConfigFile: file})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://s4.internal.example.com/" {
		t.Errorf("unexpected base URL: %q", cfg.BaseURL)
	}
	if cfg.KeyID != "file-id" || cfg.KeySecret != "file-secret" {
		t.Errorf("unexpected credentials: %q / %q", cfg.KeyID, cfg.KeySecret)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.Timeout)
	}
	if cfg.MaxRedirects != 5 {
		t.Errorf("unexpected redirect cap: %d", cfg.MaxRedirects)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("S4_KEY_ID", "env-id")
	t.Setenv("S4_KEY_SECRET", "env-secret")
	t.Setenv("S4_TIMEOUT", "10s")

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.KeyID != "env-id" || cfg.KeySecret != "env-secret" {
		t.Errorf("unexpected credentials: %q / %q", cfg.KeyID, cfg.KeySecret)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.Timeout)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "s4.yml", `
key_id: file-id
key_secret: file-secret
`)
	t.Setenv("S4_KEY_ID", "env-id")

	cfg, err := Load(Options{ConfigFile: file})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.KeyID != "env-id" {
		t.Errorf("environment should win, got %q", cfg.KeyID)
	}
	if cfg.KeySecret != "file-secret" {
		t.Errorf("file value should survive, got %q", cfg.KeySecret)
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "S4_KEY_ID=dotenv-id\nS4_KEY_SECRET=dotenv-secret\n")
	// godotenv writes into the process environment
	t.Cleanup(func() {
		os.Unsetenv("S4_KEY_ID")
		os.Unsetenv("S4_KEY_SECRET")
	})

	cfg, err := Load(Options{EnvFile: envFile})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.KeyID != "dotenv-id" || cfg.KeySecret != "dotenv-secret" {
		t.Errorf("unexpected credentials: %q / %q", cfg.KeyID, cfg.KeySecret)
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	if _, err := Load(Options{}); err == nil {
		t.Fatal("expected validation error without credentials")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(Options{ConfigFile: "/does/not/exist.yml"}); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestConfig_ClientConfig(t *testing.T) {
	cfg := Config{
		BaseURL:      "https://s4.internal.example.com/",
		KeyID:        "id",
		KeySecret:    "secret",
		Timeout:      15 * time.Second,
		MaxRedirects: 4,
	}
	cc := cfg.ClientConfig()
	if cc.BaseURL != cfg.BaseURL || cc.KeyID != "id" || cc.KeySecret != "secret" {
		t.Errorf("bridge lost settings: %+v", cc)
	}
	if cc.Timeout != 15*time.Second || cc.MaxRedirects != 4 {
		t.Errorf("bridge lost settings: %+v", cc)
	}
	if cc.Logger == nil {
		t.Error("expected a logger to be constructed")
	}
}

package client

import (
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL %q, got %q", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Timeout)
	}
	if cfg.MaxRedirects != 10 {
		t.Errorf("expected default redirect cap 10, got %d", cfg.MaxRedirects)
	}
}

func TestConfig_ApplyDefaults_PreservesExisting(t *testing.T) {
	cfg := Config{
		BaseURL:      "https://s4.internal.example.com/",
		Timeout:      10 * time.Second,
		MaxRedirects: 3,
	}
	cfg.ApplyDefaults()
	if cfg.BaseURL != "https://s4.internal.example.com/" {
		t.Errorf("base URL changed: %q", cfg.BaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("timeout changed: %v", cfg.Timeout)
	}
	if cfg.MaxRedirects != 3 {
		t.Errorf("redirect cap changed: %d", cfg.MaxRedirects)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{KeyID: "id", KeySecret: "secret", Timeout: time.Second}, false},
		{"missing key id", Config{KeySecret: "secret", Timeout: time.Second}, true},
		{"missing key secret", Config{KeyID: "id", Timeout: time.Second}, true},
		{"invalid timeout", Config{KeyID: "id", KeySecret: "secret", Timeout: -1}, true},
		{"mismatched tls pair", Config{
			KeyID: "id", KeySecret: "secret", Timeout: time.Second,
			TLS: &TLSConfig{CertFile: "cert.pem"},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsConfiguration(err) {
				t.Errorf("validation failure should be a configuration error, got %v", err)
			}
		})
	}
}

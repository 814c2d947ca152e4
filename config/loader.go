package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Options control where Load looks for settings.
type Options struct {
	// ConfigFile is an explicit YAML file. When empty, s4.yml / s4.yaml
	// in the working directory and ~/.s4/config.yml are tried.
	ConfigFile string

	// EnvFile is an explicit dotenv file. When empty, .env in the
	// working directory is used when present.
	EnvFile string
}

// envKeys are the settings that can arrive via S4_* environment
// variables. Viper only surfaces env-backed keys it knows about.
var envKeys = []string{
	"base_url",
	"key_id",
	"key_secret",
	"timeout",
	"max_redirects",
	"log.level",
	"log.format",
	"log.output",
}

// Load resolves SDK settings. Precedence, lowest to highest: YAML file,
// dotenv file, process environment.
func Load(opts Options) (*Config, error) {
	if envFile := resolveEnvFile(opts.EnvFile); envFile != "" {
		// godotenv never overrides variables already present in the
		// process environment, which keeps the precedence order
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("S4")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	if configFile := resolveConfigFile(opts.ConfigFile); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range []string{"s4.yml", "s4.yaml"} {
		if fileExists(path) {
			return path
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".s4", "config.yml")
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func resolveEnvFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if fileExists(".env") {
		return ".env"
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

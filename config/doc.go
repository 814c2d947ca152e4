// Package config loads SDK settings from YAML files, dotenv files, and
// S4_* environment variables, in that order of precedence (environment
// wins).
//
//	cfg, err := config.Load(config.Options{})
//	c, err := client.New(cfg.ClientConfig())
//
// Recognized environment variables: S4_KEY_ID, S4_KEY_SECRET,
// S4_BASE_URL, S4_TIMEOUT, S4_MAX_REDIRECTS.
package config

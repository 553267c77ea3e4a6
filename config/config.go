package config

import "os"

// defaultRelayURL is the hosted form-relay endpoint that emails submissions
// to the school. Overridable via RELAY_URL (tests point it at a stub).
const defaultRelayURL = "https://formspree.io/f/xojjjabe"

type Config struct {
	Port     string
	RelayURL string
}

// Load reads configuration from the environment, falling back to defaults
// that match the production site.
func Load() Config {
	cfg := Config{
		Port:     os.Getenv("PORT"),
		RelayURL: os.Getenv("RELAY_URL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.RelayURL == "" {
		cfg.RelayURL = defaultRelayURL
	}
	return cfg
}

// Package config loads runtime settings from the environment, with an
// optional .env file for development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process settings shared by the CLI, TUI and server.
type Config struct {
	DataDir string // persona store directory
	Locale  string // value-provider locale
	Addr    string // HTTP listen address for serve
}

// Load reads a .env file when present, then the environment, falling back
// to defaults.
func Load() *Config {
	// a missing .env file is the normal case outside development
	_ = godotenv.Load()

	return &Config{
		DataDir: getEnv("ZPERSONA_DATA_DIR", DefaultDataDir()),
		Locale:  getEnv("ZPERSONA_LOCALE", "en_US"),
		Addr:    getEnv("ZPERSONA_ADDR", "localhost:5000"),
	}
}

// DefaultDataDir returns the XDG data directory for zpersona.
func DefaultDataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zpersona"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zpersona"
	}
	return home + "/.local/share/zpersona"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

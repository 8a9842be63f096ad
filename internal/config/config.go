// Package config reads JORDLE settings from the environment, after loading
// an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Client configures `jordle play` and `jordle dict`.
type Client struct {
	APIURL      string
	HTTPTimeout time.Duration // zero disables the timeout
	LogFile     string        // empty disables logging
	LogLevel    string
}

// Server configures `jordle serve`.
type Server struct {
	Port          string
	LogLevel      string
	ClientOrigin  string
	JWTSecret     string
	SecureCookies bool
	DBPath        string // empty disables results persistence
	WordMode      string
	DailySalt     string
	DailyZone     *time.Location
	Dictionary    string // empty uses the embedded dictionary
}

// LoadDotenv loads .env from the working directory if present.
func LoadDotenv() {
	_ = godotenv.Load()
}

// LoadClient reads client settings.
func LoadClient() (Client, error) {
	timeout, err := durationFromEnv("JORDLE_HTTP_TIMEOUT", 0)
	if err != nil {
		return Client{}, err
	}
	return Client{
		APIURL:      getEnv("JORDLE_API_URL", "http://localhost:3001"),
		HTTPTimeout: timeout,
		LogFile:     getEnv("LOG_FILE", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}, nil
}

// LoadServer reads server settings.
func LoadServer() (Server, error) {
	secure, err := boolFromEnv("SECURE_COOKIES", false)
	if err != nil {
		return Server{}, err
	}
	zone, err := time.LoadLocation(getEnv("DAILY_TZ", "UTC"))
	if err != nil {
		return Server{}, fmt.Errorf("invalid DAILY_TZ: %w", err)
	}
	cfg := Server{
		Port:          getEnv("PORT", "3001"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		ClientOrigin:  getEnv("CLIENT_ORIGIN", "http://localhost:3000"),
		JWTSecret:     getEnv("JWT_SECRET", "dev_secret_change_me"),
		SecureCookies: secure,
		DBPath:        getEnv("DB_PATH", ""),
		WordMode:      getEnv("WORD_MODE", "random"),
		DailySalt:     getEnv("DAILY_SALT", "local_dev_salt"),
		DailyZone:     zone,
		Dictionary:    getEnv("DICTIONARY_FILE", ""),
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated settings.
func (c Server) Validate() error {
	switch c.WordMode {
	case "random", "daily":
	default:
		return fmt.Errorf("invalid WORD_MODE %q", c.WordMode)
	}
	if c.Port == "" {
		return fmt.Errorf("empty PORT")
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func durationFromEnv(k string, def time.Duration) (time.Duration, error) {
	raw := getEnv(k, "")
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration env %s=%q: %w", k, raw, err)
	}
	return d, nil
}

func boolFromEnv(k string, def bool) (bool, error) {
	raw := getEnv(k, "")
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid bool env %s=%q: %w", k, raw, err)
	}
	return b, nil
}

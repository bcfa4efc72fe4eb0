// Package config loads per-service configuration from the environment.
// Each service builds one immutable config struct at startup and refuses to
// start when a required variable is absent.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// loadDotenv reads a .env file if one is present. Missing files are fine;
// real deployments set variables directly.
func loadDotenv() {
	_ = godotenv.Load()
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func requireEnv(key string, missing *[]string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		*missing = append(*missing, key)
	}
	return v
}

// getInt parses an optional positive integer. An unset variable yields the
// fallback; a malformed value refuses startup instead of silently running
// with the default.
func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func missingError(missing []string) error {
	return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
}

// minutesEnv parses a positive integer number of minutes.
func minutesEnv(key string, missing *[]string) (time.Duration, error) {
	v := requireEnv(key, missing)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return time.Duration(n) * time.Minute, nil
}

// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	API    APIConfig
	Data   DataConfig
	Mock   MockConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// APIConfig holds Eastlify backend connection configuration.
type APIConfig struct {
	BaseURL string        // Backend base URL, e.g. http://localhost:5050
	Timeout time.Duration // HTTP request timeout (default: 30s)
	// ActivityRPS limits public activity pings per shop so casual browsing
	// does not hammer the backend (default: 1 rps, burst 3).
	ActivityRPS   float64
	ActivityBurst int
}

// DataConfig holds local state storage configuration.
type DataConfig struct {
	// Dir is the directory for the local Badger database that holds the
	// persisted auth token and favorites (default: ~/.eastlify).
	Dir string
}

// MockConfig holds mock backend configuration (cmd/mockapi).
type MockConfig struct {
	Port string // Listen port (default: 5050)
	// TokenKey is the PASETO v4 symmetric key as 64 hex characters.
	// Generated fresh on startup when empty, which is fine for a mock.
	TokenKey      string
	TokenDuration time.Duration // Issued token lifetime (default: 720h)
}

// Load loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("eastlify", flag.ContinueOnError)

	env := fs.String("env", "", "Environment (development, staging, production)")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	apiURL := fs.String("api-url", "", "Eastlify backend base URL")
	apiTimeout := fs.String("api-timeout", "", "HTTP request timeout (default: 30s)")
	dataDir := fs.String("data-dir", "", "Directory for local state (token, favorites)")
	mockPort := fs.String("mock-port", "", "Mock backend listen port (default: 5050)")
	mockTokenKey := fs.String("mock-token-key", "", "Mock backend PASETO key (64 hex chars)")
	mockTokenDuration := fs.String("mock-token-duration", "", "Mock backend token lifetime (default: 720h)")
	envFile := fs.String("env-file", ".env", "Path to .env file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	// Build config with proper precedence.
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:       strings.TrimRight(getConfigValue(*apiURL, "EASTLIFY_API_URL", "http://localhost:5050"), "/"),
			ActivityRPS:   1.0,
			ActivityBurst: 3,
		},
		Data: DataConfig{
			Dir: getConfigValue(*dataDir, "EASTLIFY_DATA_DIR", ""),
		},
		Mock: MockConfig{
			Port:     getConfigValue(*mockPort, "MOCK_PORT", "5050"),
			TokenKey: getConfigValue(*mockTokenKey, "MOCK_TOKEN_KEY", ""),
		},
	}

	// Parse API timeout.
	timeoutStr := getConfigValue(*apiTimeout, "EASTLIFY_API_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid api timeout %q: %w", timeoutStr, err)
	}
	cfg.API.Timeout = timeout

	// Parse mock token duration.
	tokenDurationStr := getConfigValue(*mockTokenDuration, "MOCK_TOKEN_DURATION", "720h")
	tokenDuration, err := time.ParseDuration(tokenDurationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid mock token duration %q: %w", tokenDurationStr, err)
	}
	cfg.Mock.TokenDuration = tokenDuration

	// Expand and validate the data directory.
	if err := cfg.expandDataDir(); err != nil {
		return nil, fmt.Errorf("invalid data dir: %w", err)
	}

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.API.BaseURL == "" {
		return errors.New("EASTLIFY_API_URL cannot be empty")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("invalid api url: %s (must start with http:// or https://)", c.API.BaseURL)
	}

	if c.Data.Dir == "" {
		return errors.New("data dir cannot be empty after expansion")
	}

	return nil
}

// expandDataDir expands ~ and makes the path absolute.
// Defaults to ~/.eastlify when unset.
func (c *Config) expandDataDir() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, ".eastlify")

	expanded, err := expandPath(c.Data.Dir, defaultPath)
	if err != nil {
		return err
	}
	c.Data.Dir = expanded
	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// getConfigValue returns the first non-empty value: flag, env var, default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Strip surrounding quotes.
		value = strings.Trim(value, `"'`)

		// Only set if not already present in the environment.
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}

	return scanner.Err()
}

// Package config has the configuration file for the app
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Port               string
	Address            string
	Env                string
	LogLevel           string
	LogDir             string
	RxNavBaseURL       string        // Base URL of the RxNav REST API
	FDABaseURL         string        // Base URL of the openFDA API
	HTTPTimeout        time.Duration // Timeout applied to every upstream call
	FDAPageLimit       int           // Max listings requested per openFDA search
	MonitorIntervalMin int           // Minutes between upstream health probes
}

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnvWithDefault("PORT", "8000"),
		Address:            getEnvWithDefault("ADDRESS", "127.0.0.1"),
		Env:                getEnvWithDefault("ENV", "dev"),
		LogLevel:           getEnvWithDefault("LOG_LEVEL", "info"),
		LogDir:             getEnvWithDefault("LOG_DIR", "logs"),
		RxNavBaseURL:       getEnvWithDefault("RXNAV_BASE_URL", "https://rxnav.nlm.nih.gov"),
		FDABaseURL:         getEnvWithDefault("FDA_BASE_URL", "https://api.fda.gov"),
		HTTPTimeout:        time.Duration(getIntEnvWithDefault("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		FDAPageLimit:       getIntEnvWithDefault("FDA_PAGE_LIMIT", 100),
		MonitorIntervalMin: getIntEnvWithDefault("MONITOR_INTERVAL_MINUTES", 15),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig validates all configuration values
func validateConfig(cfg *Config) error {
	if err := validatePort(cfg.Port); err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	if err := validateAddress(cfg.Address); err != nil {
		return fmt.Errorf("invalid ADDRESS: %w", err)
	}

	if err := validateEnv(cfg.Env); err != nil {
		return fmt.Errorf("invalid ENV: %w", err)
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := validateBaseURL(cfg.RxNavBaseURL); err != nil {
		return fmt.Errorf("invalid RXNAV_BASE_URL: %w", err)
	}

	if err := validateBaseURL(cfg.FDABaseURL); err != nil {
		return fmt.Errorf("invalid FDA_BASE_URL: %w", err)
	}

	if cfg.HTTPTimeout < time.Second || cfg.HTTPTimeout > 5*time.Minute {
		return fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS: must be between 1 and 300, got %s", cfg.HTTPTimeout)
	}

	if cfg.FDAPageLimit < 1 || cfg.FDAPageLimit > 1000 {
		return fmt.Errorf("invalid FDA_PAGE_LIMIT: must be between 1 and 1000, got %d", cfg.FDAPageLimit)
	}

	if cfg.MonitorIntervalMin < 1 || cfg.MonitorIntervalMin > 1440 {
		return fmt.Errorf("invalid MONITOR_INTERVAL_MINUTES: must be between 1 and 1440, got %d", cfg.MonitorIntervalMin)
	}

	return nil
}

// validatePort validates the PORT environment variable
func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	// Check for privileged ports
	if portNum < 1024 {
		return fmt.Errorf("PORT %d is privileged (less than 1024), use ports 1024-65535", portNum)
	}

	return nil
}

// validateAddress validates the ADDRESS environment variable
func validateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("ADDRESS cannot be empty")
	}

	if address == "127.0.0.1" || address == "::1" || address == "localhost" {
		return nil
	}

	if ip := net.ParseIP(address); ip == nil {
		return fmt.Errorf("ADDRESS must be a valid IP address or 'localhost', got: %s", address)
	}

	return nil
}

// validateEnv validates the ENV environment variable
func validateEnv(env string) error {
	validEnvs := []string{"dev", "staging", "prod", "test"}
	env = strings.ToLower(env)

	for _, validEnv := range validEnvs {
		if env == validEnv {
			return nil
		}
	}

	return fmt.Errorf("ENV must be one of: %v, got: %s", validEnvs, env)
}

// validateLogLevel validates the LOG_LEVEL environment variable
func validateLogLevel(logLevel string) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	logLevel = strings.ToLower(logLevel)

	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

// validateBaseURL validates an upstream base URL
func validateBaseURL(base string) error {
	if base == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("base URL must be a valid URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https, got: %s", base)
	}

	if u.Host == "" {
		return fmt.Errorf("base URL must have a host, got: %s", base)
	}

	return nil
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnvWithDefault gets an environment variable as int with a default value
func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvVars returns a list of all expected environment variables
func GetEnvVars() []string {
	return []string{
		"PORT",
		"ADDRESS",
		"ENV",
		"LOG_LEVEL",
		"LOG_DIR",
		"RXNAV_BASE_URL",
		"FDA_BASE_URL",
		"HTTP_TIMEOUT_SECONDS",
		"FDA_PAGE_LIMIT",
		"MONITOR_INTERVAL_MINUTES",
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Admin auth configuration
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
}

// LoadConfig creates a new Config instance from environment variables,
// falling back to Docker secrets for sensitive values outside CI.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getSensitive("DB_USER", "db_user", "postgres"),
		DBPassword: getSensitive("DB_PASSWORD", "db_password", ""),
		DBName:     getEnv("DB_NAME", "dailydish"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getSensitive("REDIS_PASSWORD", "redis_password", ""),
		RedisDB:       0,
		RedisURL:      getEnv("REDIS_URL", ""),

		JWTSecret:         getSensitive("JWT_SECRET", "jwt_secret", ""),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getSensitive("ADMIN_PASSWORD_HASH", "admin_password_hash", ""),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getSensitive reads a sensitive value: environment variable first (CI and
// development), then a Docker secret file, then the fallback.
func getSensitive(envKey, secretName, fallback string) string {
	if value := os.Getenv(envKey); value != "" {
		return value
	}
	if value := readSecret(secretName); value != "" {
		return value
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

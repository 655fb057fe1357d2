package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable in the current
// environment. Development and test run fine on defaults; production must
// carry real credentials.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, "server port is required")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		errors = append(errors, "database host, port and name are required")
	}

	if GetEnvironment() == Production {
		if cfg.DBPassword == "" {
			errors = append(errors, "db_password secret is required in production")
		}
		if cfg.JWTSecret == "" {
			errors = append(errors, "jwt_secret secret is required in production")
		}
		if cfg.AdminPasswordHash == "" {
			errors = append(errors, "admin_password_hash secret is required in production")
		}
		if cfg.DBSSLMode == "disable" {
			errors = append(errors, "database SSL must be enabled in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}

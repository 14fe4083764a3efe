package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ValidationRule checks a single environment variable at startup.
type ValidationRule struct {
	Variable string
	Default  string
	Rule     func(value string) bool
	Message  string
}

// ValidateEnv applies defaults and validates every rule, collecting all
// failures into one error so misconfiguration is reported in a single pass.
func ValidateEnv(rules []ValidationRule) error {
	var errors []string
	for _, rule := range rules {
		value := os.Getenv(rule.Variable)
		if value == "" && rule.Default != "" {
			os.Setenv(rule.Variable, rule.Default)
			value = rule.Default
		}
		if !rule.Rule(value) {
			errors = append(errors, rule.Message)
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}
	return nil
}

// IsValidPort reports whether the value parses as a TCP port number.
func IsValidPort(port string) bool {
	portNum, err := strconv.Atoi(port)
	return err == nil && portNum > 0 && portNum <= 65535
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

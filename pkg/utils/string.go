package utils

import "strings"

// NormalizeEmail standardizes email format
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

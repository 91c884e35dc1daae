package util

import "os"

// GetEnvironmentVariable reads an environment variable, falling back to the
// given default when it is unset or empty.
func GetEnvironmentVariable(name string, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}

	return defaultValue
}

package procutil

import (
	"os"
	"strings"
	"time"
)

// EnvVar is the name of an environment variable.
type EnvVar string

func LookupBoolEnv(name EnvVar, defaultValue bool) bool {
	if val, ok := os.LookupEnv(string(name)); ok {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultValue
}

// LookupStringEnv returns the value of the variable, or defaultValue when it
// is unset or empty.
func LookupStringEnv(name EnvVar, defaultValue string) string {
	if val, ok := os.LookupEnv(string(name)); ok && val != "" {
		return val
	}
	return defaultValue
}

// LookupDurationEnv parses the variable with time.ParseDuration, returning
// defaultValue when it is unset or malformed.
func LookupDurationEnv(name EnvVar, defaultValue time.Duration) time.Duration {
	if val, ok := os.LookupEnv(string(name)); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultValue
}

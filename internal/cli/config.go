package cli

import (
	"os"
	"strings"
)

// Config holds the environment switches read at startup.
type Config struct {
	// StrictPID rejects pid arguments that are not a plain decimal uint32
	// instead of reading the leading digits.
	StrictPID bool

	// Debug traces every OS step on stderr.
	Debug bool
}

// ConfigFromEnv reads SUSRES_STRICT_PID and SUSRES_DEBUG.
func ConfigFromEnv() Config {
	return Config{
		StrictPID: envEnabled("SUSRES_STRICT_PID"),
		Debug:     envEnabled("SUSRES_DEBUG"),
	}
}

// envEnabled treats "1", "true" and "yes" (any case) as on and everything
// else, including unset, as off.
func envEnabled(name string) bool {
	s := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	return s == "1" || s == "true" || s == "yes"
}

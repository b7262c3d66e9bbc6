package env

import (
	"os"
	"strings"
)

// Get reads an environment variable, falling back when it is unset or
// blank. Whitespace-only values count as unset; a variable holding a
// stray space must not silently override the fallback.
func Get(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

package httpapi

import (
	"os"
	"strings"
)

// Config holds HTTP server settings.
type Config struct {
	// Addr is the listen address.
	Addr string

	// CORSOrigins is the allowed origin list for browser clients.
	CORSOrigins []string
}

// DefaultConfig returns sensible defaults for local development.
func DefaultConfig() Config {
	return Config{
		Addr: ":5000",
		CORSOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults:
//   - COURSEWELL_ADDR: listen address
//   - COURSEWELL_CORS_ORIGINS: comma-separated origin list
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("COURSEWELL_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("COURSEWELL_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORSOrigins = origins
		}
	}
	return cfg
}

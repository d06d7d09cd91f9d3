package tutor

import "time"

// Config holds tutor generation settings.
type Config struct {
	// Timeout bounds each gateway call. The session is never mutated
	// for a call that did not complete.
	Timeout time.Duration

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for tutor calls.
func DefaultConfig() Config {
	return Config{
		Timeout:     30 * time.Second,
		MaxTokens:   512,
		Temperature: 0.5,
	}
}

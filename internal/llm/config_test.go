package llm

import (
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("COURSEWELL_LLM_PROVIDER", "anthropic")
	t.Setenv("COURSEWELL_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("COURSEWELL_ANTHROPIC_MODEL", "claude-sonnet")
	t.Setenv("COURSEWELL_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" || cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("anthropic config = %+v", cfg.Anthropic)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestConfigFromEnvBareGeminiKey(t *testing.T) {
	t.Setenv("COURSEWELL_LLM_PROVIDER", "")
	t.Setenv("COURSEWELL_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "g-test")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want default gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-test" {
		t.Errorf("gemini key = %q, want fallback from GEMINI_API_KEY", cfg.Gemini.APIKey)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"gemini with key", func(c *Config) { c.Provider = "gemini"; c.Gemini.APIKey = "k" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "skynet" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

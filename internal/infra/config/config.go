// Package config provides application-wide configuration loaded from env
// vars, with an optional YAML file for model-catalog and server overrides.
// All fields have safe defaults so the binary runs locally without any env
// setup (it just has no available providers until a key is configured).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Credential is an API key as read from the environment. Present reports
// whether the variable was set at all: availability checks test presence,
// not non-emptiness, so an intentionally empty value still counts as
// configured.
type Credential struct {
	Value   string
	Present bool
}

// Config holds runtime configuration for the A2UI backend.
type Config struct {
	Addr string // A2UI_ADDR — default: ":8000"

	OpenAIKey     Credential // OPENAI_API_KEY
	AnthropicKey  Credential // ANTHROPIC_API_KEY
	GeminiKey     Credential // GEMINI_API_KEY
	TavilyKey     Credential // TAVILY_API_KEY
	OpenAIBaseURL string     // OPENAI_BASE_URL — optional, for compatible endpoints

	DBPath string // A2UI_DB — usage log path; empty disables the log

	// Models overrides a provider's model catalog by provider id. Only
	// settable through the YAML file.
	Models map[string][]ModelOption
}

// ModelOption is one selectable model in a provider catalog.
type ModelOption struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

const (
	envKeyAddr          = "A2UI_ADDR"
	envKeyOpenAI        = "OPENAI_API_KEY"
	envKeyAnthropic     = "ANTHROPIC_API_KEY"
	envKeyGemini        = "GEMINI_API_KEY"
	envKeyTavily        = "TAVILY_API_KEY"
	envKeyOpenAIBaseURL = "OPENAI_BASE_URL"
	envKeyDBPath        = "A2UI_DB"
)

// Load reads configuration from environment variables, applying defaults
// for missing values.
func Load() Config {
	return Config{
		Addr:          envOr(envKeyAddr, ":8000"),
		OpenAIKey:     credential(envKeyOpenAI),
		AnthropicKey:  credential(envKeyAnthropic),
		GeminiKey:     credential(envKeyGemini),
		TavilyKey:     credential(envKeyTavily),
		OpenAIBaseURL: os.Getenv(envKeyOpenAIBaseURL),
		DBPath:        os.Getenv(envKeyDBPath),
	}
}

// fileConfig is the YAML shape of the optional config file.
type fileConfig struct {
	Addr   string                   `yaml:"addr"`
	DB     string                   `yaml:"db"`
	Models map[string][]ModelOption `yaml:"models"`
}

// ApplyFile merges the YAML file at path over c. For scalars the env also
// covers, env wins: defaults < file < env.
func (c *Config) ApplyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %q: %w", path, err)
	}
	var f fileConfig
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("config: parse %q: %w", path, err)
	}

	if f.Addr != "" && os.Getenv(envKeyAddr) == "" {
		c.Addr = f.Addr
	}
	if f.DB != "" && os.Getenv(envKeyDBPath) == "" {
		c.DBPath = f.DB
	}
	if len(f.Models) > 0 {
		c.Models = f.Models
	}
	return nil
}

// credential reads key with os.LookupEnv so presence survives even when the
// value is empty.
func credential(key string) Credential {
	v, ok := os.LookupEnv(key)
	return Credential{Value: v, Present: ok}
}

// envOr returns the value of the environment variable key, or fallback if
// not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string
	Env  string // "development" or "production"

	// Chat provider credentials and models
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string

	// Speech synthesis
	MurfAPIKey  string
	MurfBaseURL string

	// App settings
	DefaultAIProvider string
	AllowedOrigin     string
	RateLimitWindow   time.Duration
	RateLimitMax      int
	VoicesFile        string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "5001"),
		Env:               getEnv("APP_ENV", "development"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		MurfAPIKey:        os.Getenv("MURF_API_KEY"),
		MurfBaseURL:       getEnv("MURF_BASE_URL", "https://api.murf.ai/v1"),
		DefaultAIProvider: getEnv("DEFAULT_AI_PROVIDER", "gemini"),
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		RateLimitWindow:   getDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		RateLimitMax:      getInt("RATE_LIMIT_MAX", 100),
		VoicesFile:        os.Getenv("VOICES_FILE"),
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT must not be empty")
	}
	if cfg.RateLimitMax <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_MAX must be positive")
	}

	return cfg, nil
}

// Production reports whether error messages should be hidden from
// callers.
func (c *Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

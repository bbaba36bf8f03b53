package config

import (
	"os"
	"strings"
)

// UpstreamURL is OpenRouter's OpenAI-compatible chat completions endpoint.
const UpstreamURL = "https://openrouter.ai/api/v1/chat/completions"

const defaultPort = "8000"

// Config is loaded once in main and passed down explicitly; nothing
// below main reads the environment.
type Config struct {
	Port          string
	DefaultAPIKey string
	UpstreamURL   string
}

// Load reads the process configuration from the environment. A missing
// OPENROUTER_API_KEY is not fatal here: requests without an X-API-Key
// header simply fail with 401.
func Load() Config {
	return Config{
		Port:          getenvOr("PORT", defaultPort),
		DefaultAPIKey: strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")),
		UpstreamURL:   UpstreamURL,
	}
}

func getenvOr(key, fallback string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	return val
}

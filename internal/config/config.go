package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	ServerAddr     string
	GeminiAPIKey   string
	ChatModel      string
	Provider       string
	OpenAIBaseURL  string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
}

// Load reads the environment, after applying a .env file when one exists.
// A missing API key is not an error here: it is reported on every consultation.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	return &Config{
		ServerAddr:     getenv("SERVER_ADDR", "0.0.0.0:8000"),
		GeminiAPIKey:   strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		ChatModel:      getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		Provider:       strings.ToLower(getenv("LLM_PROVIDER", ProviderGemini)),
		OpenAIBaseURL:  getenv("OPENAI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		RequestTimeout: getenvDuration("REQUEST_TIMEOUT", 0),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "text"),
	}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return def
}

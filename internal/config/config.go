package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DocsDir string

	OpenAIAPIKey string
	Model        string

	MockMode bool // true = never call the real provider

	CompletionTimeout time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getBoolEnv accepts "1", "true" and "yes" (any case) as truthy.
func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load reads all env vars and builds the config. A .env file is honored when
// present; its absence is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8080"),

		DocsDir: getEnv("DOCS_DIR", "./docs"),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		Model:        getEnv("OPENAI_MODEL", "gpt-4.1-mini"),

		MockMode: getBoolEnv("MOCK_MODE", false),

		CompletionTimeout: time.Duration(getIntEnv("COMPLETION_TIMEOUT_SECS", 30)) * time.Second,
	}
}

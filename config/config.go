package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	ProviderGemini = "gemini"
	ProviderVertex = "vertex"
)

type Config struct {
	Port string

	Provider string

	GeminiAPIKey string
	GeminiModel  string

	GoogleCloudProject  string
	GoogleCloudLocation string

	AllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		Provider:            strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GoogleCloudProject:  getEnv("GOOGLE_CLOUD_PROJECT", ""),
		GoogleCloudLocation: getEnv("GOOGLE_CLOUD_LOCATION", "us-central1"),
		AllowedOrigins:      splitCSV(getEnv("ALLOWED_ORIGINS", "*")),
	}

	switch cfg.Provider {
	case ProviderGemini, ProviderVertex:
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q, want %s or %s", cfg.Provider, ProviderGemini, ProviderVertex)
	}

	if cfg.Provider == ProviderVertex && cfg.GoogleCloudProject == "" {
		return nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT is required when LLM_PROVIDER=%s", ProviderVertex)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

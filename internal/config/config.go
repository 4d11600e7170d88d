// README: Config loader with env defaults for HTTP, AI provider, DB, Redis, and planner settings.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Provider selects which generation backend the service talks to.
const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderAgent      = "agent"
)

type PlannerConfig struct {
	Discipline         string
	UnitTimeoutSeconds int
	CacheTTLHours      int
}

type AIConfig struct {
	Provider         string
	GeminiKey        string
	OpenRouterKey    string
	Model            string
	MaxTokens        int
	MaxSteps         int
	InstructionsPath string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	// DB and Redis are optional; an empty value disables the corresponding
	// persistence feature.
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Maps struct {
		APIKey string
	}
	AI      AIConfig
	Planner PlannerConfig
}

func Load() (Config, error) {
	// A local .env is a convenience for development; absence is not an error.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("ROUTES_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("ROUTES_DB_DSN")
	cfg.Redis.Addr = os.Getenv("ROUTES_REDIS_ADDR")
	cfg.Maps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")

	cfg.AI.Provider = envOrDefault("ROUTES_AI_PROVIDER", ProviderGemini)
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.OpenRouterKey = os.Getenv("OPENROUTER_API_KEY")
	cfg.AI.Model = os.Getenv("ROUTES_AI_MODEL")
	cfg.AI.MaxTokens = envOrDefaultInt("ROUTES_AI_MAX_TOKENS", 16000)
	cfg.AI.MaxSteps = envOrDefaultInt("ROUTES_AI_MAX_STEPS", 6)
	cfg.AI.InstructionsPath = envOrDefault("ROUTES_AI_INSTRUCTIONS", "system_prompt.txt")

	cfg.Planner.Discipline = envOrDefault("ROUTES_PLANNER_DISCIPLINE", "parallel")
	cfg.Planner.UnitTimeoutSeconds = envOrDefaultInt("ROUTES_PLANNER_UNIT_TIMEOUT", 120)
	cfg.Planner.CacheTTLHours = envOrDefaultInt("ROUTES_PLANNER_CACHE_TTL_HOURS", 24)

	switch cfg.AI.Provider {
	case ProviderGemini, ProviderAgent:
		if cfg.AI.GeminiKey == "" {
			return cfg, fmt.Errorf("config: GEMINI_API_KEY is required for provider %q", cfg.AI.Provider)
		}
	case ProviderOpenRouter:
		if cfg.AI.OpenRouterKey == "" {
			return cfg, fmt.Errorf("config: OPENROUTER_API_KEY is required for provider %q", cfg.AI.Provider)
		}
	default:
		return cfg, fmt.Errorf("config: unknown AI provider %q", cfg.AI.Provider)
	}

	if cfg.Planner.Discipline != "parallel" && cfg.Planner.Discipline != "sequential" {
		return cfg, fmt.Errorf("config: unknown planner discipline %q", cfg.Planner.Discipline)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

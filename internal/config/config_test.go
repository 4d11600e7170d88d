// README: Config loader tests.
package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.AI.Provider != ProviderGemini {
		t.Fatalf("expected default provider gemini, got %q", cfg.AI.Provider)
	}
	if cfg.AI.MaxTokens != 16000 {
		t.Fatalf("expected default max tokens 16000, got %d", cfg.AI.MaxTokens)
	}
	if cfg.Planner.Discipline != "parallel" {
		t.Fatalf("expected default discipline parallel, got %q", cfg.Planner.Discipline)
	}
	if cfg.Planner.UnitTimeoutSeconds != 120 {
		t.Fatalf("expected default unit timeout 120s, got %d", cfg.Planner.UnitTimeoutSeconds)
	}
}

func TestLoadRequiresProviderKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when the selected provider has no key")
	}

	t.Setenv("ROUTES_AI_PROVIDER", ProviderOpenRouter)
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when openrouter key is missing")
	}

	t.Setenv("OPENROUTER_API_KEY", "or-key")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.Provider != ProviderOpenRouter {
		t.Fatalf("expected openrouter provider, got %q", cfg.AI.Provider)
	}
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	t.Setenv("ROUTES_AI_PROVIDER", "crystal-ball")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown provider")
	}

	t.Setenv("ROUTES_AI_PROVIDER", ProviderGemini)
	t.Setenv("ROUTES_PLANNER_DISCIPLINE", "chaotic")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown discipline")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("ROUTES_HTTP_ADDR", ":9999")
	t.Setenv("ROUTES_AI_MAX_TOKENS", "2048")
	t.Setenv("ROUTES_PLANNER_DISCIPLINE", "sequential")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":9999" {
		t.Fatalf("expected overridden addr, got %q", cfg.HTTP.Addr)
	}
	if cfg.AI.MaxTokens != 2048 {
		t.Fatalf("expected overridden max tokens, got %d", cfg.AI.MaxTokens)
	}
	if cfg.Planner.Discipline != "sequential" {
		t.Fatalf("expected sequential discipline, got %q", cfg.Planner.Discipline)
	}
}

// README: Entry point; loads config, wires the AI provider and services, starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Semhumc/ai-agent-service/internal/ai"
	"github.com/Semhumc/ai-agent-service/internal/config"
	httptransport "github.com/Semhumc/ai-agent-service/internal/http"
	"github.com/Semhumc/ai-agent-service/internal/infra"
	"github.com/Semhumc/ai-agent-service/internal/maps"
	"github.com/Semhumc/ai-agent-service/internal/modules/aiusage"
	"github.com/Semhumc/ai-agent-service/internal/modules/itinerary"
	"github.com/Semhumc/ai-agent-service/internal/modules/plans"
	"github.com/Semhumc/ai-agent-service/internal/webfetch"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := newProvider(ctx, cfg.AI, cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("ai provider init: %v", err)
	}
	defer provider.Close()

	planner := itinerary.NewService(provider, itinerary.Config{
		Discipline:  itinerary.Discipline(cfg.Planner.Discipline),
		UnitTimeout: time.Duration(cfg.Planner.UnitTimeoutSeconds) * time.Second,
	})

	var planStore *plans.Store
	var usageStore *aiusage.Store
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
		planStore = plans.NewStore(dbPool)
		usageStore = aiusage.NewStore(dbPool)
	}

	var planCache *plans.Cache
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		defer redisClient.Close()
		planCache = plans.NewCache(redisClient, time.Duration(cfg.Planner.CacheTTLHours)*time.Hour)
	}

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Planner: planner,
		Plans:   plans.NewService(planStore, planCache),
		Usage:   aiusage.NewService(usageStore),
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s (provider=%s, discipline=%s)", cfg.HTTP.Addr, cfg.AI.Provider, cfg.Planner.Discipline)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// newProvider builds the generation backend named by the config. The agent
// provider gets web and places tools when their dependencies are available.
func newProvider(ctx context.Context, cfg config.AIConfig, mapsKey string) (ai.Provider, error) {
	aiCfg := ai.Config{
		Model:        cfg.Model,
		MaxTokens:    cfg.MaxTokens,
		MaxSteps:     cfg.MaxSteps,
		Instructions: ai.LoadInstructions(cfg.InstructionsPath),
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		return ai.NewGeminiProvider(ctx, cfg.GeminiKey, aiCfg)
	case config.ProviderOpenRouter:
		return ai.NewOpenRouterProvider(cfg.OpenRouterKey, aiCfg)
	case config.ProviderAgent:
		var places ai.PlaceSearcher
		if mapsKey != "" {
			svc, err := maps.NewPlacesService(mapsKey)
			if err != nil {
				return nil, err
			}
			places = svc
		}
		return ai.NewGeminiAgent(ctx, cfg.GeminiKey, aiCfg, webfetch.NewFetcher(), places)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

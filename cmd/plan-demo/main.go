// README: CLI demo; runs the full planning pipeline once and prints the collection.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Semhumc/ai-agent-service/internal/ai"
	"github.com/Semhumc/ai-agent-service/internal/modules/itinerary"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey, ai.Config{
		Instructions: ai.LoadInstructions("system_prompt.txt"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	svc := itinerary.NewService(provider, itinerary.Config{})

	req := itinerary.TripRequest{
		UserID:        "demo",
		Name:          "Aegean coast road trip",
		Description:   "Relaxed camper trip with short daily drives",
		StartPosition: "Istanbul",
		EndPosition:   "Izmir",
		StartDate:     "2026-09-10",
		EndDate:       "2026-09-14",
	}

	collection, outcomes := svc.GenerateOptions(ctx, req)

	out, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		log.Fatalf("marshal collection: %v", err)
	}
	fmt.Println(string(out))
	fmt.Printf("fallbacks used: %d of %d\n", itinerary.FallbackCount(outcomes), len(outcomes))
}

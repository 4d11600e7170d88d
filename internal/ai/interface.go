// README: Generation-service boundary (provider contract and tool hooks).
package ai

import "context"

// Provider is the contract for one itinerary generation call. The upstream
// model is untrusted and loosely formatted: a provider returns whatever it
// produced, structured or not, and the itinerary pipeline makes it safe.
type Provider interface {
	// GenerateItinerary runs a single completion for the given prompt.
	GenerateItinerary(ctx context.Context, prompt string) (Result, error)

	// Close releases any underlying client resources.
	Close() error
}

// WebFetcher turns a URL into readable text. Used only as an optional tool
// of the agentic provider, never by the core pipeline.
type WebFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// PlaceSearcher looks up real-world places for the agentic provider's
// search tool.
type PlaceSearcher interface {
	Search(ctx context.Context, query, near string) (string, error)
}

// README: Cache key tests.
package plans

import (
	"testing"

	"github.com/Semhumc/ai-agent-service/internal/modules/itinerary"
)

func TestCacheKeyDeterministic(t *testing.T) {
	req := itinerary.TripRequest{
		Name:          "coast trip",
		StartPosition: "A",
		EndPosition:   "B",
		StartDate:     "2026-06-01",
		EndDate:       "2026-06-03",
	}
	if cacheKey(req) != cacheKey(req) {
		t.Fatalf("identical requests must share a cache key")
	}

	other := req
	other.EndDate = "2026-06-04"
	if cacheKey(req) == cacheKey(other) {
		t.Fatalf("different requests must not share a cache key")
	}
}

func TestCacheKeyFieldsDoNotBleed(t *testing.T) {
	// The digest separates fields, so shifting a suffix between adjacent
	// fields changes the key.
	a := itinerary.TripRequest{Name: "ab", Description: "c"}
	b := itinerary.TripRequest{Name: "a", Description: "bc"}
	if cacheKey(a) == cacheKey(b) {
		t.Fatalf("field boundaries must be preserved in the digest")
	}
}

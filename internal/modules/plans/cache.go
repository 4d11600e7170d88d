// README: Result cache for generated collections backed by Redis.
package plans

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Semhumc/ai-agent-service/internal/modules/itinerary"
)

const (
	cacheKeyPrefix = "plans:result:"
	// DefaultCacheTTL bounds how long an identical request may reuse a
	// previous collection.
	DefaultCacheTTL = 24 * time.Hour
)

// Cache stores assembled collections keyed by a digest of the request.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCache returns a Cache with the given TTL. A non-positive ttl falls back
// to DefaultCacheTTL.
func NewCache(redis *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{redis: redis, ttl: ttl}
}

// cacheKey digests the request fields that influence generation. Two requests
// with the same digest would produce the same prompts.
func cacheKey(req itinerary.TripRequest) string {
	sum := sha256.Sum256([]byte(req.Name + "\x00" + req.Description + "\x00" +
		req.StartPosition + "\x00" + req.EndPosition + "\x00" +
		req.StartDate + "\x00" + req.EndDate))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached collection for req, or false on miss or decode
// failure.
func (c *Cache) Get(ctx context.Context, req itinerary.TripRequest) (itinerary.TripPlanCollection, bool) {
	var collection itinerary.TripPlanCollection
	raw, err := c.redis.Get(ctx, cacheKey(req)).Bytes()
	if err != nil {
		return collection, false
	}
	if err := json.Unmarshal(raw, &collection); err != nil {
		return collection, false
	}
	return collection, len(collection.TripOptions) > 0
}

// Set stores the collection for req. Errors are returned for the caller to
// log; a failed write never affects the response.
func (c *Cache) Set(ctx context.Context, req itinerary.TripRequest, collection itinerary.TripPlanCollection) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, cacheKey(req), raw, c.ttl).Err()
}

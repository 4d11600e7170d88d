// README: Plan history service; best-effort recording and cache lookups.
package plans

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Semhumc/ai-agent-service/internal/modules/itinerary"
)

// DefaultHistoryLimit caps how many records a history query returns.
const DefaultHistoryLimit = 20

// Service wraps the store and cache. Either dependency may be nil when the
// deployment runs without Postgres or Redis; every method degrades to a no-op
// in that case so the generation path never depends on persistence.
type Service struct {
	store *Store
	cache *Cache
}

func NewService(store *Store, cache *Cache) *Service {
	return &Service{store: store, cache: cache}
}

// Lookup returns a previously cached collection for an identical request.
func (s *Service) Lookup(ctx context.Context, req itinerary.TripRequest) (itinerary.TripPlanCollection, bool) {
	if s == nil || s.cache == nil {
		return itinerary.TripPlanCollection{}, false
	}
	return s.cache.Get(ctx, req)
}

// Record persists the collection and primes the cache. Failures are logged
// and swallowed; the caller has already assembled its response.
func (s *Service) Record(ctx context.Context, req itinerary.TripRequest, uid string, collection itinerary.TripPlanCollection, fallbacks int) {
	if s == nil {
		return
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, req, collection); err != nil {
			log.Printf("plans: cache write failed: %v", err)
		}
	}
	if s.store == nil {
		return
	}
	doc, err := json.Marshal(collection)
	if err != nil {
		log.Printf("plans: marshal record failed: %v", err)
		return
	}
	rec := Record{
		ID:            uuid.NewString(),
		UserID:        uid,
		Name:          req.Name,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Document:      doc,
		FallbackCount: fallbacks,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		log.Printf("plans: insert record failed: %v", err)
	}
}

// History returns the newest records for a user.
func (s *Service) History(ctx context.Context, uid string, limit int) ([]Record, error) {
	if s == nil || s.store == nil {
		return nil, ErrNotFound
	}
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	return s.store.ListByUser(ctx, uid, limit)
}

package aiusage

import "context"

// Service gates plan generation behind a monthly per-user allowance.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store. A nil store
// disables quota enforcement entirely.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Consume deducts one generation from the user's monthly allowance. If the
// user row does not exist yet it is initialised and the generation is
// immediately consumed. Returns ErrQuotaExhausted when the quota for the
// current month is spent. A Service without a store always allows.
func (s *Service) Consume(ctx context.Context, uid string) error {
	if s == nil || s.store == nil {
		return nil
	}
	err := s.store.Consume(ctx, uid)
	if err != ErrQuotaExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.Consume(ctx, uid)
}

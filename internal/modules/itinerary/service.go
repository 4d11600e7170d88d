// README: Orchestrator: runs themed units sequentially or bounded-parallel,
// substitutes fallbacks, and always assembles a complete collection.
package itinerary

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Semhumc/ai-agent-service/internal/ai"
)

// Discipline selects how the orchestrator schedules its units.
type Discipline string

const (
	// DisciplineSequential runs units in registration order; the final
	// collection follows that order.
	DisciplineSequential Discipline = "sequential"
	// DisciplineParallel runs all units at once (pool size = K) and collects
	// options in completion order.
	DisciplineParallel Discipline = "parallel"
)

// DefaultUnitTimeout is the wall-clock budget of one unit.
const DefaultUnitTimeout = 120 * time.Second

// Config is the immutable orchestrator configuration, assembled once at
// startup and passed in explicitly.
type Config struct {
	Themes      []ThemeDefinition
	Discipline  Discipline
	UnitTimeout time.Duration
}

// Service owns the fixed theme set and turns one TripRequest into validated
// itinerary records. All four failure classes (upstream, timeout, extraction,
// validation) are absorbed at the unit boundary; callers always receive a
// complete, structurally valid result.
type Service struct {
	provider ai.Provider
	cfg      Config
}

// NewService builds the orchestrator. The theme set defaults to the standard
// three themes and is immutable afterwards.
func NewService(provider ai.Provider, cfg Config) *Service {
	if len(cfg.Themes) == 0 {
		cfg.Themes = DefaultThemes()
	}
	if cfg.UnitTimeout <= 0 {
		cfg.UnitTimeout = DefaultUnitTimeout
	}
	if cfg.Discipline == "" {
		cfg.Discipline = DisciplineParallel
	}
	return &Service{provider: provider, cfg: cfg}
}

// Themes returns the registered theme set.
func (s *Service) Themes() []ThemeDefinition {
	return s.cfg.Themes
}

// GenerateOptions produces the multi-option collection: one unit per theme,
// exactly K entries, each attributed to its theme. It never fails; the
// returned outcomes let callers account for substituted fallbacks.
func (s *Service) GenerateOptions(ctx context.Context, req TripRequest) (TripPlanCollection, []Outcome) {
	var outcomes []Outcome
	if s.cfg.Discipline == DisciplineSequential {
		outcomes = s.runSequential(ctx, req)
	} else {
		outcomes = s.runParallel(ctx, req)
	}
	return s.assemble(req, outcomes), outcomes
}

// GenerateSingle is the single-plan variant: one unit, no theme attribution.
func (s *Service) GenerateSingle(ctx context.Context, req TripRequest) (TripOption, Outcome) {
	outcome := s.runUnit(ctx, req, ThemeDefinition{}, 0)
	return outcome.Option, outcome
}

// GenerateCombined asks the provider for the whole multi-option document in
// one call. A document with the wrong option count is rejected wholesale and
// replaced by the complete default collection.
func (s *Service) GenerateCombined(ctx context.Context, req TripRequest) TripPlanCollection {
	k := len(s.cfg.Themes)
	unitCtx, cancel := context.WithTimeout(ctx, s.cfg.UnitTimeout)
	defer cancel()

	result, err := s.provider.GenerateItinerary(unitCtx, BuildCollectionPrompt(req, s.cfg.Themes))
	if err != nil {
		log.Printf("combined generation failed, synthesizing full collection: %v", err)
		return SynthesizeCollection(req, s.cfg.Themes)
	}

	doc, unitErr := Extract(result.Document, result.Text, func(v any) bool {
		return ValidCollectionDocument(v, k)
	})
	if unitErr != nil {
		log.Printf("combined document rejected (%s), synthesizing full collection", unitErr.Kind)
		return SynthesizeCollection(req, s.cfg.Themes)
	}
	return collectionFromDocument(doc, s.cfg.Themes)
}

// runSequential resolves units one by one in registration order. A failed
// unit is replaced in place and the loop continues unconditionally.
func (s *Service) runSequential(ctx context.Context, req TripRequest) []Outcome {
	outcomes := make([]Outcome, 0, len(s.cfg.Themes))
	for i, theme := range s.cfg.Themes {
		outcomes = append(outcomes, s.runUnit(ctx, req, theme, i))
	}
	return outcomes
}

// runParallel submits every unit at once and collects outcomes as they
// complete. Each unit has its own wall-clock budget; a timed-out unit is
// abandoned (never cancelled mid-flight by a sibling) and its slot is filled
// with the theme's fallback. A late result lands in a buffered channel and
// is discarded.
func (s *Service) runParallel(ctx context.Context, req TripRequest) []Outcome {
	results := make(chan Outcome, len(s.cfg.Themes))

	for i, theme := range s.cfg.Themes {
		go func(idx int, th ThemeDefinition) {
			done := make(chan Outcome, 1)
			go func() {
				done <- s.runUnit(ctx, req, th, idx)
			}()

			select {
			case outcome := <-done:
				results <- outcome
			case <-time.After(s.cfg.UnitTimeout):
				log.Printf("unit %q timed out after %s, substituting fallback", th.Label, s.cfg.UnitTimeout)
				results <- Outcome{
					Theme:   th,
					Index:   idx,
					State:   UnitResolved,
					Option:  SynthesizeOption(req, th, idx),
					Failure: &UnitError{Kind: FailureTimeout, Err: fmt.Errorf("unit exceeded %s budget", s.cfg.UnitTimeout)},
				}
			}
		}(i, theme)
	}

	outcomes := make([]Outcome, 0, len(s.cfg.Themes))
	for range s.cfg.Themes {
		outcomes = append(outcomes, <-results)
	}
	return outcomes
}

// runUnit drives one theme through the pipeline:
// pending -> running -> succeeded|failed -> resolved.
// The returned outcome always carries a structurally valid option.
func (s *Service) runUnit(ctx context.Context, req TripRequest, theme ThemeDefinition, idx int) Outcome {
	outcome := Outcome{Theme: theme, Index: idx, State: UnitPending}
	outcome.State = UnitRunning

	unitCtx, cancel := context.WithTimeout(ctx, s.cfg.UnitTimeout)
	defer cancel()

	result, err := s.provider.GenerateItinerary(unitCtx, BuildOptionPrompt(req, theme))
	if err != nil {
		kind := FailureUpstream
		if unitCtx.Err() == context.DeadlineExceeded {
			kind = FailureTimeout
		}
		return s.resolveFailed(req, outcome, &UnitError{Kind: kind, Err: err})
	}

	doc, unitErr := Extract(result.Document, result.Text, ValidOptionDocument)
	if unitErr != nil {
		return s.resolveFailed(req, outcome, unitErr)
	}

	outcome.State = UnitSucceeded
	outcome.Option = optionFromDocument(doc, theme)
	outcome.State = UnitResolved
	return outcome
}

// resolveFailed records the failure classification and fills the slot with
// the deterministic fallback. Nothing propagates past the unit boundary.
func (s *Service) resolveFailed(req TripRequest, outcome Outcome, unitErr *UnitError) Outcome {
	log.Printf("unit %q failed (%s): %v", outcome.Theme.Label, unitErr.Kind, unitErr.Err)
	outcome.State = UnitFailed
	outcome.Failure = unitErr
	outcome.Option = SynthesizeOption(req, outcome.Theme, outcome.Index)
	outcome.State = UnitResolved
	return outcome
}

// assemble builds the final collection from resolved outcomes. The guard
// around assembly is the last line of defense: if it panics for any reason
// the caller still receives a complete default collection.
func (s *Service) assemble(req TripRequest, outcomes []Outcome) (collection TripPlanCollection) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("assembly panicked, returning default collection: %v", r)
			collection = SynthesizeCollection(req, s.cfg.Themes)
		}
	}()

	collection = TripPlanCollection{TripOptions: make([]TripOption, 0, len(outcomes))}
	for _, outcome := range outcomes {
		collection.TripOptions = append(collection.TripOptions, outcome.Option)
	}
	return collection
}

// FallbackCount reports how many options of a collection carry the
// placeholder marker. Used for best-effort history accounting.
func FallbackCount(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Failure != nil {
			n++
		}
	}
	return n
}

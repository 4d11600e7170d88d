// README: Fallback synthesizer tests (determinism, density, validity).
package itinerary

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSynthesizeOptionDeterministic(t *testing.T) {
	req := testRequest()
	theme := DefaultThemes()[1]

	first := SynthesizeOption(req, theme, 1)
	second := SynthesizeOption(req, theme, 1)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs should synthesize identical options")
	}
}

func TestSynthesizeOptionDayDensity(t *testing.T) {
	req := testRequest() // 2026-06-01 .. 2026-06-03
	opt := SynthesizeOption(req, ThemeDefinition{Label: "nature"}, 0)

	if len(opt.DailyPlan) != 3 {
		t.Fatalf("expected 3 daily entries, got %d", len(opt.DailyPlan))
	}
	dates := []string{"2026-06-01", "2026-06-02", "2026-06-03"}
	for i, entry := range opt.DailyPlan {
		if entry.Day != i+1 {
			t.Fatalf("entry %d: expected day %d, got %d", i, i+1, entry.Day)
		}
		if entry.Date != dates[i] {
			t.Fatalf("entry %d: expected date %s, got %s", i, dates[i], entry.Date)
		}
		if entry.Location.Name == "" || entry.Location.Address == "" {
			t.Fatalf("entry %d: location must carry name and address", i)
		}
	}
	if opt.Trip.TotalDays != 3 {
		t.Fatalf("expected trip snapshot with 3 total days, got %d", opt.Trip.TotalDays)
	}
}

func TestSynthesizeOptionThemeOffsets(t *testing.T) {
	req := testRequest()
	a := SynthesizeOption(req, ThemeDefinition{Label: "nature"}, 0)
	b := SynthesizeOption(req, ThemeDefinition{Label: "history"}, 1)

	latA := a.DailyPlan[0].Location.Latitude
	latB := b.DailyPlan[0].Location.Latitude
	if latA == latB {
		t.Fatalf("different theme indexes should produce offset coordinates")
	}
	diff := latB - latA
	if diff < fallbackThemeStep-1e-9 || diff > fallbackThemeStep+1e-9 {
		t.Fatalf("expected offset of %v between consecutive themes, got %v", fallbackThemeStep, diff)
	}
}

func TestSynthesizeOptionPassesValidator(t *testing.T) {
	raw, err := json.Marshal(SynthesizeOption(testRequest(), ThemeDefinition{}, 0))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ValidOptionDocument(v) {
		t.Fatalf("synthesized option must satisfy the structural validator")
	}
}

func TestSynthesizeCollectionCompleteness(t *testing.T) {
	themes := DefaultThemes()
	collection := SynthesizeCollection(testRequest(), themes)

	if len(collection.TripOptions) != len(themes) {
		t.Fatalf("expected %d options, got %d", len(themes), len(collection.TripOptions))
	}
	for i, opt := range collection.TripOptions {
		if opt.Theme != themes[i].Label {
			t.Fatalf("option %d: expected theme %q, got %q", i, themes[i].Label, opt.Theme)
		}
	}
}

func TestSynthesizeOptionBadDates(t *testing.T) {
	req := testRequest()
	req.StartDate = "someday"
	req.EndDate = "later"

	opt := SynthesizeOption(req, ThemeDefinition{Label: "nature"}, 0)
	if len(opt.DailyPlan) != 1 {
		t.Fatalf("unparseable dates should still yield one day, got %d", len(opt.DailyPlan))
	}
}

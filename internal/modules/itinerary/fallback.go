// README: Deterministic fallback synthesis of minimally valid itineraries.
package itinerary

import "fmt"

// The fallback pins placeholder locations near a fixed base pair and nudges
// each theme by a small offset so the placeholder points are visually
// distinguishable on a map. The coordinates are not real geography.
const (
	fallbackBaseLat   = 41.0082
	fallbackBaseLng   = 28.9784
	fallbackThemeStep = 0.01
)

// SynthesizeOption builds a minimally valid TripOption from the original
// request. It is total and deterministic, never calls the generation
// service, and is the substitute for every failed unit. theme may be the
// zero value in the single-plan variant; themeIndex drives the coordinate
// offset.
func SynthesizeOption(req TripRequest, theme ThemeDefinition, themeIndex int) TripOption {
	days := req.TotalDays()
	start := req.startTime()

	label := theme.Label
	if label == "" {
		label = "general"
	}
	description := theme.Description
	if description == "" {
		description = fmt.Sprintf("Placeholder %s itinerary for %s", label, req.Name)
	}

	lat := fallbackBaseLat + float64(themeIndex)*fallbackThemeStep
	lng := fallbackBaseLng + float64(themeIndex)*fallbackThemeStep

	plan := make([]DailyPlanEntry, 0, days)
	for i := 0; i < days; i++ {
		plan = append(plan, DailyPlanEntry{
			Day:  i + 1,
			Date: start.AddDate(0, 0, i).Format(DateLayout),
			Location: Location{
				Name:      fmt.Sprintf("%s stop near %s (day %d)", label, req.StartPosition, i+1),
				Address:   fmt.Sprintf("%s area, %s route", req.StartPosition, label),
				Latitude:  lat,
				Longitude: lng,
				Notes:     "Automatically generated placeholder. The planner could not produce a detailed itinerary for this day.",
			},
		})
	}

	return TripOption{
		Theme:       theme.Label,
		Description: description,
		Trip:        snapshot(req),
		DailyPlan:   plan,
	}
}

// SynthesizeCollection builds a complete default collection: one fallback
// option per registered theme, in registration order.
func SynthesizeCollection(req TripRequest, themes []ThemeDefinition) TripPlanCollection {
	out := TripPlanCollection{TripOptions: make([]TripOption, 0, len(themes))}
	for i, theme := range themes {
		out.TripOptions = append(out.TripOptions, SynthesizeOption(req, theme, i))
	}
	return out
}

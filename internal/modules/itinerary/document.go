// README: Lenient decoding of validated generic documents into typed options.
package itinerary

import (
	"strconv"
	"strings"
)

// The generator fabricates numbers as JSON numbers, quoted strings or worse.
// These converters never fail: a value that cannot be coerced becomes the
// zero value, matching the upstream behavior of casting with a constant
// fallback and never range-checking.

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return 0
}

func asInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return 0
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// optionFromDocument decodes a validated single-plan document into a typed
// TripOption. theme may be the zero value for the single-plan variant.
func optionFromDocument(doc map[string]any, theme ThemeDefinition) TripOption {
	opt := TripOption{
		Theme:       theme.Label,
		Description: theme.Description,
	}
	if label := asString(doc["theme"]); label != "" {
		opt.Theme = label
	}
	if desc := asString(doc["description"]); desc != "" {
		opt.Description = desc
	}

	trip := asMap(doc["trip"])
	opt.Trip = TripDetails{
		UserID:        asString(trip["user_id"]),
		Name:          asString(trip["name"]),
		Description:   asString(trip["description"]),
		StartPosition: asString(trip["start_position"]),
		EndPosition:   asString(trip["end_position"]),
		StartDate:     asString(trip["start_date"]),
		EndDate:       asString(trip["end_date"]),
		TotalDays:     asInt(trip["total_days"]),
	}

	for _, raw := range asSlice(doc["daily_plan"]) {
		entry := asMap(raw)
		loc := asMap(entry["location"])
		opt.DailyPlan = append(opt.DailyPlan, DailyPlanEntry{
			Day:  asInt(entry["day"]),
			Date: asString(entry["date"]),
			Location: Location{
				Name:      asString(loc["name"]),
				Address:   asString(loc["address"]),
				SiteURL:   asString(loc["site_url"]),
				Latitude:  asFloat(loc["latitude"]),
				Longitude: asFloat(loc["longitude"]),
				Notes:     asString(loc["notes"]),
			},
		})
	}
	return opt
}

// collectionFromDocument decodes a validated multi-option document. Theme
// attribution follows document order against the registered theme set.
func collectionFromDocument(doc map[string]any, themes []ThemeDefinition) TripPlanCollection {
	var out TripPlanCollection
	for i, raw := range asSlice(doc["trip_options"]) {
		theme := ThemeDefinition{}
		if i < len(themes) {
			theme = themes[i]
		}
		out.TripOptions = append(out.TripOptions, optionFromDocument(asMap(raw), theme))
	}
	return out
}

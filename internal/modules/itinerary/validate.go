// README: Structural validation of parsed itinerary documents.
package itinerary

// requiredTripFields are the eight fields every trip snapshot must carry.
var requiredTripFields = []string{
	"user_id",
	"name",
	"description",
	"start_position",
	"end_position",
	"start_date",
	"end_date",
	"total_days",
}

// ValidOptionDocument reports whether v has the single-plan shape: a mapping
// with a complete "trip" snapshot and a non-empty "daily_plan" whose entries
// each carry day, date and a location with at least name and address.
//
// Validation is strictly structural (key presence plus container kind); the
// values themselves are whatever the generator fabricated.
func ValidOptionDocument(v any) bool {
	doc, ok := v.(map[string]any)
	if !ok {
		return false
	}
	trip, ok := doc["trip"].(map[string]any)
	if !ok {
		return false
	}
	for _, field := range requiredTripFields {
		if _, ok := trip[field]; !ok {
			return false
		}
	}

	plan, ok := doc["daily_plan"].([]any)
	if !ok || len(plan) == 0 {
		return false
	}
	for _, raw := range plan {
		entry, ok := raw.(map[string]any)
		if !ok {
			return false
		}
		if _, ok := entry["day"]; !ok {
			return false
		}
		if _, ok := entry["date"]; !ok {
			return false
		}
		loc, ok := entry["location"].(map[string]any)
		if !ok {
			return false
		}
		if _, ok := loc["name"]; !ok {
			return false
		}
		if _, ok := loc["address"]; !ok {
			return false
		}
	}
	return true
}

// ValidCollectionDocument reports whether v has the multi-option shape:
// "trip_options" with exactly k entries, each carrying theme and description
// on top of the full single-plan rules.
//
// A wrong entry count rejects the whole document; the caller substitutes a
// complete fallback collection rather than patching individual entries.
func ValidCollectionDocument(v any, k int) bool {
	doc, ok := v.(map[string]any)
	if !ok {
		return false
	}
	options, ok := doc["trip_options"].([]any)
	if !ok || len(options) != k {
		return false
	}
	for _, raw := range options {
		entry, ok := raw.(map[string]any)
		if !ok {
			return false
		}
		if _, ok := entry["theme"]; !ok {
			return false
		}
		if _, ok := entry["description"]; !ok {
			return false
		}
		if !ValidOptionDocument(entry) {
			return false
		}
	}
	return true
}

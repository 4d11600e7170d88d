// README: Prompt construction for themed itinerary generation.
package itinerary

import (
	"fmt"
	"strings"
)

const singlePlanSchema = `{
  "trip": {
    "user_id": "string",
    "name": "string",
    "description": "string",
    "start_position": "string",
    "end_position": "string",
    "start_date": "YYYY-MM-DD",
    "end_date": "YYYY-MM-DD",
    "total_days": 3
  },
  "daily_plan": [
    {
      "day": 1,
      "date": "YYYY-MM-DD",
      "location": {
        "name": "string",
        "address": "string",
        "site_url": "string",
        "latitude": 41.0,
        "longitude": 29.0,
        "notes": "string"
      }
    }
  ]
}`

func writeRequest(b *strings.Builder, req TripRequest) {
	fmt.Fprintf(b, "Trip request:\n")
	fmt.Fprintf(b, "- User ID: %s\n", req.UserID)
	fmt.Fprintf(b, "- Plan name: %s\n", req.Name)
	fmt.Fprintf(b, "- Description: %s\n", req.Description)
	fmt.Fprintf(b, "- Start position: %s\n", req.StartPosition)
	fmt.Fprintf(b, "- End position: %s\n", req.EndPosition)
	fmt.Fprintf(b, "- Start date: %s\n", req.StartDate)
	fmt.Fprintf(b, "- End date: %s\n", req.EndDate)
	fmt.Fprintf(b, "- Total days: %d\n", req.TotalDays())
}

// BuildOptionPrompt asks for one themed single-plan document. theme may be
// the zero value in the single-plan variant.
func BuildOptionPrompt(req TripRequest, theme ThemeDefinition) string {
	var b strings.Builder
	b.WriteString("Create a travel itinerary for the following request and answer with exactly one JSON document in the schema below. No prose, no markdown.\n\n")
	writeRequest(&b, req)

	if theme.Label != "" {
		fmt.Fprintf(&b, "\nTheme: %s - %s\n", theme.Label, theme.Description)
		fmt.Fprintf(&b, "Strategy: %s\n", theme.Strategy)
	}

	fmt.Fprintf(&b, "\nHard constraints:\n")
	fmt.Fprintf(&b, "- daily_plan has exactly %d entries, day = 1..%d with no gaps.\n", req.TotalDays(), req.TotalDays())
	fmt.Fprintf(&b, "- date of day N is start_date plus N-1 days, format YYYY-MM-DD.\n")
	fmt.Fprintf(&b, "- Copy the trip fields from the request verbatim.\n")

	b.WriteString("\nSchema:\n")
	b.WriteString(singlePlanSchema)
	return b.String()
}

// BuildCollectionPrompt asks for the whole multi-option document in one call.
func BuildCollectionPrompt(req TripRequest, themes []ThemeDefinition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create %d alternative travel itineraries for the following request and answer with exactly one JSON document: {\"trip_options\": [...]} with exactly %d entries. No prose, no markdown.\n\n", len(themes), len(themes))
	writeRequest(&b, req)

	b.WriteString("\nThemes, one option per theme in this order:\n")
	for i, theme := range themes {
		fmt.Fprintf(&b, "%d. %s - %s (%s)\n", i+1, theme.Label, theme.Description, theme.Strategy)
	}

	fmt.Fprintf(&b, "\nEach entry carries \"theme\", \"description\" and the fields of this schema:\n")
	b.WriteString(singlePlanSchema)
	fmt.Fprintf(&b, "\n\nHard constraints:\n")
	fmt.Fprintf(&b, "- Exactly %d entries in trip_options.\n", len(themes))
	fmt.Fprintf(&b, "- daily_plan of every entry has exactly %d days, dates derived from start_date.\n", req.TotalDays())
	return b.String()
}

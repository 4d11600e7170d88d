// README: Itinerary domain model (trip request, themes, options, collections).
package itinerary

import (
	"time"
)

// DateLayout is the calendar format used for all itinerary dates.
const DateLayout = "2006-01-02"

// TripRequest is the inbound planning request. It is created once per call
// and read-only afterwards.
type TripRequest struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	StartPosition string `json:"start_position"`
	EndPosition   string `json:"end_position"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
}

// TotalDays derives the inclusive day count between StartDate and EndDate.
// It never returns less than 1, even for unparseable or inverted dates, so
// downstream synthesis always has at least one day to fill.
func (r TripRequest) TotalDays() int {
	start, err1 := time.Parse(DateLayout, r.StartDate)
	end, err2 := time.Parse(DateLayout, r.EndDate)
	if err1 != nil || err2 != nil {
		return 1
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// startTime parses StartDate, falling back to the zero time so callers stay
// deterministic on bad input.
func (r TripRequest) startTime() time.Time {
	t, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ThemeDefinition names one thematic variant and the research strategy the
// generation prompt should follow for it. The theme set is fixed at
// construction and immutable for the process lifetime.
type ThemeDefinition struct {
	Label       string
	Description string
	Strategy    string
}

// DefaultThemes is the standard three-theme set used by the multi-option API.
func DefaultThemes() []ThemeDefinition {
	return []ThemeDefinition{
		{
			Label:       "nature",
			Description: "Nature-focused route with parks, trails and scenic viewpoints",
			Strategy:    "Prioritise national parks, lakes, waterfalls and camping-friendly stops between the start and end positions.",
		},
		{
			Label:       "history",
			Description: "History-focused route with museums, monuments and old towns",
			Strategy:    "Prioritise historical sites, museums, castles and heritage districts between the start and end positions.",
		},
		{
			Label:       "adventure",
			Description: "Adventure-focused route with hikes, water sports and activities",
			Strategy:    "Prioritise hiking trails, rafting, climbing and other outdoor activities between the start and end positions.",
		},
	}
}

// Location is a single place on the daily plan. Latitude and longitude are
// whatever the generator fabricated; only their presence is enforced.
type Location struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	SiteURL   string  `json:"site_url,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Notes     string  `json:"notes,omitempty"`
}

// DailyPlanEntry is one day of a TripOption. Day is 1-based and dense:
// within an option the day values are exactly 1..N with date = start+(day-1).
type DailyPlanEntry struct {
	Day      int      `json:"day"`
	Date     string   `json:"date"`
	Location Location `json:"location"`
}

// TripDetails is the request snapshot embedded in every option.
type TripDetails struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	StartPosition string `json:"start_position"`
	EndPosition   string `json:"end_position"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	TotalDays     int    `json:"total_days"`
}

// snapshot builds the TripDetails view of a request.
func snapshot(r TripRequest) TripDetails {
	return TripDetails{
		UserID:        r.UserID,
		Name:          r.Name,
		Description:   r.Description,
		StartPosition: r.StartPosition,
		EndPosition:   r.EndPosition,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		TotalDays:     r.TotalDays(),
	}
}

// TripOption is one themed itinerary. Theme and Description are empty in the
// single-plan variant.
type TripOption struct {
	Theme       string           `json:"theme,omitempty"`
	Description string           `json:"description,omitempty"`
	Trip        TripDetails      `json:"trip"`
	DailyPlan   []DailyPlanEntry `json:"daily_plan"`
}

// TripPlanCollection is the multi-option response: exactly K options, one per
// registered theme.
type TripPlanCollection struct {
	TripOptions []TripOption `json:"trip_options"`
}

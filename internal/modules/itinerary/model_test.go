// README: Domain model tests (day arithmetic, request snapshot).
package itinerary

import "testing"

func TestTotalDays(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		want       int
	}{
		{"inclusive span", "2024-06-01", "2024-06-03", 3},
		{"single day", "2024-06-01", "2024-06-01", 1},
		{"inverted dates", "2024-06-05", "2024-06-01", 1},
		{"unparseable start", "soon", "2024-06-03", 1},
		{"unparseable end", "2024-06-01", "eventually", 1},
		{"two weeks", "2024-06-01", "2024-06-14", 14},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := TripRequest{StartDate: tc.start, EndDate: tc.end}
			if got := req.TotalDays(); got != tc.want {
				t.Fatalf("TotalDays(%s..%s) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestSnapshotCopiesRequest(t *testing.T) {
	req := testRequest()
	details := snapshot(req)

	if details.UserID != req.UserID || details.Name != req.Name ||
		details.StartPosition != req.StartPosition || details.EndPosition != req.EndPosition {
		t.Fatalf("snapshot did not copy request fields: %+v", details)
	}
	if details.TotalDays != req.TotalDays() {
		t.Fatalf("snapshot total days %d, want %d", details.TotalDays, req.TotalDays())
	}
}

func TestDefaultThemesStable(t *testing.T) {
	themes := DefaultThemes()
	if len(themes) != 3 {
		t.Fatalf("expected 3 default themes, got %d", len(themes))
	}
	labels := []string{"nature", "history", "adventure"}
	for i, theme := range themes {
		if theme.Label != labels[i] {
			t.Fatalf("theme %d: expected %q, got %q", i, labels[i], theme.Label)
		}
		if theme.Description == "" || theme.Strategy == "" {
			t.Fatalf("theme %q must carry description and strategy", theme.Label)
		}
	}
}

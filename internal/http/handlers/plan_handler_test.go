// README: Plan handler tests against the gin router with a scripted planner.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Semhumc/ai-agent-service/internal/modules/aiusage"
	"github.com/Semhumc/ai-agent-service/internal/modules/itinerary"
	"github.com/Semhumc/ai-agent-service/internal/modules/plans"
)

type fakePlanner struct {
	options func(req itinerary.TripRequest) (itinerary.TripPlanCollection, []itinerary.Outcome)
}

func (f *fakePlanner) GenerateOptions(_ context.Context, req itinerary.TripRequest) (itinerary.TripPlanCollection, []itinerary.Outcome) {
	return f.options(req)
}

func (f *fakePlanner) GenerateSingle(_ context.Context, req itinerary.TripRequest) (itinerary.TripOption, itinerary.Outcome) {
	return itinerary.SynthesizeOption(req, itinerary.ThemeDefinition{}, 0), itinerary.Outcome{State: itinerary.UnitResolved}
}

func newTestRouter(planner Planner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewPlanHandler(planner, plans.NewService(nil, nil), aiusage.NewService(nil))
	engine.POST("/api/trips/plan", h.Generate)
	engine.POST("/api/trips/plan/single", h.GenerateSingle)
	engine.GET("/api/trips/history/:uid", h.History)
	return engine
}

// dropField re-encodes planBody without the named field.
func dropField(t *testing.T, name string) string {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(planBody), &m); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	delete(m, name)
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return string(raw)
}

const planBody = `{
	"user_id": "user-1",
	"name": "coast trip",
	"description": "short hop",
	"start_position": "A",
	"end_position": "B",
	"start_date": "2026-06-01",
	"end_date": "2026-06-03"
}`

func TestGenerateReturnsCollection(t *testing.T) {
	planner := &fakePlanner{
		options: func(req itinerary.TripRequest) (itinerary.TripPlanCollection, []itinerary.Outcome) {
			return itinerary.SynthesizeCollection(req, itinerary.DefaultThemes()), nil
		},
	}
	router := newTestRouter(planner)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/plan", strings.NewReader(planBody))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var collection itinerary.TripPlanCollection
	if err := json.Unmarshal(rec.Body.Bytes(), &collection); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(collection.TripOptions) != 3 {
		t.Fatalf("expected 3 options, got %d", len(collection.TripOptions))
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	planner := &fakePlanner{
		options: func(req itinerary.TripRequest) (itinerary.TripPlanCollection, []itinerary.Outcome) {
			t.Fatal("planner must not run for rejected input")
			return itinerary.TripPlanCollection{}, nil
		},
	}
	router := newTestRouter(planner)

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{"user_id": `},
		{"missing user id", `{"name": "x", "start_date": "2026-06-01", "end_date": "2026-06-02"}`},
		{"bad user id", `{"user_id": "no spaces allowed", "name": "x", "start_date": "2026-06-01", "end_date": "2026-06-02"}`},
		{"missing dates", `{"user_id": "u1", "name": "x"}`},
		{"missing description", dropField(t, "description")},
		{"missing start position", dropField(t, "start_position")},
		{"missing end position", dropField(t, "end_position")},
		{"blank end position", strings.Replace(planBody, `"end_position": "B"`, `"end_position": "  "`, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, path := range []string{"/api/trips/plan", "/api/trips/plan/single"} {
				rec := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(tc.body))
				router.ServeHTTP(rec, req)
				if rec.Code != http.StatusBadRequest {
					t.Fatalf("%s: expected 400, got %d", path, rec.Code)
				}
			}
		})
	}
}

func TestGenerateSingleReturnsOption(t *testing.T) {
	router := newTestRouter(&fakePlanner{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/plan/single", strings.NewReader(planBody))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var option itinerary.TripOption
	if err := json.Unmarshal(rec.Body.Bytes(), &option); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(option.DailyPlan) != 3 {
		t.Fatalf("expected 3 daily entries, got %d", len(option.DailyPlan))
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	router := newTestRouter(&fakePlanner{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/history/user-1", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without persistence, got %d", rec.Code)
	}
}

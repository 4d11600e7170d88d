// README: Trip plan handlers (quota-guarded generation, history lookup).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Semhumc/ai-agent-service/internal/modules/aiusage"
	"github.com/Semhumc/ai-agent-service/internal/modules/itinerary"
	"github.com/Semhumc/ai-agent-service/internal/modules/plans"
)

// Planner is the slice of the itinerary service the handlers use.
type Planner interface {
	GenerateOptions(ctx context.Context, req itinerary.TripRequest) (itinerary.TripPlanCollection, []itinerary.Outcome)
	GenerateSingle(ctx context.Context, req itinerary.TripRequest) (itinerary.TripOption, itinerary.Outcome)
}

type PlanHandler struct {
	planner Planner
	plans   *plans.Service
	usage   *aiusage.Service
}

func NewPlanHandler(planner Planner, plansSvc *plans.Service, usageSvc *aiusage.Service) *PlanHandler {
	return &PlanHandler{planner: planner, plans: plansSvc, usage: usageSvc}
}

func (h *PlanHandler) bindRequest(c *gin.Context) (itinerary.TripRequest, bool) {
	var req itinerary.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return req, false
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if !isValidID(req.UserID) {
		writeError(c, http.StatusBadRequest, "invalid user_id")
		return req, false
	}
	// Every request field is required; there are no defaults.
	required := []struct {
		name, value string
	}{
		{"name", req.Name},
		{"description", req.Description},
		{"start_position", req.StartPosition},
		{"end_position", req.EndPosition},
		{"start_date", req.StartDate},
		{"end_date", req.EndDate},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			writeError(c, http.StatusBadRequest, "missing "+field.name)
			return req, false
		}
	}
	return req, true
}

func (h *PlanHandler) consumeQuota(c *gin.Context, uid string) bool {
	err := h.usage.Consume(c.Request.Context(), uid)
	if err == nil {
		return true
	}
	if errors.Is(err, aiusage.ErrQuotaExhausted) {
		writeError(c, http.StatusTooManyRequests, err.Error())
	} else {
		writeError(c, http.StatusInternalServerError, "internal error")
	}
	return false
}

// Generate handles POST /api/trips/plan. The pipeline always produces a full
// collection, so the only error responses are for bad input and quota.
func (h *PlanHandler) Generate(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	if cached, hit := h.plans.Lookup(c.Request.Context(), req); hit {
		writeJSON(c, http.StatusOK, cached)
		return
	}

	if !h.consumeQuota(c, req.UserID) {
		return
	}

	collection, outcomes := h.planner.GenerateOptions(c.Request.Context(), req)
	h.plans.Record(c.Request.Context(), req, req.UserID, collection, itinerary.FallbackCount(outcomes))

	writeJSON(c, http.StatusOK, collection)
}

// GenerateSingle handles POST /api/trips/plan/single.
func (h *PlanHandler) GenerateSingle(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}
	if !h.consumeQuota(c, req.UserID) {
		return
	}

	option, _ := h.planner.GenerateSingle(c.Request.Context(), req)
	writeJSON(c, http.StatusOK, option)
}

// History handles GET /api/trips/history/:uid.
func (h *PlanHandler) History(c *gin.Context) {
	uid := c.Param("uid")
	if !isValidID(uid) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}

	records, err := h.plans.History(c.Request.Context(), uid, plans.DefaultHistoryLimit)
	if err != nil {
		if errors.Is(err, plans.ErrNotFound) {
			writeError(c, http.StatusNotFound, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"plans": records})
}

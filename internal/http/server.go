// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Semhumc/ai-agent-service/internal/http/handlers"
	"github.com/Semhumc/ai-agent-service/internal/http/middleware"
	"github.com/Semhumc/ai-agent-service/internal/modules/aiusage"
	"github.com/Semhumc/ai-agent-service/internal/modules/plans"
)

type ServerDeps struct {
	Planner handlers.Planner
	Plans   *plans.Service
	Usage   *aiusage.Service
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	engine := gin.New()
	engine.Use(middleware.Logging(), middleware.Recovery())

	planHandler := handlers.NewPlanHandler(s.deps.Planner, s.deps.Plans, s.deps.Usage)
	api := engine.Group("/api/trips")
	api.POST("/plan", planHandler.Generate)
	api.POST("/plan/single", planHandler.GenerateSingle)
	api.GET("/history/:uid", planHandler.History)

	engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return engine
}

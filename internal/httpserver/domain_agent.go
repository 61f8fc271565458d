package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	agentHTTP "travel-concierge/internal/agent/delivery/http"
	"travel-concierge/internal/middleware"
)

// setupAgentDomain initializes the agent domain and registers its routes.
func (srv HTTPServer) setupAgentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. HTTP Handler (the orchestrator is injected fully wired)
	h := agentHTTP.New(srv.l, srv.processor)

	// 2. Routes: registers /api/v1/agent/query
	agentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Agent domain registered")
	return nil
}

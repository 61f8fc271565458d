package http

import (
	"github.com/gin-gonic/gin"

	"travel-concierge/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	agent := rg.Group("/agent")
	{
		agent.POST("/query", mw.RateLimit(), h.Query)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"propfirm-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Everything is
// rate limited; cache administration additionally requires the admin token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/ask", mw.RateLimit(), h.Ask)
	rg.GET("/firms", mw.RateLimit(), h.Firms)

	cacheGroup := rg.Group("/cache")
	{
		cacheGroup.GET("/stats", mw.RateLimit(), h.CacheStats)
		cacheGroup.POST("/clear", mw.RateLimit(), mw.Admin(), h.CacheClear)
	}
}

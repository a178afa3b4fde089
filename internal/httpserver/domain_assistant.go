package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "propfirm-assistant/internal/assistant/delivery/http"
)

// setupAssistantDomain wires the assistant HTTP delivery onto the API group.
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) {
	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api, h, srv.middleware)

	srv.l.Infof(ctx, "Assistant domain registered at /api/v1")
}

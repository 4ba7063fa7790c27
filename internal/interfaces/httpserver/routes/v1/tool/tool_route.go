package tool

import (
	"github.com/gin-gonic/gin"

	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/toolhandler"
)

type ToolRoute struct {
	toolHandler *toolhandler.ToolHandler
}

func NewToolRoute(toolHandler *toolhandler.ToolHandler) *ToolRoute {
	return &ToolRoute{toolHandler: toolHandler}
}

// RegisterRouter registers the tool catalog routes. The catalog is static
// so the routes are public.
func (r *ToolRoute) RegisterRouter(router *gin.RouterGroup) {
	toolsRoute := router.Group("/tools")
	toolsRoute.GET("", r.toolHandler.List)
	toolsRoute.GET("/:id", r.toolHandler.Get)
}

package template

import (
	"github.com/gin-gonic/gin"

	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/prompttemplatehandler"
)

type TemplateRoute struct {
	templateHandler *prompttemplatehandler.PromptTemplateHandler
}

func NewTemplateRoute(templateHandler *prompttemplatehandler.PromptTemplateHandler) *TemplateRoute {
	return &TemplateRoute{templateHandler: templateHandler}
}

// RegisterRouter registers the routes that mutate marketplace state.
func (r *TemplateRoute) RegisterRouter(router *gin.RouterGroup) {
	templatesRoute := router.Group("/templates")
	templatesRoute.POST("", r.templateHandler.Create)
	templatesRoute.POST("/:id/use", r.templateHandler.Use)
	templatesRoute.POST("/:id/rate", r.templateHandler.Rate)
	templatesRoute.DELETE("/:id", r.templateHandler.Delete)
}

// RegisterPublicRouter registers the browse endpoints. List resolves the
// mine=true filter from the session when one is present.
func (r *TemplateRoute) RegisterPublicRouter(router *gin.RouterGroup) {
	templatesRoute := router.Group("/templates")
	templatesRoute.GET("", r.templateHandler.List)
	templatesRoute.GET("/trending", r.templateHandler.Trending)
	templatesRoute.GET("/:id", r.templateHandler.Get)
}

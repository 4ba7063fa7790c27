package generation

import (
	"github.com/gin-gonic/gin"

	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/generationhandler"
)

type GenerationRoute struct {
	generationHandler *generationhandler.GenerationHandler
}

func NewGenerationRoute(generationHandler *generationhandler.GenerationHandler) *GenerationRoute {
	return &GenerationRoute{generationHandler: generationHandler}
}

func (r *GenerationRoute) RegisterRouter(router *gin.RouterGroup) {
	router.POST("/generations", r.generationHandler.Generate)
}

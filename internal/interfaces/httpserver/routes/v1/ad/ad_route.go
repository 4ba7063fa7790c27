package ad

import (
	"github.com/gin-gonic/gin"

	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/adhandler"
)

type AdRoute struct {
	adHandler *adhandler.AdHandler
}

func NewAdRoute(adHandler *adhandler.AdHandler) *AdRoute {
	return &AdRoute{adHandler: adHandler}
}

func (r *AdRoute) RegisterRouter(router *gin.RouterGroup) {
	adsRoute := router.Group("/ads")
	adsRoute.GET("/status", r.adHandler.Status)
	adsRoute.POST("/claim", r.adHandler.ClaimDaily)
	adsRoute.POST("/claim-special", r.adHandler.ClaimSpecial)
}

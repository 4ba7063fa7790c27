package credit

import (
	"github.com/gin-gonic/gin"

	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/credithandler"
)

type CreditRoute struct {
	creditHandler *credithandler.CreditHandler
}

func NewCreditRoute(creditHandler *credithandler.CreditHandler) *CreditRoute {
	return &CreditRoute{creditHandler: creditHandler}
}

func (r *CreditRoute) RegisterRouter(router *gin.RouterGroup) {
	creditsRoute := router.Group("/credits")
	creditsRoute.GET("/balance", r.creditHandler.Balance)
	creditsRoute.GET("/history", r.creditHandler.History)
	creditsRoute.GET("/usage", r.creditHandler.Usage)
}

// RegisterPublicRouter registers the endpoints that do not depend on a session.
func (r *CreditRoute) RegisterPublicRouter(router *gin.RouterGroup) {
	router.GET("/credits/packages", r.creditHandler.Packages)
}

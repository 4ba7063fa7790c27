package admin

import (
	"github.com/gin-gonic/gin"

	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/adminhandler"
	middleware "aitoolhub-server/services/hub-api/internal/interfaces/httpserver/middlewares"
)

// AdminRoute groups the operator endpoints behind the admin check.
type AdminRoute struct {
	adminHandler *adminhandler.AdminHandler
}

func NewAdminRoute(adminHandler *adminhandler.AdminHandler) *AdminRoute {
	return &AdminRoute{adminHandler: adminHandler}
}

func (r *AdminRoute) RegisterRouter(router *gin.RouterGroup) {
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin())
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users/:id/credits", r.adminHandler.AdjustCredits)
	}
}

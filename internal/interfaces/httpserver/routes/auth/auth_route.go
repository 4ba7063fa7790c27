package auth

import (
	"github.com/gin-gonic/gin"

	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/authhandler"
)

// AuthRoute handles authentication routes
type AuthRoute struct {
	authHandler *authhandler.AuthHandler
}

// NewAuthRoute creates a new auth route
func NewAuthRoute(authHandler *authhandler.AuthHandler) *AuthRoute {
	return &AuthRoute{authHandler: authHandler}
}

// RegisterRouter registers auth routes on the public and protected routers
func (a *AuthRoute) RegisterRouter(router gin.IRouter, protectedRouter gin.IRouter) {
	// Public routes
	router.POST("/auth/register", a.authHandler.Register)
	router.POST("/auth/login", a.authHandler.Login)
	router.POST("/auth/google", a.authHandler.GoogleLogin)

	// Protected routes (require a live session)
	protectedRouter.POST("/auth/logout", a.authHandler.Logout)
	protectedRouter.GET("/auth/me", a.authHandler.Me)
}

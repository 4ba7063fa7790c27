package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"aitoolhub-server/services/hub-api/internal/config"
	"aitoolhub-server/services/hub-api/internal/domain/session"
	"aitoolhub-server/services/hub-api/internal/domain/user"
	middleware "aitoolhub-server/services/hub-api/internal/interfaces/httpserver/middlewares"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/auth"
	v1 "aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1"
)

type HTTPServer struct {
	engine    *gin.Engine
	v1Route   *v1.V1Route
	authRoute *auth.AuthRoute
	sessions  *session.Service
	users     *user.Service
	config    *config.Config
	logger    *zerolog.Logger
}

func NewHttpServer(
	v1Route *v1.V1Route,
	authRoute *auth.AuthRoute,
	sessions *session.Service,
	users *user.Service,
	cfg *config.Config,
	logger *zerolog.Logger,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		v1Route,
		authRoute,
		sessions,
		users,
		cfg,
		logger,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(logger))
	server.engine.Use(middleware.CORSMiddleware(cfg.AppURL))
	server.engine.Use(middleware.MetricsMiddleware())

	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	return &server
}

func (httpServer *HTTPServer) Run() error {
	// Public routes. A session is resolved when the caller carries one so
	// handlers can personalize, but nothing here requires it.
	root := httpServer.engine.Group("/")
	root.Use(middleware.OptionalSessionAuth(httpServer.sessions, httpServer.users))

	// Protected routes reject requests without a live session.
	protected := httpServer.engine.Group("/")
	protected.Use(middleware.SessionAuth(httpServer.sessions, httpServer.users, httpServer.logger))

	httpServer.authRoute.RegisterRouter(root, protected)
	httpServer.v1Route.RegisterPublicRouter(root)
	httpServer.v1Route.RegisterRouter(protected)

	if err := httpServer.engine.Run(fmt.Sprintf(":%d", httpServer.config.HTTPPort)); err != nil {
		return err
	}
	return nil
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aitoolhub-server/services/hub-api/internal/config"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1/ad"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1/admin"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1/credit"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1/generation"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1/template"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1/tool"
)

type V1Route struct {
	tool       *tool.ToolRoute
	generation *generation.GenerationRoute
	credit     *credit.CreditRoute
	ad         *ad.AdRoute
	template   *template.TemplateRoute
	adminRoute *admin.AdminRoute
}

func NewV1Route(
	tool *tool.ToolRoute,
	generation *generation.GenerationRoute,
	credit *credit.CreditRoute,
	ad *ad.AdRoute,
	template *template.TemplateRoute,
	adminRoute *admin.AdminRoute,
) *V1Route {
	return &V1Route{
		tool,
		generation,
		credit,
		ad,
		template,
		adminRoute,
	}
}

// RegisterRouter registers the session-guarded routes.
func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")

	v1Route.generation.RegisterRouter(v1Router)
	v1Route.credit.RegisterRouter(v1Router)
	v1Route.ad.RegisterRouter(v1Router)
	v1Route.template.RegisterRouter(v1Router)
	v1Route.adminRoute.RegisterRouter(v1Router)
}

// RegisterPublicRouter registers endpoints that do not require authentication
func (v1Route *V1Route) RegisterPublicRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Router.GET("/healthz", GetHealthz)
	v1Router.GET("/readyz", GetReadyz)

	v1Route.tool.RegisterRouter(v1Router)
	v1Route.credit.RegisterPublicRouter(v1Router)
	v1Route.template.RegisterPublicRouter(v1Router)
}

func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": config.Version})
}

func GetHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func GetReadyz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

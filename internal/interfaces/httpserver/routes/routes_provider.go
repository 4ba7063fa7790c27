package routes

import (
	"github.com/google/wire"

	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/auth"
	v1 "aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1/ad"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1/admin"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1/credit"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1/generation"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1/template"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes/v1/tool"
)

var RouteProvider = wire.NewSet(
	auth.NewAuthRoute,
	v1.NewV1Route,
	tool.NewToolRoute,
	generation.NewGenerationRoute,
	credit.NewCreditRoute,
	ad.NewAdRoute,
	template.NewTemplateRoute,
	admin.NewAdminRoute,
)

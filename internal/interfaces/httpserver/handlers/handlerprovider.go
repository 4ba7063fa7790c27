package handlers

import (
	"github.com/google/wire"

	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/adhandler"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/adminhandler"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/authhandler"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/credithandler"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/generationhandler"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/prompttemplatehandler"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/toolhandler"
)

var HandlerProvider = wire.NewSet(
	authhandler.NewAuthHandler,
	toolhandler.NewToolHandler,
	generationhandler.NewGenerationHandler,
	credithandler.NewCreditHandler,
	adhandler.NewAdHandler,
	prompttemplatehandler.NewPromptTemplateHandler,
	adminhandler.NewAdminHandler,
)

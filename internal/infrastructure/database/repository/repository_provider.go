package repository

import (
	"aitoolhub-server/services/hub-api/internal/infrastructure/database/repository/creditrepo"
	"aitoolhub-server/services/hub-api/internal/infrastructure/database/repository/prompttemplaterepo"
	"aitoolhub-server/services/hub-api/internal/infrastructure/database/repository/rewardrepo"
	"aitoolhub-server/services/hub-api/internal/infrastructure/database/repository/userrepo"

	"github.com/google/wire"
)

var RepositoryProvider = wire.NewSet(
	userrepo.NewUserGormRepository,
	creditrepo.NewCreditGormRepository,
	rewardrepo.NewRewardGormRepository,
	prompttemplaterepo.NewPromptTemplateGormRepository,
)

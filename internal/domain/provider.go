package domain

import (
	"github.com/google/wire"

	"aitoolhub-server/services/hub-api/internal/config"
	"aitoolhub-server/services/hub-api/internal/domain/catalog"
	"aitoolhub-server/services/hub-api/internal/domain/credit"
	"aitoolhub-server/services/hub-api/internal/domain/generation"
	"aitoolhub-server/services/hub-api/internal/domain/prompttemplate"
	"aitoolhub-server/services/hub-api/internal/domain/reward"
	"aitoolhub-server/services/hub-api/internal/domain/session"
	"aitoolhub-server/services/hub-api/internal/domain/tool"
	"aitoolhub-server/services/hub-api/internal/domain/user"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// Catalog / tool registry
	catalog.NewSelector,
	ProvideToolRegistry,

	// Credit ledger
	credit.NewService,

	// User domain
	user.NewService,

	// Sessions
	ProvideSessionService,

	// Ad rewards
	ProvideRewardCreditStore,
	reward.NewService,

	// Prompt marketplace
	prompttemplate.NewService,

	// Generation orchestrator
	ProvideGenerationCreditStore,
	ProvideGenerationService,
)

func ProvideToolRegistry(selector *catalog.Selector) *tool.Registry {
	return tool.NewRegistry(tool.DefaultTools, selector)
}

func ProvideSessionService(store session.Store, cfg *config.Config) *session.Service {
	return session.NewService(store, cfg.SessionTTL, cfg.SessionRememberTTL)
}

// ProvideRewardCreditStore narrows the user repository to the credit
// operations the reward service needs.
func ProvideRewardCreditStore(repo user.Repository) reward.CreditStore {
	return repo
}

func ProvideGenerationCreditStore(repo user.Repository) generation.CreditStore {
	return repo
}

func ProvideGenerationService(
	registry *tool.Registry,
	adapters generation.AdapterRegistry,
	credits generation.CreditStore,
	ledger *credit.Service,
	cfg *config.Config,
) *generation.Service {
	return generation.NewService(registry, adapters, credits, ledger, cfg.GenerationTimeout)
}

package infrastructure

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"aitoolhub-server/services/hub-api/internal/config"
	"aitoolhub-server/services/hub-api/internal/domain/catalog"
	"aitoolhub-server/services/hub-api/internal/domain/generation"
	"aitoolhub-server/services/hub-api/internal/domain/session"
	"aitoolhub-server/services/hub-api/internal/infrastructure/auth"
	"aitoolhub-server/services/hub-api/internal/infrastructure/crontab"
	"aitoolhub-server/services/hub-api/internal/infrastructure/database"
	"aitoolhub-server/services/hub-api/internal/infrastructure/database/repository"
	"aitoolhub-server/services/hub-api/internal/infrastructure/inference"
	"aitoolhub-server/services/hub-api/internal/infrastructure/knowledge"
	"aitoolhub-server/services/hub-api/internal/infrastructure/logger"
	"aitoolhub-server/services/hub-api/internal/infrastructure/sessionstore"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config, log *zerolog.Logger) (*gorm.DB, error) {
	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
		log.Info().Msg("Database migrations completed successfully")
	}

	return db, nil
}

// ProvideSessionStore picks Redis when configured, otherwise the in-process
// store. Single-node deployments run without Redis.
func ProvideSessionStore(cfg *config.Config, log *zerolog.Logger) (session.Store, error) {
	if cfg.RedisURL == "" {
		log.Warn().Msg("REDIS_URL not set, using in-memory session store")
		return sessionstore.NewMemoryStore(), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	log.Info().Msg("Using Redis session store")
	return sessionstore.NewRedisStore(client), nil
}

// ProvideCatalogs loads the static capability catalogs from disk.
func ProvideCatalogs(cfg *config.Config) catalog.Catalogs {
	return knowledge.Load(cfg.ToolCapabilitiesPath, cfg.ModelCapabilitiesPath)
}

// ProvideAdapterRegistry exposes the inference provider as the adapter registry.
func ProvideAdapterRegistry(ip *inference.InferenceProvider) generation.AdapterRegistry {
	return ip
}

// ProvideGoogleVerifier builds the Google Sign-In verifier. A missing
// client ID disables Google login rather than failing startup.
func ProvideGoogleVerifier(cfg *config.Config, log *zerolog.Logger) (*auth.GoogleVerifier, error) {
	if cfg.GoogleClientID == "" {
		log.Warn().Msg("GOOGLE_CLIENT_ID not set, Google Sign-In disabled")
		return nil, nil
	}
	return auth.NewGoogleVerifier(context.Background(), cfg.GoogleJWKSURL, cfg.GoogleClientID, cfg.JWKSRefresh, log)
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Database
	ProvideDatabase,

	// Repositories
	repository.RepositoryProvider,

	// Sessions
	ProvideSessionStore,

	// Capability catalogs
	ProvideCatalogs,

	// Provider adapters
	inference.NewInferenceProvider,
	ProvideAdapterRegistry,

	// Google Sign-In
	ProvideGoogleVerifier,

	// Background jobs
	crontab.NewCrontab,

	// Logger
	logger.GetLogger,
)

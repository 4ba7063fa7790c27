package inference

import (
	"aitoolhub-server/services/hub-api/internal/config"
	"aitoolhub-server/services/hub-api/internal/domain/generation"
	"aitoolhub-server/services/hub-api/internal/infrastructure/logger"
)

// InferenceProvider holds the configured provider adapters. Providers
// without credentials are left unregistered; dispatch to them reports the
// provider as unavailable instead of failing upstream with a 401.
type InferenceProvider struct {
	adapters map[string]generation.Adapter
}

var _ generation.AdapterRegistry = (*InferenceProvider)(nil)

func NewInferenceProvider(cfg *config.Config) *InferenceProvider {
	ip := &InferenceProvider{adapters: make(map[string]generation.Adapter)}
	log := logger.GetLogger()

	register := func(name string, apiKey string, build func() generation.Adapter) {
		if apiKey == "" {
			log.Warn().Str("provider", name).Msg("provider API key missing, adapter not registered")
			return
		}
		ip.adapters[name] = build()
		log.Info().Str("provider", name).Msg("provider adapter registered")
	}

	register("openai", cfg.OpenAIAPIKey, func() generation.Adapter {
		return NewOpenAIService(cfg.OpenAIAPIKey)
	})
	register("openrouter", cfg.OpenRouterAPIKey, func() generation.Adapter {
		return NewOpenRouterService(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL, cfg.AppURL)
	})
	register("deepseek", cfg.DeepSeekAPIKey, func() generation.Adapter {
		return NewDeepSeekService(cfg.DeepSeekAPIKey, cfg.DeepSeekBaseURL)
	})
	register("huggingface", cfg.HuggingFaceAPIKey, func() generation.Adapter {
		return NewHuggingFaceService(cfg.HuggingFaceAPIKey, cfg.HuggingFaceBaseURL)
	})

	return ip
}

func (ip *InferenceProvider) Adapter(provider string) (generation.Adapter, bool) {
	a, ok := ip.adapters[provider]
	return a, ok
}

// Providers lists the registered adapter names.
func (ip *InferenceProvider) Providers() []string {
	names := make([]string, 0, len(ip.adapters))
	for name := range ip.adapters {
		names = append(names, name)
	}
	return names
}

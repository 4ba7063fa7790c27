package catalog

import (
	"sort"
	"strings"
)

// fallbackModels is consulted whenever a (tool type, provider) pair cannot
// be resolved from the tool catalog.
var fallbackModels = map[string]string{
	"openai":      "gpt-3.5-turbo",
	"openrouter":  "meta-llama/llama-2-70b-chat",
	"huggingface": "mistralai/Mistral-7B-Instruct-v0.2",
	"deepseek":    "deepseek-ai/deepseek-chat-7b",
}

const defaultFallbackModel = "gpt-3.5-turbo"

// Selector resolves the optimal model for a tool/provider pair against the
// static capability catalogs. All methods are pure: no I/O, no mutation.
type Selector struct {
	catalogs Catalogs
}

// NewSelector builds a selector over the given catalogs.
func NewSelector(catalogs Catalogs) *Selector {
	return &Selector{catalogs: catalogs}
}

// Selection is the outcome of a SelectModel call.
type Selection struct {
	ModelID string
	Info    ModelInfo
	// Fallback is true when the catalogs could not resolve the pair and the
	// provider fallback table was used instead.
	Fallback bool
}

// SelectModel picks a model for the given tool type and provider.
//
// taskType refines the choice within the provider's mapping and falls back
// to the "default" entry when empty or unknown. minContextLength is
// advisory: when the resolved model's context window is too small, the
// provider mapping is scanned (task-type keys in lexicographic order) for
// the first model that satisfies it, and the original choice is kept when
// none does.
func (s *Selector) SelectModel(toolType, provider, taskType string, minContextLength int) Selection {
	toolEntry, ok := s.catalogs.Tools[toolType]
	if !ok {
		return Selection{ModelID: FallbackModel(provider), Fallback: true}
	}

	providerModels, ok := toolEntry.OptimalModels[provider]
	if !ok || len(providerModels) == 0 {
		return Selection{ModelID: FallbackModel(provider), Fallback: true}
	}

	key := taskType
	if key == "" {
		key = TaskTypeDefault
	}
	modelID, ok := providerModels[key]
	if !ok {
		modelID, ok = providerModels[TaskTypeDefault]
	}
	if !ok || modelID == "" {
		return Selection{ModelID: FallbackModel(provider), Fallback: true}
	}

	info := s.ModelInfo(modelID)

	if minContextLength > 0 && info.ContextLength < minContextLength {
		if alt, found := s.findModelWithContext(providerModels, minContextLength); found {
			modelID = alt
			info = s.ModelInfo(modelID)
		}
	}

	return Selection{ModelID: modelID, Info: info}
}

// ModelInfo looks up capability metadata for a model by its bare name,
// checking the language-model namespace before the image-model namespace.
func (s *Selector) ModelInfo(modelID string) ModelInfo {
	parts := strings.Split(modelID, "/")
	baseName := parts[len(parts)-1]

	if info, ok := s.catalogs.Models.LanguageModels[baseName]; ok {
		return info
	}
	if info, ok := s.catalogs.Models.ImageModels[baseName]; ok {
		return info
	}
	return ModelInfo{}
}

// ModelCapabilities returns the capability tags of a model, empty when unknown.
func (s *Selector) ModelCapabilities(modelID string) []string {
	return s.ModelInfo(modelID).Capabilities
}

// RecommendedProviders returns the catalog's ordered provider preference
// for a tool type, empty when the tool type is unknown.
func (s *Selector) RecommendedProviders(toolType string) []string {
	return s.catalogs.Tools[toolType].BestProviders
}

// findModelWithContext scans a provider mapping for the first model whose
// context window satisfies the requirement. Task-type keys are visited in
// lexicographic order so the substitution is deterministic.
func (s *Selector) findModelWithContext(providerModels map[string]string, required int) (string, bool) {
	keys := make([]string, 0, len(providerModels))
	for key := range providerModels {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		modelID := providerModels[key]
		if s.ModelInfo(modelID).ContextLength >= required {
			return modelID, true
		}
	}
	return "", false
}

// FallbackModel returns the hardcoded fallback model for a provider.
func FallbackModel(provider string) string {
	if model, ok := fallbackModels[provider]; ok {
		return model
	}
	return defaultFallbackModel
}

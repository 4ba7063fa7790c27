package catalog

// ToolEntry describes which provider/model combinations suit a tool type.
type ToolEntry struct {
	// OptimalModels maps provider name -> task type -> model identifier.
	// Every usable provider mapping carries a "default" key; mappings
	// without one are dropped at load time.
	OptimalModels map[string]map[string]string `json:"optimal_models"`
	// BestProviders is ordered most-preferred first.
	BestProviders []string `json:"best_providers"`
}

// ModelInfo holds capability metadata for a single model, keyed by bare
// model name (the last path segment of a namespaced identifier).
type ModelInfo struct {
	ContextLength int      `json:"context_length"`
	Capabilities  []string `json:"capabilities"`
}

// IsZero reports whether the metadata carries no information.
func (m ModelInfo) IsZero() bool {
	return m.ContextLength == 0 && len(m.Capabilities) == 0
}

// ModelEntries partitions model metadata into two independent namespaces.
// Lookups check language models first; the first match wins.
type ModelEntries struct {
	LanguageModels map[string]ModelInfo `json:"language_models"`
	ImageModels    map[string]ModelInfo `json:"image_models"`
}

// Catalogs bundles the two static capability documents. Both are loaded
// once at startup and never mutated; an empty value is a valid catalog
// (every selection falls through to the provider fallback table).
type Catalogs struct {
	Tools  map[string]ToolEntry
	Models ModelEntries
}

// TaskTypeDefault is the task-type key every usable provider mapping must carry.
const TaskTypeDefault = "default"

// Validate drops tool entries whose provider mappings are unusable. A
// provider mapping without a "default" key is removed; a tool entry left
// with no provider mappings and no best-providers list is removed entirely.
func (c *Catalogs) Validate() {
	for toolType, entry := range c.Tools {
		for provider, models := range entry.OptimalModels {
			if _, ok := models[TaskTypeDefault]; !ok {
				delete(entry.OptimalModels, provider)
			}
		}
		if len(entry.OptimalModels) == 0 && len(entry.BestProviders) == 0 {
			delete(c.Tools, toolType)
		}
	}
}

package tool

import (
	"strings"

	"github.com/shopspring/decimal"

	"aitoolhub-server/services/hub-api/internal/domain/catalog"
)

// Tool is a named, priced capability offered to end users. Tools are
// constructed once at startup and read-only thereafter.
type Tool struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Icon           string          `json:"icon"`
	Cost           decimal.Decimal `json:"cost"`
	ExamplePrompts []string        `json:"example_prompts"`
	Providers      []string        `json:"providers"`
	AdDuration     int             `json:"ad_duration"`
	AdReward       decimal.Decimal `json:"ad_reward"`
}

// CapabilityType converts the tool id into the key format used by the tool
// capability catalog ("text-generation" -> "text_generation").
func (t Tool) CapabilityType() string {
	return strings.ReplaceAll(t.ID, "-", "_")
}

// SupportsProvider reports whether the provider is allowed for this tool.
func (t Tool) SupportsProvider(provider string) bool {
	for _, p := range t.Providers {
		if p == provider {
			return true
		}
	}
	return false
}

// Registry holds the fixed tool catalog and answers model-related queries
// by delegating to the selector.
type Registry struct {
	tools    []Tool
	selector *catalog.Selector
}

// NewRegistry builds a registry over a fixed tool list.
func NewRegistry(tools []Tool, selector *catalog.Selector) *Registry {
	return &Registry{tools: tools, selector: selector}
}

// All returns the full tool catalog in declaration order.
func (r *Registry) All() []Tool {
	return r.tools
}

// Find returns the tool with the given id. The catalog is small and static,
// so a linear scan is fine.
func (r *Registry) Find(id string) (Tool, bool) {
	for _, t := range r.tools {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}

// RecommendedProviders returns the catalog's ordered provider preference
// for a tool, empty when the tool type is not in the capability catalog.
func (r *Registry) RecommendedProviders(t Tool) []string {
	return r.selector.RecommendedProviders(t.CapabilityType())
}

// DefaultModel resolves the model a tool would use for a provider and task type.
func (r *Registry) DefaultModel(t Tool, provider, taskType string) string {
	return r.selector.SelectModel(t.CapabilityType(), provider, taskType, 0).ModelID
}

// Selector exposes the underlying model selector.
func (r *Registry) Selector() *catalog.Selector {
	return r.selector
}

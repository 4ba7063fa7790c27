package toolhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"aitoolhub-server/services/hub-api/internal/domain/catalog"
	"aitoolhub-server/services/hub-api/internal/domain/tool"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/dto"
)

// ToolHandler serves the tool catalog.
type ToolHandler struct {
	registry *tool.Registry
}

func NewToolHandler(registry *tool.Registry) *ToolHandler {
	return &ToolHandler{registry: registry}
}

// ToolResponse is the public view of a catalog entry.
type ToolResponse struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Description          string            `json:"description"`
	Icon                 string            `json:"icon"`
	Cost                 decimal.Decimal   `json:"cost"`
	ExamplePrompts       []string          `json:"example_prompts,omitempty"`
	Providers            []string          `json:"providers"`
	RecommendedProviders []string          `json:"recommended_providers,omitempty"`
	DefaultModels        map[string]string `json:"default_models,omitempty"`
	AdDuration           int               `json:"ad_duration,omitempty"`
	AdReward             decimal.Decimal   `json:"ad_reward"`
}

func (h *ToolHandler) toResponse(t tool.Tool) ToolResponse {
	defaults := make(map[string]string, len(t.Providers))
	for _, provider := range t.Providers {
		defaults[provider] = h.registry.DefaultModel(t, provider, catalog.TaskTypeDefault)
	}
	return ToolResponse{
		ID:                   t.ID,
		Name:                 t.Name,
		Description:          t.Description,
		Icon:                 t.Icon,
		Cost:                 t.Cost,
		ExamplePrompts:       t.ExamplePrompts,
		Providers:            t.Providers,
		RecommendedProviders: h.registry.RecommendedProviders(t),
		DefaultModels:        defaults,
		AdDuration:           t.AdDuration,
		AdReward:             t.AdReward,
	}
}

// List returns every tool in the catalog.
func (h *ToolHandler) List(c *gin.Context) {
	tools := h.registry.All()
	out := make([]ToolResponse, 0, len(tools))
	for _, t := range tools {
		out = append(out, h.toResponse(t))
	}
	c.JSON(http.StatusOK, dto.OK(out))
}

// Get returns one tool by id.
func (h *ToolHandler) Get(c *gin.Context) {
	t, ok := h.registry.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, dto.Err("NOT_FOUND", "tool not found"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(h.toResponse(t)))
}

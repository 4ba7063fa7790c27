package generationhandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"aitoolhub-server/services/hub-api/internal/domain/generation"
	"aitoolhub-server/services/hub-api/internal/domain/reward"
	"aitoolhub-server/services/hub-api/internal/domain/user"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/dto"
	middleware "aitoolhub-server/services/hub-api/internal/interfaces/httpserver/middlewares"
)

// GenerationHandler dispatches generation requests to the orchestrator.
type GenerationHandler struct {
	generations *generation.Service
	validate    *validator.Validate
}

func NewGenerationHandler(generations *generation.Service) *GenerationHandler {
	return &GenerationHandler{
		generations: generations,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

type generateRequest struct {
	ToolID   string `json:"tool_id" validate:"required"`
	Provider string `json:"provider" validate:"required"`
	Prompt   string `json:"prompt" validate:"required"`
	TaskType string `json:"task_type"`
}

// insufficientCreditsPayload points the client at the ad-reward upsell
// instead of a bare error.
type insufficientCreditsPayload struct {
	Message       string `json:"message"`
	EarnCredits   string `json:"earn_credits"`
	DailyReward   string `json:"daily_reward"`
	SpecialReward string `json:"special_reward"`
}

// Generate runs one tool invocation.
func (h *GenerationHandler) Generate(c *gin.Context) {
	usr, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "login required"))
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("BAD_REQUEST", "invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("VALIDATION", err.Error()))
		return
	}

	resp, err := h.generations.Process(c.Request.Context(), generation.Request{
		UserID:   usr.ID,
		ToolID:   req.ToolID,
		Provider: req.Provider,
		Prompt:   req.Prompt,
		TaskType: req.TaskType,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

func (h *GenerationHandler) writeError(c *gin.Context, err error) {
	var genErr *generation.GenerationError

	switch {
	case errors.Is(err, generation.ErrToolNotFound):
		c.JSON(http.StatusNotFound, dto.Err("NOT_FOUND", "tool not found"))
	case errors.Is(err, generation.ErrInvalidProvider):
		c.JSON(http.StatusBadRequest, dto.Err("INVALID_PROVIDER", "tool does not support this provider"))
	case errors.Is(err, generation.ErrLoginRequired):
		c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "login required"))
	case errors.Is(err, user.ErrInsufficientCredits):
		c.JSON(http.StatusPaymentRequired, dto.Response{
			Success: false,
			Data: insufficientCreditsPayload{
				Message:       "not enough credits for this tool",
				EarnCredits:   "watch an ad to earn credits",
				DailyReward:   reward.DailyCreditsPerClaim.String(),
				SpecialReward: reward.SpecialCredits.String(),
			},
			Error: &dto.ErrorInfo{Code: "INSUFFICIENT_CREDITS", Message: "insufficient credits"},
		})
	case errors.Is(err, generation.ErrProviderUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.Err("PROVIDER_UNAVAILABLE", "provider is not configured"))
	case errors.Is(err, generation.ErrCapabilityUnsupported):
		c.JSON(http.StatusBadRequest, dto.Err("CAPABILITY_UNSUPPORTED", "provider cannot produce this output type"))
	case errors.As(err, &genErr):
		c.JSON(http.StatusBadGateway, dto.Err("GENERATION_FAILED", genErr.Message))
	default:
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "generation failed"))
	}
}

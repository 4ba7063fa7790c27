package adhandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"aitoolhub-server/services/hub-api/internal/domain/reward"
	"aitoolhub-server/services/hub-api/internal/infrastructure/metrics"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/dto"
	middleware "aitoolhub-server/services/hub-api/internal/interfaces/httpserver/middlewares"
)

// AdHandler serves ad-reward status and claims.
type AdHandler struct {
	rewards *reward.Service
}

func NewAdHandler(rewards *reward.Service) *AdHandler {
	return &AdHandler{rewards: rewards}
}

// Status returns today's claim counters for the authenticated account.
func (h *AdHandler) Status(c *gin.Context) {
	usr, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "authentication required"))
		return
	}

	status, err := h.rewards.Status(c.Request.Context(), usr.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to load reward status"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(status))
}

// ClaimDaily grants the per-ad reward, limits permitting.
func (h *AdHandler) ClaimDaily(c *gin.Context) {
	usr, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "authentication required"))
		return
	}

	result, err := h.rewards.ClaimDaily(c.Request.Context(), usr.ID)
	if err != nil {
		h.writeClaimError(c, err)
		return
	}

	metrics.AdRewardsClaimedTotal.WithLabelValues("daily").Inc()
	c.JSON(http.StatusOK, dto.OK(result))
}

// ClaimSpecial grants the once-a-day bonus reward.
func (h *AdHandler) ClaimSpecial(c *gin.Context) {
	usr, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "authentication required"))
		return
	}

	result, err := h.rewards.ClaimSpecial(c.Request.Context(), usr.ID)
	if err != nil {
		h.writeClaimError(c, err)
		return
	}

	metrics.AdRewardsClaimedTotal.WithLabelValues("special").Inc()
	c.JSON(http.StatusOK, dto.OK(result))
}

func (h *AdHandler) writeClaimError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reward.ErrDailyLimitReached):
		c.JSON(http.StatusTooManyRequests, dto.Err("DAILY_LIMIT", "daily reward limit reached"))
	case errors.Is(err, reward.ErrCooldownActive):
		c.JSON(http.StatusTooManyRequests, dto.Err("COOLDOWN", "reward cooldown active"))
	case errors.Is(err, reward.ErrAlreadyClaimed):
		c.JSON(http.StatusConflict, dto.Err("ALREADY_CLAIMED", "special reward already claimed today"))
	default:
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "claim failed"))
	}
}

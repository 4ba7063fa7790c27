package credithandler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aitoolhub-server/services/hub-api/internal/domain/credit"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/dto"
	middleware "aitoolhub-server/services/hub-api/internal/interfaces/httpserver/middlewares"
)

// CreditHandler serves balances, ledger history, and the purchase catalog.
type CreditHandler struct {
	ledger *credit.Service
}

func NewCreditHandler(ledger *credit.Service) *CreditHandler {
	return &CreditHandler{ledger: ledger}
}

// Balance returns the authenticated account's credit balance.
func (h *CreditHandler) Balance(c *gin.Context) {
	usr, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "authentication required"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{
		"credits":          usr.Credits,
		"lifetime_credits": usr.LifetimeCredits,
	}))
}

// History returns the paginated transaction ledger.
func (h *CreditHandler) History(c *gin.Context) {
	usr, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "authentication required"))
		return
	}

	limit, offset := pagination(c)
	txs, total, err := h.ledger.History(c.Request.Context(), usr.ID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to load history"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{
		"transactions": txs,
		"total":        total,
	}))
}

// Usage returns the paginated tool usage history.
func (h *CreditHandler) Usage(c *gin.Context) {
	usr, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "authentication required"))
		return
	}

	limit, offset := pagination(c)
	usages, total, err := h.ledger.UsageHistory(c.Request.Context(), usr.ID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to load usage history"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{
		"usage": usages,
		"total": total,
	}))
}

// Packages returns the fixed purchase catalog. Payment processing happens
// elsewhere; this endpoint only advertises the bundles.
func (h *CreditHandler) Packages(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK(credit.Packages))
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

package adminhandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"aitoolhub-server/services/hub-api/internal/domain/user"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/dto"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers/authhandler"
)

// AdminHandler serves administrative account operations.
type AdminHandler struct {
	users    *user.Service
	validate *validator.Validate
}

func NewAdminHandler(users *user.Service) *AdminHandler {
	return &AdminHandler{
		users:    users,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type adjustCreditsRequest struct {
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description" validate:"required,max=255"`
}

// ListUsers returns a paginated account listing.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, total, err := h.users.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to list users"))
		return
	}

	out := make([]authhandler.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, authhandler.ToUserResponse(u))
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{
		"users": out,
		"total": total,
	}))
}

// AdjustCredits grants or revokes credits on an account, ledgered as an
// admin transaction.
func (h *AdminHandler) AdjustCredits(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("BAD_REQUEST", "invalid user id"))
		return
	}

	var req adjustCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("BAD_REQUEST", "invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("VALIDATION", err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsZero() {
		c.JSON(http.StatusBadRequest, dto.Err("BAD_REQUEST", "amount must be a non-zero decimal"))
		return
	}

	balance, err := h.users.AdjustCredits(c.Request.Context(), uint(userID), amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.Err("NOT_FOUND", "user not found"))
		case errors.Is(err, user.ErrInsufficientCredits):
			c.JSON(http.StatusConflict, dto.Err("INSUFFICIENT_CREDITS", "revocation exceeds current balance"))
		default:
			c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to adjust credits"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"current_credits": balance}))
}

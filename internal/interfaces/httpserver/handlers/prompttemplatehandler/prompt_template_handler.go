package prompttemplatehandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"aitoolhub-server/services/hub-api/internal/domain/prompttemplate"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/dto"
	middleware "aitoolhub-server/services/hub-api/internal/interfaces/httpserver/middlewares"
)

// PromptTemplateHandler handles the prompt marketplace endpoints.
type PromptTemplateHandler struct {
	service  *prompttemplate.Service
	validate *validator.Validate
}

func NewPromptTemplateHandler(service *prompttemplate.Service) *PromptTemplateHandler {
	return &PromptTemplateHandler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// TemplateResponse is the API view of a marketplace template.
type TemplateResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	Description   *string `json:"description,omitempty"`
	ToolID        string  `json:"tool_id"`
	CreatorID     *uint   `json:"creator_id,omitempty"`
	UsageCount    int64   `json:"usage_count"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
	CreatedAt     string  `json:"created_at"`
}

func toResponse(t *prompttemplate.PromptTemplate) TemplateResponse {
	return TemplateResponse{
		ID:            t.ID,
		Title:         t.Title,
		Content:       t.Content,
		Description:   t.Description,
		ToolID:        t.ToolID,
		CreatorID:     t.CreatorID,
		UsageCount:    t.UsageCount,
		AverageRating: t.AverageRating(),
		RatingCount:   t.RatingCount,
		CreatedAt:     t.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func toResponses(templates []*prompttemplate.PromptTemplate) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, toResponse(t))
	}
	return out
}

type createTemplateRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Content     string  `json:"content" validate:"required"`
	ToolID      string  `json:"tool_id" validate:"required"`
	Description *string `json:"description"`
}

type rateTemplateRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// List returns templates filtered by tool or search term.
func (h *PromptTemplateHandler) List(c *gin.Context) {
	filter := prompttemplate.Filter{}
	if toolID := c.Query("tool_id"); toolID != "" {
		filter.ToolID = &toolID
	}
	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}
	if mine := c.Query("mine"); mine == "true" {
		usr, ok := middleware.UserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "authentication required"))
			return
		}
		filter.CreatorID = &usr.ID
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	templates, total, err := h.service.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to list templates"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{
		"templates": toResponses(templates),
		"total":     total,
	}))
}

// Trending returns the most used templates.
func (h *PromptTemplateHandler) Trending(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	templates, err := h.service.Trending(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to load trending templates"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(toResponses(templates)))
}

// Get returns one template.
func (h *PromptTemplateHandler) Get(c *gin.Context) {
	t, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, prompttemplate.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Err("NOT_FOUND", "template not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to load template"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(toResponse(t)))
}

// Create publishes a template to the marketplace.
func (h *PromptTemplateHandler) Create(c *gin.Context) {
	usr, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "authentication required"))
		return
	}

	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("BAD_REQUEST", "invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("VALIDATION", err.Error()))
		return
	}

	t, err := h.service.Create(c.Request.Context(), req.Title, req.Content, req.ToolID, req.Description, &usr.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to create template"))
		return
	}
	c.JSON(http.StatusCreated, dto.OK(toResponse(t)))
}

// Use records a template usage for trending.
func (h *PromptTemplateHandler) Use(c *gin.Context) {
	if err := h.service.RecordUsage(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, prompttemplate.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Err("NOT_FOUND", "template not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to record usage"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{"message": "usage recorded"}))
}

// Rate folds a 1-5 rating into the template's running average.
func (h *PromptTemplateHandler) Rate(c *gin.Context) {
	if _, ok := middleware.UserFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "authentication required"))
		return
	}

	var req rateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("BAD_REQUEST", "invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("VALIDATION", err.Error()))
		return
	}

	if err := h.service.Rate(c.Request.Context(), c.Param("id"), req.Rating); err != nil {
		if errors.Is(err, prompttemplate.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Err("NOT_FOUND", "template not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to rate template"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{"message": "rating recorded"}))
}

// Delete removes a template. Creators may delete their own, admins any.
func (h *PromptTemplateHandler) Delete(c *gin.Context) {
	usr, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "authentication required"))
		return
	}

	t, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, prompttemplate.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Err("NOT_FOUND", "template not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to load template"))
		return
	}

	owned := t.CreatorID != nil && *t.CreatorID == usr.ID
	if !owned && !usr.IsAdmin {
		c.JSON(http.StatusForbidden, dto.Err("FORBIDDEN", "not the template creator"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), t.ID); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to delete template"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{"message": "template deleted"}))
}

package generation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"aitoolhub-server/services/hub-api/internal/domain/credit"
	"aitoolhub-server/services/hub-api/internal/domain/tool"
	"aitoolhub-server/services/hub-api/internal/infrastructure/logger"
	"aitoolhub-server/services/hub-api/internal/infrastructure/metrics"
)

// ResultType classifies how a result is presented. It is inferred from the
// tool id, not from the provider response.
type ResultType string

const (
	ResultTypeText  ResultType = "text"
	ResultTypeImage ResultType = "image"
	ResultTypeCode  ResultType = "code"
	ResultTypeChat  ResultType = "chat"
)

// ClassifyTool infers the result type from substrings of the tool id.
func ClassifyTool(toolID string) ResultType {
	switch {
	case strings.Contains(toolID, "image"),
		strings.Contains(toolID, "logo"),
		strings.Contains(toolID, "avatar"):
		return ResultTypeImage
	case strings.Contains(toolID, "code"),
		strings.Contains(toolID, "debugging"):
		return ResultTypeCode
	case strings.Contains(toolID, "chat"):
		return ResultTypeChat
	default:
		return ResultTypeText
	}
}

// CreditStore is the slice of the user store the orchestrator needs. Both
// operations are atomic per user; SpendCredits fails with
// user.ErrInsufficientCredits semantics when the balance cannot cover the
// amount, without changing it.
type CreditStore interface {
	SpendCredits(ctx context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error)
	AddCredits(ctx context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error)
}

// Request is one end-to-end generation request. UserID zero means no session.
type Request struct {
	UserID   uint
	ToolID   string
	Provider string
	Prompt   string
	// TaskType refines model choice; empty means the provider default.
	TaskType string
}

// Response is the formatted outcome of a successful generation.
type Response struct {
	Type              ResultType      `json:"type"`
	ToolID            string          `json:"tool_id"`
	ToolName          string          `json:"tool_name"`
	Provider          string          `json:"provider"`
	Prompt            string          `json:"prompt"`
	Result            string          `json:"result,omitempty"`
	ImageData         string          `json:"image_data,omitempty"`
	ModelUsed         string          `json:"model_used"`
	ModelCapabilities []string        `json:"model_capabilities,omitempty"`
	ResponseTime      float64         `json:"response_time"`
	Tokens            TokenCounts     `json:"tokens"`
	CreditsSpent      decimal.Decimal `json:"credits_spent"`
	Balance           decimal.Decimal `json:"current_credits"`
}

const (
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
)

// Service is the request orchestrator: it validates the tool/provider
// pair, reserves credits, selects a model, dispatches to the provider, and
// settles the reservation based on the outcome.
type Service struct {
	registry *tool.Registry
	adapters AdapterRegistry
	credits  CreditStore
	ledger   *credit.Service
	timeout  time.Duration
}

// NewService creates the orchestrator.
func NewService(registry *tool.Registry, adapters AdapterRegistry, credits CreditStore, ledger *credit.Service, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		registry: registry,
		adapters: adapters,
		credits:  credits,
		ledger:   ledger,
		timeout:  timeout,
	}
}

// Process runs the orchestration state machine. The credit check is an
// atomic reservation: the cost is conditionally deducted up front and
// refunded on every failure path, so concurrent requests can never drive a
// balance negative and a failed generation never costs the user anything.
func (s *Service) Process(ctx context.Context, req Request) (*Response, error) {
	log := logger.GetLogger()

	t, ok := s.registry.Find(req.ToolID)
	if !ok {
		return nil, ErrToolNotFound
	}

	if !t.SupportsProvider(req.Provider) {
		return nil, ErrInvalidProvider
	}

	if req.UserID == 0 {
		return nil, ErrLoginRequired
	}

	balance, err := s.credits.SpendCredits(ctx, req.UserID, t.Cost)
	if err != nil {
		return nil, err
	}

	selector := s.registry.Selector()
	selection := selector.SelectModel(t.CapabilityType(), req.Provider, req.TaskType, len(req.Prompt)*4)
	if selection.Fallback {
		// Degraded selection is a warning, not a failure.
		metrics.SelectorFallbacksTotal.WithLabelValues(req.Provider).Inc()
		log.Warn().
			Str("tool_id", req.ToolID).
			Str("provider", req.Provider).
			Str("model", selection.ModelID).
			Msg("model selection degraded to provider fallback")
	}

	resultType := ClassifyTool(req.ToolID)

	adapter, ok := s.adapters.Adapter(req.Provider)
	if !ok {
		s.refund(ctx, req.UserID, t)
		return nil, ErrProviderUnavailable
	}

	if resultType == ResultTypeImage && !adapter.Capabilities().Has(CapabilityImage) {
		s.refund(ctx, req.UserID, t)
		return nil, ErrCapabilityUnsupported
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var result Result
	if resultType == ResultTypeImage {
		result = adapter.GenerateImage(dispatchCtx, ImageRequest{
			Prompt: req.Prompt,
			Model:  selection.ModelID,
		})
	} else {
		result = adapter.GenerateText(dispatchCtx, TextRequest{
			Prompt:      req.Prompt,
			Model:       selection.ModelID,
			MaxTokens:   defaultMaxTokens,
			Temperature: defaultTemperature,
		})
	}
	metrics.GenerationDuration.WithLabelValues(req.Provider).Observe(result.ResponseTime.Seconds())

	if !result.Success {
		s.refund(ctx, req.UserID, t)
		metrics.ProviderErrorsTotal.WithLabelValues(req.Provider, "generation").Inc()
		log.Error().
			Str("tool_id", req.ToolID).
			Str("provider", req.Provider).
			Str("model", result.Model).
			Str("error", result.Error).
			Msg("provider call failed")
		s.recordUsage(ctx, req, t, result, false)
		return nil, &GenerationError{
			Provider: req.Provider,
			Model:    result.Model,
			Message:  result.Error,
		}
	}

	metrics.GenerationsTotal.WithLabelValues(req.ToolID, req.Provider, "success").Inc()
	metrics.CreditsSpentTotal.WithLabelValues(req.ToolID).Add(t.Cost.InexactFloat64())
	s.recordUsage(ctx, req, t, result, true)
	if err := s.ledger.Record(ctx, req.UserID, t.Cost.Neg(), credit.TransactionToolUsage, "Used "+t.Name); err != nil {
		log.Error().Err(err).Uint("user_id", req.UserID).Msg("failed to record usage transaction")
	}

	return &Response{
		Type:              resultType,
		ToolID:            t.ID,
		ToolName:          t.Name,
		Provider:          req.Provider,
		Prompt:            req.Prompt,
		Result:            result.Text,
		ImageData:         result.ImageData,
		ModelUsed:         result.Model,
		ModelCapabilities: selector.ModelCapabilities(result.Model),
		ResponseTime:      result.ResponseTime.Seconds(),
		Tokens:            result.Tokens,
		CreditsSpent:      t.Cost,
		Balance:           balance,
	}, nil
}

// refund releases the reservation taken at CHECK_CREDITS. It is only
// called on failure paths, so the net effect is an unchanged balance.
func (s *Service) refund(ctx context.Context, userID uint, t tool.Tool) {
	if _, err := s.credits.AddCredits(ctx, userID, t.Cost); err != nil {
		logger.GetLogger().Error().Err(err).
			Uint("user_id", userID).
			Str("tool_id", t.ID).
			Msg("failed to refund credit reservation")
	}
}

func (s *Service) recordUsage(ctx context.Context, req Request, t tool.Tool, result Result, success bool) {
	usage := &credit.ToolUsage{
		UserID:   req.UserID,
		ToolID:   t.ID,
		Provider: req.Provider,
		Model:    result.Model,
		Success:  success,
	}
	if success {
		usage.CreditsSpent = t.Cost
	} else if result.Error != "" {
		msg := result.Error
		usage.ErrorMessage = &msg
	}
	usage.Metadata = map[string]any{
		"response_time_ms": result.ResponseTime.Milliseconds(),
	}
	if req.TaskType != "" {
		usage.Metadata["task_type"] = req.TaskType
	}
	if result.Tokens.Total > 0 {
		usage.Metadata["total_tokens"] = result.Tokens.Total
	}
	if err := s.ledger.RecordUsage(ctx, usage); err != nil {
		logger.GetLogger().Error().Err(err).
			Uint("user_id", req.UserID).
			Str("tool_id", t.ID).
			Msg("failed to record tool usage")
	}
}

// IsUserFacing reports whether an orchestrator error maps to a client
// failure rather than an internal one.
func IsUserFacing(err error) bool {
	var genErr *GenerationError
	return errors.Is(err, ErrToolNotFound) ||
		errors.Is(err, ErrInvalidProvider) ||
		errors.Is(err, ErrProviderUnavailable) ||
		errors.Is(err, ErrLoginRequired) ||
		errors.Is(err, ErrCapabilityUnsupported) ||
		errors.As(err, &genErr)
}

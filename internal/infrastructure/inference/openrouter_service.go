package inference

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"aitoolhub-server/services/hub-api/internal/domain/generation"
	"aitoolhub-server/services/hub-api/internal/infrastructure/logger"
	"aitoolhub-server/services/hub-api/internal/utils/httpclients"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// OpenRouterService adapts OpenRouter's OpenAI-compatible routing API.
// Text only.
type OpenRouterService struct {
	client *resty.Client
	appURL string
	caps   generation.CapabilitySet
}

var _ generation.Adapter = (*OpenRouterService)(nil)

func NewOpenRouterService(apiKey, baseURL, appURL string) *OpenRouterService {
	client := httpclients.NewClient("OpenRouterClient")
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey))
	return &OpenRouterService{
		client: client,
		appURL: appURL,
		caps:   generation.NewCapabilitySet(generation.CapabilityText),
	}
}

func (s *OpenRouterService) Name() string { return "openrouter" }

func (s *OpenRouterService) Capabilities() generation.CapabilitySet { return s.caps }

func (s *OpenRouterService) GenerateText(ctx context.Context, req generation.TextRequest) generation.Result {
	started := time.Now()

	messages := []chatMessage{}
	if req.SystemMessage != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemMessage})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	var out chatCompletionResponse
	res, err := s.client.R().
		SetContext(ctx).
		SetHeader("HTTP-Referer", s.appURL).
		SetBody(chatCompletionRequest{
			Model:       req.Model,
			Messages:    messages,
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
		}).
		SetResult(&out).
		SetError(&out).
		Post("/chat/completions")
	elapsed := time.Since(started)

	if err != nil {
		logger.GetLogger().Warn().
			Err(err).
			Str("provider", s.Name()).
			Str("model", req.Model).
			Dur("latency", elapsed).
			Msg("chat completion failed")
		return failedResult(s.Name(), req.Model, elapsed, err)
	}
	if res.IsError() {
		msg := fmt.Sprintf("upstream status %d", res.StatusCode())
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return failedResultMsg(s.Name(), req.Model, elapsed, msg)
	}
	if len(out.Choices) == 0 {
		return failedResultMsg(s.Name(), req.Model, elapsed, "empty completion response")
	}

	model := out.Model
	if model == "" {
		model = req.Model
	}
	return generation.Result{
		Success:      true,
		Text:         out.Choices[0].Message.Content,
		Model:        model,
		Provider:     s.Name(),
		ResponseTime: elapsed,
		Tokens: generation.TokenCounts{
			Prompt:     out.Usage.PromptTokens,
			Completion: out.Usage.CompletionTokens,
			Total:      out.Usage.TotalTokens,
		},
	}
}

func (s *OpenRouterService) GenerateImage(ctx context.Context, req generation.ImageRequest) generation.Result {
	return failedResultMsg(s.Name(), req.Model, 0, "image generation not supported")
}

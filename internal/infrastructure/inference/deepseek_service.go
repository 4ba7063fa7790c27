package inference

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"aitoolhub-server/services/hub-api/internal/domain/generation"
	"aitoolhub-server/services/hub-api/internal/infrastructure/logger"
)

// DeepSeekService adapts DeepSeek's OpenAI-compatible chat API. Text only.
type DeepSeekService struct {
	client *openai.Client
	caps   generation.CapabilitySet
}

var _ generation.Adapter = (*DeepSeekService)(nil)

func NewDeepSeekService(apiKey, baseURL string) *DeepSeekService {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &DeepSeekService{
		client: openai.NewClientWithConfig(cfg),
		caps:   generation.NewCapabilitySet(generation.CapabilityText),
	}
}

func (s *DeepSeekService) Name() string { return "deepseek" }

func (s *DeepSeekService) Capabilities() generation.CapabilitySet { return s.caps }

func (s *DeepSeekService) GenerateText(ctx context.Context, req generation.TextRequest) generation.Result {
	started := time.Now()

	messages := []openai.ChatCompletionMessage{}
	if req.SystemMessage != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemMessage,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
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
	if len(resp.Choices) == 0 {
		return failedResultMsg(s.Name(), req.Model, elapsed, "empty completion response")
	}

	return generation.Result{
		Success:      true,
		Text:         resp.Choices[0].Message.Content,
		Model:        req.Model,
		Provider:     s.Name(),
		ResponseTime: elapsed,
		Tokens: generation.TokenCounts{
			Prompt:     resp.Usage.PromptTokens,
			Completion: resp.Usage.CompletionTokens,
			Total:      resp.Usage.TotalTokens,
		},
	}
}

func (s *DeepSeekService) GenerateImage(ctx context.Context, req generation.ImageRequest) generation.Result {
	return failedResultMsg(s.Name(), req.Model, 0, "image generation not supported")
}

package inference

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"aitoolhub-server/services/hub-api/internal/domain/generation"
	"aitoolhub-server/services/hub-api/internal/infrastructure/logger"
)

const openaiDefaultImageModel = "dall-e-3"

// OpenAIService adapts the OpenAI API for text and image generation.
type OpenAIService struct {
	client *openai.Client
	caps   generation.CapabilitySet
}

var _ generation.Adapter = (*OpenAIService)(nil)

func NewOpenAIService(apiKey string) *OpenAIService {
	return &OpenAIService{
		client: openai.NewClient(apiKey),
		caps:   generation.NewCapabilitySet(generation.CapabilityText, generation.CapabilityImage),
	}
}

func (s *OpenAIService) Name() string { return "openai" }

func (s *OpenAIService) Capabilities() generation.CapabilitySet { return s.caps }

func (s *OpenAIService) GenerateText(ctx context.Context, req generation.TextRequest) generation.Result {
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
		Model:        resp.Model,
		Provider:     s.Name(),
		ResponseTime: elapsed,
		Tokens: generation.TokenCounts{
			Prompt:     resp.Usage.PromptTokens,
			Completion: resp.Usage.CompletionTokens,
			Total:      resp.Usage.TotalTokens,
		},
	}
}

func (s *OpenAIService) GenerateImage(ctx context.Context, req generation.ImageRequest) generation.Result {
	started := time.Now()

	model := req.Model
	if model == "" {
		model = openaiDefaultImageModel
	}
	size := req.Size
	if size == "" {
		size = openai.CreateImageSize1024x1024
	}

	resp, err := s.client.CreateImage(ctx, openai.ImageRequest{
		Model:          model,
		Prompt:         req.Prompt,
		N:              1,
		Size:           size,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	elapsed := time.Since(started)

	if err != nil {
		logger.GetLogger().Warn().
			Err(err).
			Str("provider", s.Name()).
			Str("model", model).
			Dur("latency", elapsed).
			Msg("image generation failed")
		return failedResult(s.Name(), model, elapsed, err)
	}
	if len(resp.Data) == 0 {
		return failedResultMsg(s.Name(), model, elapsed, "empty image response")
	}

	return generation.Result{
		Success:      true,
		ImageData:    resp.Data[0].B64JSON,
		Model:        model,
		Provider:     s.Name(),
		ResponseTime: elapsed,
	}
}

func failedResult(provider, model string, elapsed time.Duration, err error) generation.Result {
	return failedResultMsg(provider, model, elapsed, err.Error())
}

func failedResultMsg(provider, model string, elapsed time.Duration, msg string) generation.Result {
	return generation.Result{
		Success:      false,
		Model:        model,
		Provider:     provider,
		ResponseTime: elapsed,
		Error:        msg,
	}
}

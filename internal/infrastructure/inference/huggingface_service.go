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

type hfTextRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		MaxNewTokens   int     `json:"max_new_tokens,omitempty"`
		Temperature    float32 `json:"temperature,omitempty"`
		ReturnFullText bool    `json:"return_full_text"`
	} `json:"parameters"`
}

type hfTextResponse []struct {
	GeneratedText string `json:"generated_text"`
}

type hfErrorResponse struct {
	Error string `json:"error"`
}

// HuggingFaceService adapts the Hugging Face hosted inference API. Model
// identifiers are namespaced repo paths appended to the base URL. Text only.
type HuggingFaceService struct {
	client *resty.Client
	caps   generation.CapabilitySet
}

var _ generation.Adapter = (*HuggingFaceService)(nil)

func NewHuggingFaceService(apiKey, baseURL string) *HuggingFaceService {
	client := httpclients.NewClient("HuggingFaceClient")
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey))
	return &HuggingFaceService{
		client: client,
		caps:   generation.NewCapabilitySet(generation.CapabilityText),
	}
}

func (s *HuggingFaceService) Name() string { return "huggingface" }

func (s *HuggingFaceService) Capabilities() generation.CapabilitySet { return s.caps }

func (s *HuggingFaceService) GenerateText(ctx context.Context, req generation.TextRequest) generation.Result {
	started := time.Now()

	body := hfTextRequest{Inputs: req.Prompt}
	body.Parameters.MaxNewTokens = req.MaxTokens
	body.Parameters.Temperature = req.Temperature
	body.Parameters.ReturnFullText = false

	var out hfTextResponse
	var hfErr hfErrorResponse
	res, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&hfErr).
		Post("/" + req.Model)
	elapsed := time.Since(started)

	if err != nil {
		logger.GetLogger().Warn().
			Err(err).
			Str("provider", s.Name()).
			Str("model", req.Model).
			Dur("latency", elapsed).
			Msg("text generation failed")
		return failedResult(s.Name(), req.Model, elapsed, err)
	}
	if res.IsError() {
		msg := fmt.Sprintf("upstream status %d", res.StatusCode())
		if hfErr.Error != "" {
			msg = hfErr.Error
		}
		return failedResultMsg(s.Name(), req.Model, elapsed, msg)
	}
	if len(out) == 0 || out[0].GeneratedText == "" {
		return failedResultMsg(s.Name(), req.Model, elapsed, "empty generation response")
	}

	return generation.Result{
		Success:      true,
		Text:         out[0].GeneratedText,
		Model:        req.Model,
		Provider:     s.Name(),
		ResponseTime: elapsed,
	}
}

func (s *HuggingFaceService) GenerateImage(ctx context.Context, req generation.ImageRequest) generation.Result {
	return failedResultMsg(s.Name(), req.Model, 0, "image generation not supported")
}

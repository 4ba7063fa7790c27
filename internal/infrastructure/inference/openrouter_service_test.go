package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aitoolhub-server/services/hub-api/internal/domain/generation"
)

func TestOpenRouterGenerateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "meta-llama/llama-2-70b-chat" {
			t.Errorf("unexpected model %s", req.Model)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model": req.Model,
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "hello there"}},
			},
			"usage": map[string]int{"prompt_tokens": 3, "completion_tokens": 7, "total_tokens": 10},
		})
	}))
	defer server.Close()

	svc := NewOpenRouterService("test-key", server.URL, "http://localhost:8080")
	result := svc.GenerateText(context.Background(), generation.TextRequest{
		Prompt:    "hi",
		Model:     "meta-llama/llama-2-70b-chat",
		MaxTokens: 100,
	})

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.Text != "hello there" {
		t.Fatalf("unexpected text %q", result.Text)
	}
	if result.Tokens.Total != 10 {
		t.Fatalf("unexpected token count %d", result.Tokens.Total)
	}
	if result.ResponseTime <= 0 {
		t.Fatal("response time not measured")
	}
}

func TestOpenRouterGenerateTextUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
	defer server.Close()

	svc := NewOpenRouterService("test-key", server.URL, "http://localhost:8080")
	result := svc.GenerateText(context.Background(), generation.TextRequest{
		Prompt: "hi",
		Model:  "meta-llama/llama-2-70b-chat",
	})

	if result.Success {
		t.Fatal("expected failure result")
	}
	if result.Error != "rate limited" {
		t.Fatalf("expected upstream message, got %q", result.Error)
	}
}

func TestOpenRouterGenerateImageUnsupported(t *testing.T) {
	svc := NewOpenRouterService("test-key", "http://unused", "http://localhost:8080")
	if svc.Capabilities().Has(generation.CapabilityImage) {
		t.Fatal("openrouter must not advertise image capability")
	}
	result := svc.GenerateImage(context.Background(), generation.ImageRequest{Prompt: "a cat"})
	if result.Success {
		t.Fatal("expected failure result")
	}
}

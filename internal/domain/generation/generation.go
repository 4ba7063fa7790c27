package generation

import (
	"context"
	"errors"
	"time"
)

// Taxonomy of orchestrator failures. InsufficientCredits is recoverable
// (the caller surfaces an ad-reward upsell); the rest are terminal for the
// request but never fatal for the process.
var (
	ErrToolNotFound          = errors.New("tool not found")
	ErrInvalidProvider       = errors.New("provider not supported for this tool")
	ErrProviderUnavailable   = errors.New("provider is not configured")
	ErrLoginRequired         = errors.New("login required")
	ErrCapabilityUnsupported = errors.New("provider does not support this capability")
)

// GenerationError is a provider-side failure carrying the adapter's message.
type GenerationError struct {
	Provider string
	Model    string
	Message  string
}

func (e *GenerationError) Error() string {
	return e.Message
}

// Capability tags what an adapter can produce.
type Capability string

const (
	CapabilityText  Capability = "text"
	CapabilityImage Capability = "image"
)

// CapabilitySet is an adapter's declared operation set, fixed at construction.
type CapabilitySet map[Capability]bool

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = true
	}
	return set
}

// Has reports whether the capability is supported.
func (s CapabilitySet) Has(c Capability) bool {
	return s[c]
}

// TokenCounts reports upstream usage when the vendor provides it, zeroed otherwise.
type TokenCounts struct {
	Prompt     int `json:"prompt"`
	Completion int `json:"completion"`
	Total      int `json:"total"`
}

// Result is the normalized outcome of a provider call. Every adapter
// produces this shape regardless of the wrapped vendor's native response.
type Result struct {
	Success      bool          `json:"success"`
	Text         string        `json:"text,omitempty"`
	ImageData    string        `json:"image_data,omitempty"`
	Model        string        `json:"model"`
	Provider     string        `json:"provider"`
	ResponseTime time.Duration `json:"response_time"`
	Tokens       TokenCounts   `json:"tokens"`
	Error        string        `json:"error,omitempty"`
}

// TextRequest parameterizes a text generation call.
type TextRequest struct {
	Prompt        string
	Model         string
	MaxTokens     int
	Temperature   float32
	SystemMessage string
}

// ImageRequest parameterizes an image generation call.
type ImageRequest struct {
	Prompt string
	Model  string
	Size   string
}

// Adapter wraps one external AI vendor. Calls never return transport
// errors for ordinary remote failures: those come back as a Result with
// Success=false, a human-readable Error, and the measured ResponseTime.
// Adapters perform a single attempt; retry policy belongs to the caller.
type Adapter interface {
	Name() string
	Capabilities() CapabilitySet
	GenerateText(ctx context.Context, req TextRequest) Result
	GenerateImage(ctx context.Context, req ImageRequest) Result
}

// AdapterRegistry resolves provider names to configured adapters.
type AdapterRegistry interface {
	Adapter(provider string) (Adapter, bool)
}

// Package llm talks to the chat-completion services that write the name
// suggestions.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrMissingAPIKey is returned when the provider's credential is not set.
	ErrMissingAPIKey = errors.New("API key not set")

	// ErrEmptyResponse is returned when the service answers without text.
	ErrEmptyResponse = errors.New("empty response from API")

	// ErrUnknownProvider is returned by New for an unsupported provider name.
	ErrUnknownProvider = errors.New("unknown LLM provider")
)

// Provider names.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// DefaultTemperature is the sampling temperature used when none is configured.
const DefaultTemperature = 0.7

// Provider sends one prompt and returns the model's raw text.
// Implementations do not retry.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// Request is a single chat completion.
type Request struct {
	Model       string   // Overrides the provider's default model when set
	System      string   // System role instruction
	Prompt      string   // User role instruction
	Temperature *float64 // Provider default when nil
	MaxTokens   int      // Provider default when zero
}

// APIError is a non-success answer from the service. Err holds the
// underlying error when the failure came from a client library.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s API error: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("%s API error (%d): %s", e.Provider, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// Options configure a provider built with New.
type Options struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// New builds the provider named in opts. An empty name selects OpenAI.
func New(ctx context.Context, opts Options) (Provider, error) {
	httpClient := &http.Client{Timeout: opts.Timeout}
	if opts.Timeout <= 0 {
		httpClient.Timeout = 60 * time.Second
	}

	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", ProviderOpenAI:
		return NewOpenAI(opts.APIKey,
			WithModel(opts.Model),
			WithBaseURL(opts.BaseURL),
			WithHTTPClient(httpClient),
		)
	case ProviderGemini:
		return NewGemini(ctx, opts.APIKey, opts.Model, httpClient)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, opts.Provider)
	}
}

// Temperature returns a pointer for Request.Temperature.
func Temperature(t float64) *float64 {
	return &t
}

// Package namer ties together validation, prompt building, the language
// model call and response parsing.
package namer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/f3rmion/ireum/internal/llm"
	"github.com/f3rmion/ireum/internal/naming"
	"github.com/f3rmion/ireum/internal/parse"
	"github.com/f3rmion/ireum/internal/prompt"
)

// Suggester produces name suggestions. The web and terminal front ends
// depend on this rather than on *Service.
type Suggester interface {
	Suggest(ctx context.Context, req naming.Request, format naming.Format) (naming.ResultSet, error)
}

// Service runs one suggestion round trip per call and keeps no state
// between calls.
type Service struct {
	provider    llm.Provider
	providerErr error
	gen         *prompt.Generator
	model       string
	temperature float64
	log         *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(s *Service) { s.model = model }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(s *Service) { s.temperature = t }
}

// WithLogger sets the logger. Nil discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithGenerator replaces the prompt generator.
func WithGenerator(g *prompt.Generator) Option {
	return func(s *Service) {
		if g != nil {
			s.gen = g
		}
	}
}

// New creates a Service around provider.
func New(provider llm.Provider, opts ...Option) *Service {
	s := &Service{
		provider:    provider,
		gen:         prompt.NewGenerator(),
		temperature: llm.DefaultTemperature,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Unavailable creates a Service whose provider could not be built. Input
// is still validated; every valid request fails with err. This lets the
// front ends start without credentials and report the problem per request.
func Unavailable(err error, opts ...Option) *Service {
	s := New(nil, opts...)
	s.providerErr = err
	return s
}

// Suggest validates req, asks the model for names in the given format and
// parses the answer. On error the returned set is empty.
func (s *Service) Suggest(ctx context.Context, req naming.Request, format naming.Format) (naming.ResultSet, error) {
	req = naming.Normalize(req)
	if err := naming.Validate(req); err != nil {
		return nil, err
	}

	promptText, err := s.gen.Generate(req, format)
	if err != nil {
		return nil, fmt.Errorf("building prompt: %w", err)
	}

	if s.providerErr != nil {
		return nil, s.providerErr
	}
	if s.provider == nil {
		return nil, fmt.Errorf("no language model configured: %w", llm.ErrMissingAPIKey)
	}

	log := s.log.With(
		slog.String("provider", s.provider.Name()),
		slog.String("format", string(format)),
	)

	start := time.Now()
	raw, err := s.provider.Complete(ctx, llm.Request{
		Model:       s.model,
		System:      prompt.SystemPrompt,
		Prompt:      promptText,
		Temperature: llm.Temperature(s.temperature),
	})
	if err != nil {
		log.Error("completion failed", slog.Any("error", err), slog.Duration("elapsed", time.Since(start)))
		return nil, fmt.Errorf("requesting names: %w", err)
	}

	records, err := parse.Parse(format, raw)
	if err != nil {
		log.Warn("unparseable response", slog.Any("error", err), slog.Int("bytes", len(raw)))
		return nil, err
	}

	log.Info("names suggested",
		slog.Int("count", len(records)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return records, nil
}

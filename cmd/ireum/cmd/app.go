package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/f3rmion/ireum/internal/config"
	"github.com/f3rmion/ireum/internal/hanja"
	"github.com/f3rmion/ireum/internal/llm"
	"github.com/f3rmion/ireum/internal/logger"
	"github.com/f3rmion/ireum/internal/namer"
	"github.com/f3rmion/ireum/internal/naming"
	"github.com/f3rmion/ireum/internal/prompt"
)

// app bundles what every front end needs.
type app struct {
	cfg     config.Config
	format  naming.Format
	log     *slog.Logger
	svc     *namer.Service
	breaker *hanja.Breaker
}

// newLogger builds the process logger from the config.
func newLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(slog.String("app", "ireum")),
	), nil
}

// newApp wires the service and the hanja breaker. A provider that cannot
// be built does not stop the front ends; each request reports it instead.
func newApp(ctx context.Context, cfg config.Config, log *slog.Logger) (*app, error) {
	format, err := naming.ParseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid format %q: %w", cfg.Format, err)
	}

	gen, err := newGenerator(cfg.Prompts)
	if err != nil {
		return nil, err
	}

	opts := []namer.Option{
		namer.WithModel(cfg.Model),
		namer.WithTemperature(cfg.Temperature),
		namer.WithLogger(log),
		namer.WithGenerator(gen),
	}

	var svc *namer.Service
	provider, err := llm.New(ctx, llm.Options{
		Provider: cfg.Provider,
		APIKey:   apiKey(cfg.Provider),
		Model:    cfg.Model,
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.HTTPTimeout,
	})
	if err != nil {
		log.Warn("language model unavailable", logger.Error(err))
		svc = namer.Unavailable(err, opts...)
	} else {
		log.Debug("language model ready", slog.String("provider", provider.Name()))
		svc = namer.New(provider, opts...)
	}

	return &app{
		cfg:     cfg,
		format:  format,
		log:     log,
		svc:     svc,
		breaker: hanja.NewBreaker(loadDictionary(cfg.Dictionary, log)),
	}, nil
}

// newGenerator loads prompt template overrides keyed by format name.
func newGenerator(prompts map[string]string) (*prompt.Generator, error) {
	gen := prompt.NewGenerator()
	for name, path := range prompts {
		format, err := naming.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("prompt template %q: %w", name, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading prompt template: %w", err)
		}
		if err := gen.SetTemplate(format, string(data)); err != nil {
			return nil, fmt.Errorf("prompt template %s: %w", path, err)
		}
	}
	return gen, nil
}

// apiKey picks the key for provider. IREUM_API_KEY wins over the
// provider's own variable; Gemini falls back to its variables itself.
func apiKey(provider string) string {
	if key := viper.GetString("api_key"); key != "" {
		return key
	}
	if provider == llm.ProviderGemini {
		return ""
	}
	return os.Getenv("OPENAI_API_KEY")
}

// loadDictionary tries the configured path, the config directory and the
// directory of the executable. Without a dictionary, breakdowns carry
// readings only.
func loadDictionary(path string, log *slog.Logger) *hanja.Dictionary {
	paths := []string{path}
	if dir, err := config.GetConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "dictionary.jsonl"))
	}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), "data", "dictionary.jsonl"))
	}

	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		dict := hanja.NewDictionary()
		if err := dict.LoadFromFile(p); err != nil {
			log.Warn("could not load dictionary", slog.String("path", p), logger.Error(err))
			continue
		}
		log.Debug("dictionary loaded", slog.String("path", p), slog.Int("entries", dict.Size()))
		return dict
	}
	return nil
}

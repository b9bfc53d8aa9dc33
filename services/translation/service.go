// Package translation implements the text-translation pipeline: language
// resolution, input normalization, the result cache, and the call into
// the model host.
package translation

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/bhashabridge/bhasha-bridge/backend/internal/language"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/observability"
	"github.com/bhashabridge/bhasha-bridge/backend/services"
)

// Translator is the model host seam.
type Translator interface {
	Translate(ctx context.Context, text string, src language.Language) (string, error)
	Ready() bool
}

// Result is the outcome of one translation.
type Result struct {
	Text   string
	Source language.Language
	Cached bool
}

// Service coordinates one translation request end to end.
type Service struct {
	registry *language.Registry
	host     Translator
	cache    *ResultCache
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewService creates a translation service. cache and metrics may be nil.
func NewService(registry *language.Registry, host Translator, cache *ResultCache, metrics *observability.Metrics, logger *zap.Logger) *Service {
	return &Service{
		registry: registry,
		host:     host,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
	}
}

// Translate translates text from sourceLang into the registry's target
// language. Identical input yields identical output: decoding is fixed at
// model load and the cache only ever returns what the model produced.
func (s *Service) Translate(ctx context.Context, text, sourceLang string) (*Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, services.ErrEmptyText
	}
	if strings.TrimSpace(sourceLang) == "" {
		return nil, services.ErrMissingLanguage
	}

	src, ok := s.registry.Resolve(sourceLang)
	if !ok {
		return nil, services.NewDomainError(services.ErrorTypeUnsupportedLanguage,
			"source language is not supported", nil).
			WithDetail("source_lang", sourceLang).
			WithDetail("supported", s.registry.Codes())
	}

	if s.host == nil || !s.host.Ready() {
		return nil, services.ErrModelNotLoaded
	}

	// Unicode NFC so visually identical Devanagari/Sinhala sequences hit
	// the same cache key and model input.
	normalized := norm.NFC.String(trimmed)
	key := src.Code + "\x00" + normalized

	if cached, ok := s.cache.Get(key); ok {
		s.metrics.RecordTranslation(true)
		s.logger.Debug("translation served from cache",
			zap.String("source_lang", src.Code),
			zap.Int("text_len", len(normalized)))
		return &Result{Text: cached, Source: src, Cached: true}, nil
	}

	out, err := s.host.Translate(ctx, normalized, src)
	if err != nil {
		s.metrics.RecordFailure()
		return nil, services.WrapInference("translation model failed to generate output", err)
	}
	if out == "" {
		s.metrics.RecordFailure()
		return nil, services.ErrEmptyGeneration
	}

	s.cache.Set(key, out)
	s.metrics.RecordTranslation(false)
	s.logger.Debug("translation generated",
		zap.String("source_lang", src.Code),
		zap.Int("text_len", len(normalized)),
		zap.Int("output_len", len(out)))

	return &Result{Text: out, Source: src}, nil
}

// Ready reports whether the model host can serve.
func (s *Service) Ready() bool {
	return s.host != nil && s.host.Ready()
}

// Languages returns the supported source languages.
func (s *Service) Languages() []language.Language {
	return s.registry.List()
}

// CacheStats exposes the result cache counters for the status endpoint.
func (s *Service) CacheStats() CacheStats {
	return s.cache.Stats()
}

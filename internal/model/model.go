// Package model owns the pretrained translation model. The model is loaded
// once at process start, is never mutated or reloaded afterwards, and is
// shared read-only by all request goroutines; no locking is needed.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bhashabridge/bhasha-bridge/backend/internal/language"
	"go.uber.org/zap"
)

// TextGenerator is the seam over the underlying sequence-to-sequence engine.
type TextGenerator interface {
	// Generate runs the model's generation procedure on the prepared input
	// and returns the decoded output text.
	Generate(ctx context.Context, input string) (string, error)
}

// Host exposes translation over the loaded model.
type Host struct {
	gen      TextGenerator
	finalize func()

	target    language.Language
	modelName string
	device    string
	loadedAt  time.Time
	logger    *zap.Logger
}

// NewHost wraps an already-constructed generator. Used directly by tests;
// production wiring goes through Load.
func NewHost(gen TextGenerator, target language.Language, modelName string, logger *zap.Logger) *Host {
	return &Host{
		gen:       gen,
		target:    target,
		modelName: modelName,
		device:    "cpu",
		loadedAt:  time.Now().UTC(),
		logger:    logger,
	}
}

// Translate generates the translation of text from src into the host's
// target language. It is a pure function of its inputs and the fixed model
// weights: decoding is configured deterministically at load time, so
// identical input yields identical output.
func (h *Host) Translate(ctx context.Context, text string, src language.Language) (string, error) {
	if h == nil || h.gen == nil {
		return "", errors.New("model is not loaded")
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errors.New("empty input text")
	}

	h.logger.Debug("generating translation",
		zap.String("source", src.Code),
		zap.Int("input_len", len(trimmed)))

	// Many-to-one Marian models take the raw source sentence; the English
	// target is baked into the checkpoint, so no language token is prepended.
	out, err := h.gen.Generate(ctx, trimmed)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Ready reports whether the model is resident and able to serve.
func (h *Host) Ready() bool {
	return h != nil && h.gen != nil
}

// ModelName returns the configured model identifier.
func (h *Host) ModelName() string {
	return h.modelName
}

// Target returns the language translations are produced in.
func (h *Host) Target() language.Language {
	return h.target
}

// LoadedAt returns when the model finished loading.
func (h *Host) LoadedAt() time.Time {
	return h.loadedAt
}

// Close releases the engine's resources. Called once at process shutdown.
func (h *Host) Close() {
	if h.finalize != nil {
		h.finalize()
		h.finalize = nil
	}
}

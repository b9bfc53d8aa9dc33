package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nlpodyssey/cybertron/pkg/tasks"
	"github.com/nlpodyssey/cybertron/pkg/tasks/textgeneration"
	"go.uber.org/zap"

	"github.com/bhashabridge/bhasha-bridge/backend/config"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/language"
)

// textGenEngine adapts the cybertron text generation task to TextGenerator.
// Decoding options are fixed at construction: sampling stays disabled, which
// makes generation greedy and therefore deterministic for identical input.
type textGenEngine struct {
	model textgeneration.Interface
	opts  *textgeneration.Options
}

func (e *textGenEngine) Generate(ctx context.Context, input string) (string, error) {
	result, err := e.model.Generate(ctx, input, e.opts)
	if err != nil {
		return "", err
	}
	if len(result.Texts) == 0 {
		return "", errors.New("engine returned no generations")
	}
	return result.Texts[0], nil
}

// Load reads the model named by cfg from cfg.Dir (fetching it into that
// directory on first use) and returns a ready Host. It blocks until the
// weights and tokenizer are resident; the caller must not serve traffic
// before Load returns.
func Load(cfg config.ModelConfig, target language.Language, logger *zap.Logger) (*Host, error) {
	start := time.Now()
	logger.Info("loading translation model",
		zap.String("model", cfg.Name),
		zap.String("models_dir", cfg.Dir),
		zap.String("device", cfg.Device))

	m, err := tasks.Load[textgeneration.Interface](&tasks.Config{
		ModelsDir: cfg.Dir,
		ModelName: cfg.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("load model %q: %w", cfg.Name, err)
	}

	h := NewHost(&textGenEngine{model: m, opts: textgeneration.DefaultOptions()}, target, cfg.Name, logger)
	h.device = cfg.Device
	h.finalize = func() {
		logger.Info("translation model released", zap.String("model", cfg.Name))
	}

	logger.Info("translation model loaded",
		zap.String("model", cfg.Name),
		zap.Duration("took", time.Since(start)))
	return h, nil
}

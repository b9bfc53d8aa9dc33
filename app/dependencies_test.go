package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/bhashabridge/bhasha-bridge/backend/config"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/language"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/model"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/observability"
)

type echoGenerator struct{}

func (echoGenerator) Generate(_ context.Context, input string) (string, error) {
	return input, nil
}

// testDependencies wires everything except the real model load, which needs
// a multi-gigabyte checkpoint on disk.
func testDependencies(t *testing.T, cfg *config.Config) *Dependencies {
	t.Helper()
	logger := zaptest.NewLogger(t)
	registry := language.NewRegistry()

	deps := &Dependencies{
		Config:   cfg,
		Logger:   logger,
		Registry: registry,
		Metrics:  observability.NewMetrics(),
		Host:     model.NewHost(echoGenerator{}, registry.Target(), cfg.Model.Name, logger),
	}
	deps.initTranslation(cfg)
	deps.initOCR(cfg)
	deps.initSpeech(cfg)
	deps.initHandlers(cfg)
	return deps
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 8000,
		},
		Model: config.ModelConfig{
			Name:   "Helsinki-NLP/opus-mt-mul-en",
			Dir:    "models",
			Device: "cpu",
		},
		Translation: config.TranslationConfig{
			CacheSize: 128,
			CacheTTL:  time.Hour,
		},
		OCR: config.OCRConfig{Enabled: true},
		Speech: config.SpeechConfig{
			Enabled: true,
			BaseURL: "http://localhost:9000/v1",
			Model:   "whisper-1",
			Timeout: 30 * time.Second,
		},
		Observability: config.ObservabilityConfig{
			LogLevel:  "debug",
			LogFormat: "console",
		},
	}
}

func TestDependenciesWiring(t *testing.T) {
	t.Run("all components initialized", func(t *testing.T) {
		deps := testDependencies(t, testConfig())

		assert.NotNil(t, deps.Translation)
		assert.NotNil(t, deps.OCR)
		assert.NotNil(t, deps.Speech)
		assert.True(t, deps.Speech.Enabled())

		assert.NotNil(t, deps.TranslateHandler)
		assert.NotNil(t, deps.OCRHandler)
		assert.NotNil(t, deps.SpeechHandler)
		assert.NotNil(t, deps.HealthHandler)
		assert.NotNil(t, deps.LanguageHandler)
		assert.NotNil(t, deps.LoggingMiddleware)

		assert.True(t, deps.Translation.Ready())
	})

	t.Run("ocr disabled leaves service nil", func(t *testing.T) {
		cfg := testConfig()
		cfg.OCR.Enabled = false

		deps := testDependencies(t, cfg)

		assert.Nil(t, deps.OCR)
		assert.NotNil(t, deps.OCRHandler)
	})

	t.Run("speech disabled service answers not enabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Speech.Enabled = false

		deps := testDependencies(t, cfg)

		require.NotNil(t, deps.Speech)
		assert.False(t, deps.Speech.Enabled())
	})

	t.Run("translation flows through the wired host", func(t *testing.T) {
		deps := testDependencies(t, testConfig())

		result, err := deps.Translation.Translate(context.Background(), "नमस्ते", "ne")
		require.NoError(t, err)
		assert.Contains(t, result.Text, "नमस्ते")
	})
}

func TestDependenciesClose(t *testing.T) {
	ctx := context.Background()
	deps := testDependencies(t, testConfig())

	require.NoError(t, deps.Close(ctx))

	// Second close should not panic.
	require.NoError(t, deps.Close(ctx))
}

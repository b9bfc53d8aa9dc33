package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bhashabridge/bhasha-bridge/backend/config"
	"github.com/bhashabridge/bhasha-bridge/backend/handlers"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/detector"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/language"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/model"
	iocr "github.com/bhashabridge/bhasha-bridge/backend/internal/ocr"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/observability"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/stt"
	"github.com/bhashabridge/bhasha-bridge/backend/middleware"
	"github.com/bhashabridge/bhasha-bridge/backend/services/ocr"
	"github.com/bhashabridge/bhasha-bridge/backend/services/speech"
	"github.com/bhashabridge/bhasha-bridge/backend/services/translation"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config   *config.Config
	Logger   *zap.Logger
	Registry *language.Registry
	Metrics  *observability.Metrics

	// Model host
	Host *model.Host

	// Services
	Translation *translation.Service
	OCR         *ocr.Service
	Speech      *speech.Service

	// Handlers
	TranslateHandler *handlers.TranslateHandler
	OCRHandler       *handlers.OCRHandler
	SpeechHandler    *handlers.SpeechHandler
	HealthHandler    *handlers.HealthHandler
	LanguageHandler  *handlers.LanguageHandler

	// Middleware
	LoggingMiddleware *middleware.LoggingMiddleware
}

// NewDependencies creates and wires up all application dependencies. The
// model loads synchronously here, so the caller does not open the listener
// until inference is possible.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:   cfg,
		Logger:   logger,
		Registry: language.NewRegistry(),
		Metrics:  observability.NewMetrics(),
	}

	if err := deps.initModel(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize model: %w", err)
	}

	deps.initTranslation(cfg)
	deps.initOCR(cfg)
	deps.initSpeech(cfg)
	deps.initHandlers(cfg)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initModel loads the pretrained translation model. This blocks for as long
// as the checkpoint takes to load.
func (d *Dependencies) initModel(cfg *config.Config) error {
	host, err := model.Load(cfg.Model, d.Registry.Target(), d.Logger)
	if err != nil {
		return err
	}
	d.Host = host

	d.Logger.Info("translation model loaded",
		zap.String("model", cfg.Model.Name),
		zap.String("device", cfg.Model.Device))
	return nil
}

// initTranslation wires the translation service and its result cache
func (d *Dependencies) initTranslation(cfg *config.Config) {
	cache := translation.NewResultCache(cfg.Translation.CacheSize, cfg.Translation.CacheTTL)
	d.Translation = translation.NewService(d.Registry, d.Host, cache, d.Metrics, d.Logger)

	d.Logger.Info("translation service initialized",
		zap.Int("cache_size", cfg.Translation.CacheSize),
		zap.Duration("cache_ttl", cfg.Translation.CacheTTL))
}

// initOCR wires the OCR pipeline when enabled. A disabled pipeline leaves
// the service nil and the handler answers 503.
func (d *Dependencies) initOCR(cfg *config.Config) {
	if !cfg.OCR.Enabled {
		d.Logger.Warn("ocr disabled, image endpoints will answer not ready")
		return
	}
	d.OCR = ocr.NewService(iocr.NewClient(), d.Translation, detector.New(), d.Registry, d.Logger)
	d.Logger.Info("ocr service initialized")
}

// initSpeech wires the transcription pipeline when configured
func (d *Dependencies) initSpeech(cfg *config.Config) {
	var transcriber speech.Transcriber
	if cfg.Speech.Enabled {
		transcriber = stt.NewClient(cfg.Speech)
		d.Logger.Info("speech service initialized",
			zap.String("backend", cfg.Speech.BaseURL),
			zap.String("model", cfg.Speech.Model))
	} else {
		d.Logger.Warn("speech disabled, audio endpoints will answer not ready")
	}
	d.Speech = speech.NewService(transcriber, d.Translation, detector.New(), d.Registry, d.Logger)
}

// initHandlers wires the HTTP layer
func (d *Dependencies) initHandlers(cfg *config.Config) {
	d.TranslateHandler = handlers.NewTranslateHandler(d.Translation, d.Logger)
	if d.OCR != nil {
		d.OCRHandler = handlers.NewOCRHandler(d.OCR, d.Logger)
	} else {
		d.OCRHandler = handlers.NewOCRHandler(nil, d.Logger)
	}
	d.SpeechHandler = handlers.NewSpeechHandler(d.Speech, d.Logger)
	d.HealthHandler = handlers.NewHealthHandler(
		d.Translation,
		d.Metrics,
		cfg.Model.Name,
		cfg.Environment,
		d.Registry.Codes(),
		cfg.OCR.Enabled,
		cfg.Speech.Enabled,
		d.Logger,
	)
	d.LanguageHandler = handlers.NewLanguageHandler(d.Registry, d.Logger)
	d.LoggingMiddleware = middleware.NewLoggingMiddleware(d.Logger)
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	if d.Host != nil {
		d.Host.Close()
		d.Logger.Info("model host closed")
	}

	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	return nil
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/bhashabridge/bhasha-bridge/backend/services/translation"
	"github.com/bhashabridge/bhasha-bridge/backend/utils"
)

// TranslationRequest represents the POST /translate-text request body
type TranslationRequest struct {
	Text       string `json:"text" validate:"required"`
	SourceLang string `json:"source_lang" validate:"required"`
}

// TranslationResponse represents the POST /translate-text response body
type TranslationResponse struct {
	TranslatedText string `json:"translated_text"`
}

// TranslationService defines the interface for translation operations
type TranslationService interface {
	Translate(ctx context.Context, text, sourceLang string) (*translation.Result, error)
}

// TranslateHandler handles translation HTTP requests
type TranslateHandler struct {
	service TranslationService
	logger  *zap.Logger
}

// NewTranslateHandler creates a new TranslateHandler
func NewTranslateHandler(service TranslationService, logger *zap.Logger) *TranslateHandler {
	return &TranslateHandler{
		service: service,
		logger:  logger,
	}
}

// HandleTranslateText handles POST /translate-text
func (h *TranslateHandler) HandleTranslateText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to parse translation request", zap.Error(err))
		_ = utils.WriteUnprocessableEntity(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	result, err := h.service.Translate(ctx, req.Text, req.SourceLang)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("translation served",
		zap.String("source_lang", result.Source.Code),
		zap.Bool("cached", result.Cached))

	if err := utils.WriteOK(w, TranslationResponse{TranslatedText: result.Text}); err != nil {
		h.logger.Error("failed to write translation response", zap.Error(err))
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/bhashabridge/bhasha-bridge/backend/services"
	"github.com/bhashabridge/bhasha-bridge/backend/services/ocr"
	"github.com/bhashabridge/bhasha-bridge/backend/utils"
)

// OCRTranslateRequest represents the POST /ocr-translate request body.
// Translate defaults to true when omitted.
type OCRTranslateRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
	SourceLang  string `json:"source_lang,omitempty"`
	Translate   *bool  `json:"translate,omitempty"`
}

// OCRTranslateResponse represents the POST /ocr-translate response body
type OCRTranslateResponse struct {
	DetectedScript   string `json:"detected_script"`
	DetectedLanguage string `json:"detected_language"`
	ExtractedText    string `json:"extracted_text"`
	TranslatedText   string `json:"translated_text,omitempty"`
}

// OCRService defines the interface for OCR operations
type OCRService interface {
	Extract(ctx context.Context, req ocr.Request) (*ocr.Result, error)
}

// OCRHandler handles image-to-text HTTP requests
type OCRHandler struct {
	service OCRService // nil when the OCR surface is disabled
	logger  *zap.Logger
}

// NewOCRHandler creates a new OCRHandler
func NewOCRHandler(service OCRService, logger *zap.Logger) *OCRHandler {
	return &OCRHandler{
		service: service,
		logger:  logger,
	}
}

// HandleOCRTranslate handles POST /ocr-translate
func (h *OCRHandler) HandleOCRTranslate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.service == nil {
		HandleServiceError(w, services.ErrOCRNotEnabled, h.logger)
		return
	}

	var req OCRTranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to parse ocr request", zap.Error(err))
		_ = utils.WriteUnprocessableEntity(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	translate := true
	if req.Translate != nil {
		translate = *req.Translate
	}

	result, err := h.service.Extract(ctx, ocr.Request{
		ImageBase64: req.ImageBase64,
		SourceLang:  req.SourceLang,
		Translate:   translate,
	})
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("ocr served",
		zap.String("script", result.Script),
		zap.String("detected_language", result.Language),
		zap.Bool("translated", result.Translated))

	if err := utils.WriteOK(w, OCRTranslateResponse{
		DetectedScript:   result.Script,
		DetectedLanguage: result.Language,
		ExtractedText:    result.Text,
		TranslatedText:   result.TranslatedText,
	}); err != nil {
		h.logger.Error("failed to write ocr response", zap.Error(err))
	}
}

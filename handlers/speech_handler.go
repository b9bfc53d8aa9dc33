package handlers

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/bhashabridge/bhasha-bridge/backend/services"
	"github.com/bhashabridge/bhasha-bridge/backend/services/speech"
	"github.com/bhashabridge/bhasha-bridge/backend/utils"
)

// maxAudioBytes caps the multipart memory buffer for audio uploads.
const maxAudioBytes = 25 << 20

// TranscriptionResponse represents the speech endpoint response body
type TranscriptionResponse struct {
	Text           string `json:"text"`
	Language       string `json:"language"`
	TranslatedText string `json:"translated_text,omitempty"`
}

// SpeechService defines the interface for transcription operations
type SpeechService interface {
	Enabled() bool
	Transcribe(ctx context.Context, filename string, audio io.Reader, translate bool) (*speech.Result, error)
}

// SpeechHandler handles audio HTTP requests
type SpeechHandler struct {
	service SpeechService
	logger  *zap.Logger
}

// NewSpeechHandler creates a new SpeechHandler
func NewSpeechHandler(service SpeechService, logger *zap.Logger) *SpeechHandler {
	return &SpeechHandler{
		service: service,
		logger:  logger,
	}
}

// HandleSpeechToText handles POST /speech-to-text
func (h *SpeechHandler) HandleSpeechToText(w http.ResponseWriter, r *http.Request) {
	h.transcribe(w, r, false)
}

// HandleSpeechTranslate handles POST /speech-translate
func (h *SpeechHandler) HandleSpeechTranslate(w http.ResponseWriter, r *http.Request) {
	h.transcribe(w, r, true)
}

func (h *SpeechHandler) transcribe(w http.ResponseWriter, r *http.Request, translate bool) {
	ctx := r.Context()

	if h.service == nil || !h.service.Enabled() {
		HandleServiceError(w, services.ErrSpeechNotLoaded, h.logger)
		return
	}

	if err := r.ParseMultipartForm(maxAudioBytes); err != nil {
		h.logger.Warn("failed to parse multipart form", zap.Error(err))
		HandleServiceError(w, services.ErrMissingAudioFile, h.logger)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		HandleServiceError(w, services.ErrMissingAudioFile, h.logger)
		return
	}
	defer file.Close()

	result, err := h.service.Transcribe(ctx, header.Filename, file, translate)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("transcription served",
		zap.String("language", result.Language),
		zap.Bool("translated", result.Translated))

	if err := utils.WriteOK(w, TranscriptionResponse{
		Text:           result.Text,
		Language:       result.Language,
		TranslatedText: result.TranslatedText,
	}); err != nil {
		h.logger.Error("failed to write transcription response", zap.Error(err))
	}
}

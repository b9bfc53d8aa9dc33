package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/bhashabridge/bhasha-bridge/backend/internal/language"
	"github.com/bhashabridge/bhasha-bridge/backend/utils"
)

// LanguagesResponse represents the GET /languages response body
type LanguagesResponse struct {
	Languages []language.Language `json:"languages"`
	Target    string              `json:"target"`
}

// LanguageHandler serves the supported-language catalog
type LanguageHandler struct {
	registry *language.Registry
	logger   *zap.Logger
}

// NewLanguageHandler creates a new LanguageHandler
func NewLanguageHandler(registry *language.Registry, logger *zap.Logger) *LanguageHandler {
	return &LanguageHandler{
		registry: registry,
		logger:   logger,
	}
}

// HandleListLanguages handles GET /languages
func (h *LanguageHandler) HandleListLanguages(w http.ResponseWriter, r *http.Request) {
	if err := utils.WriteOK(w, LanguagesResponse{
		Languages: h.registry.List(),
		Target:    h.registry.Target().Code,
	}); err != nil {
		h.logger.Error("failed to write languages response", zap.Error(err))
	}
}

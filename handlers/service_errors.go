package handlers

import (
	"errors"
	"net/http"

	"github.com/bhashabridge/bhasha-bridge/backend/services"
	"github.com/bhashabridge/bhasha-bridge/backend/utils"
	"go.uber.org/zap"
)

// HandleServiceError maps domain errors to HTTP responses:
// validation 422, unsupported_language and bad_input 400, not_ready 503,
// not_found 404, model_inference and everything else 500.
func HandleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if err == nil {
		return
	}

	details := services.GetErrorDetails(err)
	message := domainMessage(err)

	switch {
	case services.IsValidationError(err):
		if err := utils.WriteUnprocessableEntity(w, message, details); err != nil {
			logger.Error("failed to write validation error response", zap.Error(err))
		}

	case services.IsUnsupportedLanguageError(err):
		if err := utils.WriteBadRequest(w, string(services.ErrorTypeUnsupportedLanguage), message, details); err != nil {
			logger.Error("failed to write unsupported language response", zap.Error(err))
		}

	case services.IsBadInputError(err):
		if err := utils.WriteBadRequest(w, string(services.ErrorTypeBadInput), message, details); err != nil {
			logger.Error("failed to write bad input response", zap.Error(err))
		}

	case services.IsNotReadyError(err):
		if err := utils.WriteServiceUnavailable(w, message); err != nil {
			logger.Error("failed to write not ready response", zap.Error(err))
		}

	case services.IsNotFoundError(err):
		if err := utils.WriteNotFound(w, message); err != nil {
			logger.Error("failed to write not found response", zap.Error(err))
		}

	case services.IsModelInferenceError(err):
		// The engine failure itself goes to the log, not the client.
		logger.Error("model inference failed", zap.Error(err))
		if err := utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse{
			Error:   string(services.ErrorTypeModelInference),
			Message: message,
		}); err != nil {
			logger.Error("failed to write inference error response", zap.Error(err))
		}

	case services.IsInternalError(err):
		logger.Error("internal server error", zap.Error(err))
		if err := utils.WriteInternalServerError(w, "An internal error occurred"); err != nil {
			logger.Error("failed to write internal error response", zap.Error(err))
		}

	default:
		logger.Error("unhandled error type",
			zap.Error(err),
			zap.String("error_type", string(services.GetErrorType(err))))
		if err := utils.WriteInternalServerError(w, "An unexpected error occurred"); err != nil {
			logger.Error("failed to write internal error response", zap.Error(err))
		}
	}
}

// HandleValidationError handles validation errors from request parsing
func HandleValidationError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if utils.IsValidationError(err) {
		fields := utils.GetValidationFields(err)
		details := make(map[string]interface{}, len(fields))
		for k, v := range fields {
			details[k] = v
		}
		if err := utils.WriteUnprocessableEntity(w, "Validation failed", details); err != nil {
			logger.Error("failed to write validation error response", zap.Error(err))
		}
		return
	}

	if err := utils.WriteUnprocessableEntity(w, err.Error(), nil); err != nil {
		logger.Error("failed to write validation error response", zap.Error(err))
	}
}

// domainMessage returns the domain error's message without the wrapped
// cause; non-domain errors fall back to Error().
func domainMessage(err error) string {
	var domainErr *services.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}

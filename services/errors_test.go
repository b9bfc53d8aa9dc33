package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDomainError(t *testing.T) {
	baseErr := errors.New("base error")
	domainErr := NewDomainError(ErrorTypeModelInference, "generation failed", baseErr)

	assert.Equal(t, ErrorTypeModelInference, domainErr.Type)
	assert.Equal(t, "generation failed", domainErr.Message)
	assert.Equal(t, baseErr, domainErr.Err)
	assert.NotNil(t, domainErr.Details)
}

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *DomainError
		wantMsg string
	}{
		{
			name: "error with wrapped error",
			err: &DomainError{
				Type:    ErrorTypeModelInference,
				Message: "generation failed",
				Err:     errors.New("engine error"),
			},
			wantMsg: "model_inference: generation failed (engine error)",
		},
		{
			name: "error without wrapped error",
			err: &DomainError{
				Type:    ErrorTypeValidation,
				Message: "text cannot be empty",
				Err:     nil,
			},
			wantMsg: "validation: text cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	baseErr := errors.New("base error")
	domainErr := NewDomainError(ErrorTypeInternal, "internal error", baseErr)

	unwrapped := errors.Unwrap(domainErr)
	assert.Equal(t, baseErr, unwrapped)
}

func TestDomainError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "same error type",
			err:    NewDomainError(ErrorTypeUnsupportedLanguage, "unknown code", nil),
			target: ErrUnsupportedLanguage,
			want:   true,
		},
		{
			name:   "different error type",
			err:    NewDomainError(ErrorTypeValidation, "validation", nil),
			target: ErrUnsupportedLanguage,
			want:   false,
		},
		{
			name:   "not a domain error",
			err:    NewDomainError(ErrorTypeValidation, "validation", nil),
			target: errors.New("regular error"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestDomainError_WithDetail(t *testing.T) {
	err := NewDomainError(ErrorTypeValidation, "validation error", nil)

	err.WithDetail("field", "text").WithDetail("reason", "empty")

	assert.Equal(t, "text", err.Details["field"])
	assert.Equal(t, "empty", err.Details["reason"])
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"empty text", ErrEmptyText, true},
		{"invalid base64", ErrInvalidBase64, true},
		{"wrapped validation", fmt.Errorf("wrapped: %w", ErrNoTextDetected), true},
		{"unsupported language", ErrUnsupportedLanguage, false},
		{"regular error", errors.New("regular"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidationError(tt.err))
		})
	}
}

func TestIsUnsupportedLanguageError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unsupported language", ErrUnsupportedLanguage, true},
		{"wrapped", fmt.Errorf("wrapped: %w", ErrUnsupportedLanguage), true},
		{"validation error", ErrEmptyText, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnsupportedLanguageError(tt.err))
		})
	}
}

func TestIsBadInputError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"undecodable image", ErrUndecodableImage, true},
		{"unusable audio", ErrUnusableAudio, true},
		{"validation error", ErrInvalidBase64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBadInputError(tt.err))
		})
	}
}

func TestIsModelInferenceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"inference failed", ErrInferenceFailed, true},
		{"empty generation", ErrEmptyGeneration, true},
		{"not ready", ErrModelNotLoaded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsModelInferenceError(tt.err))
		})
	}
}

func TestIsNotReadyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"model not loaded", ErrModelNotLoaded, true},
		{"speech not configured", ErrSpeechNotLoaded, true},
		{"OCR not enabled", ErrOCRNotEnabled, true},
		{"inference error", ErrInferenceFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotReadyError(tt.err))
		})
	}
}

func TestIsInternalError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"internal error", ErrInternal, true},
		{"inference error", ErrInferenceFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInternalError(tt.err))
		})
	}
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"validation", ErrEmptyText, ErrorTypeValidation},
		{"unsupported language", ErrUnsupportedLanguage, ErrorTypeUnsupportedLanguage},
		{"model inference", ErrInferenceFailed, ErrorTypeModelInference},
		{"not ready", ErrModelNotLoaded, ErrorTypeNotReady},
		{"regular error", errors.New("regular"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorType(tt.err))
		})
	}
}

func TestGetErrorDetails(t *testing.T) {
	err := NewDomainError(ErrorTypeValidation, "validation error", nil)
	err.WithDetail("field", "source_lang").WithDetail("reason", "missing")

	details := GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "source_lang", details["field"])
	assert.Equal(t, "missing", details["reason"])

	regularErr := errors.New("regular error")
	assert.Nil(t, GetErrorDetails(regularErr))
}

func TestWrapError(t *testing.T) {
	baseErr := errors.New("base error")
	wrapped := WrapError(ErrorTypeInternal, "wrapped message", baseErr)

	var domainErr *DomainError
	require.True(t, errors.As(wrapped, &domainErr))
	assert.Equal(t, ErrorTypeInternal, domainErr.Type)
	assert.Equal(t, "wrapped message", domainErr.Message)
	assert.Equal(t, baseErr, errors.Unwrap(wrapped))
}

func TestWrapInternal(t *testing.T) {
	baseErr := errors.New("temp file write failed")
	wrapped := WrapInternal("failed to store upload", baseErr)

	assert.True(t, IsInternalError(wrapped))
	assert.Equal(t, baseErr, errors.Unwrap(wrapped))
}

func TestWrapInference(t *testing.T) {
	baseErr := errors.New("generation aborted")
	wrapped := WrapInference("model invocation failed", baseErr)

	assert.True(t, IsModelInferenceError(wrapped))
	assert.Equal(t, baseErr, errors.Unwrap(wrapped))
}

func TestAllErrorVariablesAreDefined(t *testing.T) {
	// Test that all predefined error variables are properly initialized
	errorVars := []error{
		// Validation
		ErrEmptyText,
		ErrMissingLanguage,
		ErrInvalidBase64,
		ErrNoTextDetected,
		ErrEmptyTranscript,
		ErrMissingAudioFile,

		// Unsupported Language
		ErrUnsupportedLanguage,

		// Bad Input
		ErrUndecodableImage,
		ErrUnusableAudio,

		// Model Inference
		ErrInferenceFailed,
		ErrEmptyGeneration,

		// Not Ready
		ErrModelNotLoaded,
		ErrOCRNotEnabled,
		ErrSpeechNotLoaded,

		// Internal
		ErrInternal,
	}

	for _, err := range errorVars {
		assert.NotNil(t, err, "error variable should not be nil")
		assert.NotEmpty(t, err.Error(), "error should have a message")
	}
}

func TestErrorTypeCheckersCoverage(t *testing.T) {
	// Ensure all error types have corresponding checker functions
	typeCheckers := map[ErrorType]func(error) bool{
		ErrorTypeValidation:          IsValidationError,
		ErrorTypeUnsupportedLanguage: IsUnsupportedLanguageError,
		ErrorTypeBadInput:            IsBadInputError,
		ErrorTypeModelInference:      IsModelInferenceError,
		ErrorTypeNotReady:            IsNotReadyError,
		ErrorTypeNotFound:            IsNotFoundError,
		ErrorTypeInternal:            IsInternalError,
	}

	for errType, checker := range typeCheckers {
		t.Run(string(errType), func(t *testing.T) {
			err := NewDomainError(errType, "test error", nil)
			assert.True(t, checker(err), "checker should return true for %s", errType)
		})
	}
}

package services

import (
	"errors"
	"fmt"
)

// ErrorType represents the type/category of error
type ErrorType string

const (
	ErrorTypeValidation          ErrorType = "validation"
	ErrorTypeUnsupportedLanguage ErrorType = "unsupported_language"
	ErrorTypeBadInput            ErrorType = "bad_input"
	ErrorTypeModelInference      ErrorType = "model_inference"
	ErrorTypeNotReady            ErrorType = "not_ready"
	ErrorTypeNotFound            ErrorType = "not_found"
	ErrorTypeInternal            ErrorType = "internal"
)

// DomainError represents a structured error with additional context
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Details map[string]interface{}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// WithDetail adds a detail to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewDomainError creates a new domain error
func NewDomainError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Details: make(map[string]interface{}),
	}
}

// Domain error variables

var (
	// Validation Errors
	ErrEmptyText        = NewDomainError(ErrorTypeValidation, "text cannot be empty", nil)
	ErrMissingLanguage  = NewDomainError(ErrorTypeValidation, "source_lang is required", nil)
	ErrInvalidBase64    = NewDomainError(ErrorTypeValidation, "image_base64 is not valid base64 data", nil)
	ErrNoTextDetected   = NewDomainError(ErrorTypeValidation, "no text detected in image", nil)
	ErrEmptyTranscript  = NewDomainError(ErrorTypeValidation, "no speech detected in audio", nil)
	ErrMissingAudioFile = NewDomainError(ErrorTypeValidation, "audio file is required", nil)

	// Unsupported Language Errors
	ErrUnsupportedLanguage = NewDomainError(ErrorTypeUnsupportedLanguage, "source language is not supported", nil)

	// Bad Input Errors
	ErrUndecodableImage = NewDomainError(ErrorTypeBadInput, "image data could not be decoded", nil)
	ErrUnusableAudio    = NewDomainError(ErrorTypeBadInput, "audio file could not be read", nil)

	// Model Inference Errors
	ErrInferenceFailed = NewDomainError(ErrorTypeModelInference, "translation model failed to generate output", nil)
	ErrEmptyGeneration = NewDomainError(ErrorTypeModelInference, "translation model returned empty output", nil)

	// Not Ready Errors
	ErrModelNotLoaded  = NewDomainError(ErrorTypeNotReady, "translation model is not loaded", nil)
	ErrOCRNotEnabled   = NewDomainError(ErrorTypeNotReady, "OCR is not enabled", nil)
	ErrSpeechNotLoaded = NewDomainError(ErrorTypeNotReady, "speech transcription backend is not configured", nil)

	// Internal Errors
	ErrInternal = NewDomainError(ErrorTypeInternal, "internal server error", nil)
)

// Error type checking helper functions

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeValidation
	}
	return false
}

// IsUnsupportedLanguageError checks if an error is an unsupported language error
func IsUnsupportedLanguageError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeUnsupportedLanguage
	}
	return false
}

// IsBadInputError checks if an error is a bad input error
func IsBadInputError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeBadInput
	}
	return false
}

// IsModelInferenceError checks if an error is a model inference error
func IsModelInferenceError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeModelInference
	}
	return false
}

// IsNotReadyError checks if an error is a not ready error
func IsNotReadyError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeNotReady
	}
	return false
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeNotFound
	}
	return false
}

// IsInternalError checks if an error is an internal error
func IsInternalError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeInternal
	}
	return false
}

// GetErrorType returns the ErrorType of a domain error, or empty string if not a domain error
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ""
}

// GetErrorDetails returns the details map of a domain error, or nil if not a domain error
func GetErrorDetails(err error) map[string]interface{} {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Details
	}
	return nil
}

// WrapError wraps an error with additional context
func WrapError(errType ErrorType, message string, err error) error {
	return NewDomainError(errType, message, err)
}

// WrapInternal wraps an error as an internal error
func WrapInternal(message string, err error) error {
	return NewDomainError(ErrorTypeInternal, message, err)
}

// WrapInference wraps an error as a model inference error
func WrapInference(message string, err error) error {
	return NewDomainError(ErrorTypeModelInference, message, err)
}

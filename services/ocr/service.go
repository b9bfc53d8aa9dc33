// Package ocr implements the image-to-text pipeline behind the
// /ocr-translate endpoint: base64 decoding, preprocessing, Tesseract
// recognition with language and page-segmentation fallback, language
// detection, and optional translation of the extracted text.
package ocr

import (
	"context"
	"encoding/base64"
	"strings"

	"go.uber.org/zap"

	"github.com/bhashabridge/bhasha-bridge/backend/internal/detector"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/language"
	iocr "github.com/bhashabridge/bhasha-bridge/backend/internal/ocr"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/observability"
	"github.com/bhashabridge/bhasha-bridge/backend/services"
	"github.com/bhashabridge/bhasha-bridge/backend/services/translation"
)

// Recognizer is the Tesseract seam.
type Recognizer interface {
	Recognize(ctx context.Context, png []byte, lang string, psm iocr.PageSegMode) (string, error)
}

// Translator translates extracted text. Satisfied by *translation.Service.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang string) (*translation.Result, error)
}

// Request carries one OCR call.
type Request struct {
	ImageBase64 string
	SourceLang  string // optional hint; tried first when set
	Translate   bool
}

// Result is the outcome of one OCR call.
type Result struct {
	Script         string
	Language       string // detected ISO code; empty when undetermined
	Text           string
	TranslatedText string // empty when translation was skipped
	Translated     bool
}

// Service runs the OCR pipeline.
type Service struct {
	recognizer Recognizer
	translator Translator
	detector   *detector.Detector
	registry   *language.Registry
	logger     observability.Logger

	// prepare is the preprocessing seam, swapped out in tests.
	prepare func([]byte) ([]byte, error)
}

// NewService creates an OCR service. The logger is made context-aware so
// the per-attempt logs carry the request ID.
func NewService(recognizer Recognizer, translator Translator, det *detector.Detector, registry *language.Registry, logger *zap.Logger) *Service {
	return &Service{
		recognizer: recognizer,
		translator: translator,
		detector:   det,
		registry:   registry,
		logger:     observability.NewContextLogger(logger),
		prepare:    iocr.Prepare,
	}
}

// Extract decodes and preprocesses the image, recognizes text, detects
// its language, and translates it when requested and supported.
func (s *Service) Extract(ctx context.Context, req Request) (*Result, error) {
	raw, err := decodeBase64(req.ImageBase64)
	if err != nil {
		return nil, services.ErrInvalidBase64
	}

	png, err := s.prepare(raw)
	if err != nil {
		return nil, services.NewDomainError(services.ErrorTypeBadInput,
			"image data could not be decoded", err)
	}

	candidates, err := s.candidateLanguages(req.SourceLang)
	if err != nil {
		return nil, err
	}

	text, recognized, err := s.recognize(ctx, png, candidates)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, services.ErrNoTextDetected
	}

	result := &Result{Text: text}
	s.classify(text, recognized, result)

	if req.Translate && result.Language != "" {
		if err := s.translate(ctx, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// candidateLanguages orders the recognition attempts: the hint first when
// given, then the remaining supported languages in registry order
// (Devanagari, Sinhala, Latin).
func (s *Service) candidateLanguages(hint string) ([]language.Language, error) {
	ordered := s.registry.List()
	if strings.TrimSpace(hint) == "" {
		return ordered, nil
	}

	hinted, ok := s.registry.Resolve(hint)
	if !ok {
		return nil, services.NewDomainError(services.ErrorTypeUnsupportedLanguage,
			"source language is not supported", nil).
			WithDetail("source_lang", hint).
			WithDetail("supported", s.registry.Codes())
	}

	out := []language.Language{hinted}
	for _, l := range ordered {
		if l.Code != hinted.Code {
			out = append(out, l)
		}
	}
	return out, nil
}

// recognize ladders through candidate languages and page segmentation
// modes until some text appears. Individual Tesseract failures (a missing
// traineddata file, typically) skip to the next candidate.
func (s *Service) recognize(ctx context.Context, png []byte, candidates []language.Language) (string, language.Language, error) {
	var lastErr error
	for _, lang := range candidates {
		for _, psm := range iocr.PSMLadder {
			if err := ctx.Err(); err != nil {
				return "", language.Language{}, services.WrapInternal("recognition aborted", err)
			}

			text, err := s.recognizer.Recognize(ctx, png, lang.Tesseract, psm)
			if err != nil {
				lastErr = err
				s.logger.Debug(ctx, "recognition attempt failed",
					zap.String("tesseract_lang", lang.Tesseract),
					zap.Int("psm", int(psm)),
					zap.Error(err))
				break // next language; the client is unusable for this one
			}
			if text != "" {
				return text, lang, nil
			}
		}
	}

	if lastErr != nil {
		s.logger.Warn(ctx, "all recognition attempts failed", zap.Error(lastErr))
	}
	return "", language.Language{}, nil
}

// classify fills the detected script and language. Devanagari and Sinhala
// identify their language by script alone; Latin text goes through the
// statistical detector to separate English from other Latin-script
// languages the service cannot translate.
func (s *Service) classify(text string, recognized language.Language, result *Result) {
	script := language.ScriptOf(text)
	if script == "" {
		script = recognized.Script
	}
	result.Script = script

	switch script {
	case "Devanagari":
		result.Language = "ne"
	case "Sinhala":
		result.Language = "si"
	case "Latin":
		if s.detector == nil || s.detector.IsEnglish(text) {
			result.Language = "en"
			return
		}
		if iso, ok := s.detector.DetectISO(text); ok {
			result.Language = iso
		}
	}
}

// translate fills TranslatedText. An extracted language outside the
// supported set skips translation instead of failing the request.
func (s *Service) translate(ctx context.Context, result *Result) error {
	if s.translator == nil {
		return nil
	}
	if _, supported := s.registry.Resolve(result.Language); !supported {
		s.logger.Debug(ctx, "skipping translation of unsupported detected language",
			zap.String("detected", result.Language))
		return nil
	}

	translated, err := s.translator.Translate(ctx, result.Text, result.Language)
	if err != nil {
		if services.IsUnsupportedLanguageError(err) {
			return nil
		}
		return err
	}

	result.TranslatedText = translated.Text
	result.Translated = true
	return nil
}

// decodeBase64 accepts raw base64 as well as data URLs
// (data:image/png;base64,...), with or without padding.
func decodeBase64(data string) ([]byte, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return nil, base64.CorruptInputError(0)
	}

	if strings.HasPrefix(trimmed, "data:") {
		if idx := strings.Index(trimmed, ","); idx >= 0 {
			trimmed = trimmed[idx+1:]
		}
	}

	if decoded, err := base64.StdEncoding.DecodeString(trimmed); err == nil {
		return decoded, nil
	}
	return base64.RawStdEncoding.DecodeString(trimmed)
}

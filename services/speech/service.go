// Package speech implements the audio endpoints: the uploaded file is
// staged in a temp file, transcribed through the configured backend, and
// the transcript optionally translated. The surface stays disabled until
// a transcription backend is configured.
package speech

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bhashabridge/bhasha-bridge/backend/internal/detector"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/language"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/stt"
	"github.com/bhashabridge/bhasha-bridge/backend/services"
	"github.com/bhashabridge/bhasha-bridge/backend/services/translation"
)

// Transcriber is the transcription backend seam. Satisfied by *stt.Client.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (stt.Transcript, error)
}

// Translator translates transcripts. Satisfied by *translation.Service.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang string) (*translation.Result, error)
}

// Result is the outcome of one transcription call.
type Result struct {
	Text           string
	Language       string
	TranslatedText string
	Translated     bool
}

// Service runs the speech pipeline.
type Service struct {
	transcriber Transcriber // nil when the surface is disabled
	translator  Translator
	detector    *detector.Detector
	registry    *language.Registry
	logger      *zap.Logger
	tempDir     string
}

// NewService creates a speech service. A nil transcriber disables the
// surface; calls then fail with a not-ready error.
func NewService(transcriber Transcriber, translator Translator, det *detector.Detector, registry *language.Registry, logger *zap.Logger) *Service {
	return &Service{
		transcriber: transcriber,
		translator:  translator,
		detector:    det,
		registry:    registry,
		logger:      logger,
		tempDir:     os.TempDir(),
	}
}

// Enabled reports whether a transcription backend is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.transcriber != nil
}

// Transcribe stages the upload, transcribes it, and translates the
// transcript when translate is set and the spoken language is supported.
func (s *Service) Transcribe(ctx context.Context, filename string, audio io.Reader, translate bool) (*Result, error) {
	if !s.Enabled() {
		return nil, services.ErrSpeechNotLoaded
	}

	path, err := s.stage(filename, audio)
	if err != nil {
		return nil, services.NewDomainError(services.ErrorTypeBadInput,
			"audio file could not be read", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			s.logger.Warn("failed to remove staged audio", zap.String("path", path), zap.Error(err))
		}
	}()

	transcript, err := s.transcriber.Transcribe(ctx, path)
	if err != nil {
		return nil, services.NewDomainError(services.ErrorTypeModelInference,
			"speech transcription failed", err)
	}
	if transcript.Text == "" {
		return nil, services.ErrEmptyTranscript
	}

	result := &Result{
		Text:     transcript.Text,
		Language: s.resolveLanguage(transcript),
	}

	if translate {
		if err := s.translate(ctx, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// stage copies the upload into a uniquely named temp file so the backend
// client can read it by path.
func (s *Service) stage(filename string, audio io.Reader) (string, error) {
	if audio == nil {
		return "", os.ErrInvalid
	}

	path := filepath.Join(s.tempDir, uuid.NewString()+sanitizeExt(filename))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, audio); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

// resolveLanguage uses the backend's reported language when present, and
// falls back to script/statistical detection on the transcript text.
func (s *Service) resolveLanguage(transcript stt.Transcript) string {
	if transcript.Language != "" {
		return transcript.Language
	}

	switch language.ScriptOf(transcript.Text) {
	case "Devanagari":
		return "ne"
	case "Sinhala":
		return "si"
	case "Latin":
		if s.detector != nil {
			if iso, ok := s.detector.DetectISO(transcript.Text); ok {
				return iso
			}
		}
		return "en"
	}
	return ""
}

// translate fills TranslatedText. An unsupported spoken language returns
// the transcript alone instead of failing.
func (s *Service) translate(ctx context.Context, result *Result) error {
	if s.translator == nil {
		return nil
	}
	if _, supported := s.registry.Resolve(result.Language); !supported {
		s.logger.Debug("skipping translation of unsupported spoken language",
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

// sanitizeExt keeps a short, safe file extension from the upload name so
// the backend can sniff the container format.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > 8 {
		return ".wav"
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ".wav"
		}
	}
	return ext
}

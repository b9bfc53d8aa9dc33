// Package stt transcribes audio through an OpenAI-compatible audio
// endpoint. In deployment that endpoint is a local Whisper server; the
// client only needs the /audio/transcriptions route.
package stt

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bhashabridge/bhasha-bridge/backend/config"
)

// Transcript is the result of one transcription call.
type Transcript struct {
	Text     string
	Language string // ISO 639-1 when the backend reports one
}

// Client calls the transcription backend.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient builds a transcription client from the speech configuration.
func NewClient(cfg config.SpeechConfig) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// Transcribe sends the audio file at path to the backend and returns the
// transcript with the language the backend detected.
func (c *Client) Transcribe(ctx context.Context, path string) (Transcript, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.model,
		FilePath: path,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return Transcript{}, fmt.Errorf("transcribe: %w", err)
	}

	return Transcript{
		Text:     strings.TrimSpace(resp.Text),
		Language: normalizeLanguage(resp.Language),
	}, nil
}

// normalizeLanguage maps the language names Whisper backends report onto
// ISO 639-1 codes. Unknown values pass through lower-cased; the caller
// resolves them against the registry.
func normalizeLanguage(lang string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	switch l {
	case "english":
		return "en"
	case "nepali":
		return "ne"
	case "sinhala", "sinhalese":
		return "si"
	}
	return l
}

package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// PageSegMode selects how Tesseract segments the page.
type PageSegMode = gosseract.PageSegMode

// PSMLadder is the page-segmentation fallback order: a uniform text block
// first, then full automatic layout, then a single line, then sparse text.
// Recognition stops at the first mode that yields any text.
var PSMLadder = []PageSegMode{
	gosseract.PSM_SINGLE_BLOCK,
	gosseract.PSM_AUTO,
	gosseract.PSM_SINGLE_LINE,
	gosseract.PSM_SPARSE_TEXT,
}

// Client runs Tesseract over prepared images.
type Client struct{}

// NewClient creates a Tesseract client factory. The underlying gosseract
// client is created per Recognize call; sharing one across goroutines
// corrupts its state.
func NewClient() *Client {
	return &Client{}
}

// Recognize runs Tesseract on a prepared PNG with the given traineddata
// language and page segmentation mode, returning the trimmed text.
func (c *Client) Recognize(ctx context.Context, png []byte, lang string, psm PageSegMode) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(lang); err != nil {
		return "", fmt.Errorf("set language %q: %w", lang, err)
	}
	if err := client.SetPageSegMode(psm); err != nil {
		return "", fmt.Errorf("set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(png); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Package ocr extracts text from images. Preprocessing normalizes the
// input for Tesseract; recognition runs through a per-call gosseract
// client because the binding is not goroutine-safe.
package ocr

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// minDimension is the smallest short-side size Tesseract handles well.
// Smaller images are upscaled before recognition.
const minDimension = 300

// Prepare decodes raw image bytes and normalizes them for recognition:
// Lanczos upscale when the short side is under 300px, grayscale, contrast
// boost, sharpen. The result is re-encoded as PNG.
func Prepare(raw []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	img = upscale(img)
	img = imaging.Grayscale(img)
	img = imaging.AdjustContrast(img, 20)
	img = imaging.Sharpen(img, 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// upscale resizes img so its short side is at least minDimension,
// preserving the aspect ratio. Larger images pass through untouched.
func upscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return img
	}

	short := w
	if h < short {
		short = h
	}
	if short >= minDimension {
		return img
	}

	scale := float64(minDimension) / float64(short)
	newW := int(float64(w)*scale + 0.5)
	return imaging.Resize(img, newW, 0, imaging.Lanczos)
}

// Package detector wraps lingua-go for natural-language detection of
// Latin-script text. Nepali and Sinhala are identified by script alone
// (see language.ScriptOf); lingua decides whether Latin-script text is
// actually English or some other language the service cannot translate.
package detector

import (
	lingua "github.com/pemistahl/lingua-go"
)

// Detector identifies the language of a piece of text.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector over English and the Latin-script languages it is
// most often confused with in OCR output.
func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.French,
			lingua.German,
			lingua.Spanish,
			lingua.Portuguese,
			lingua.Italian,
			lingua.Dutch,
		).
		Build()

	return &Detector{detector: detector}
}

// Detect returns the most likely language of text.
func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the ISO 639-1 code of the most likely language,
// lower-cased to match the registry's codes.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return toLowerASCII(lang.IsoCode639_1().String()), true
}

// IsEnglish reports whether text is English with reasonable confidence.
func (d *Detector) IsEnglish(text string) bool {
	if text == "" {
		return false
	}
	return d.detector.ComputeLanguageConfidence(text, lingua.English) >= 0.5
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

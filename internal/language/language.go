// Package language holds the fixed set of languages the service translates
// from, together with the per-language metadata the engines need: the
// Tesseract traineddata code for OCR and the script name.
package language

import (
	"strings"
	"unicode"

	xlang "golang.org/x/text/language"
)

// Language describes one supported source language.
type Language struct {
	Code      string `json:"code"` // ISO 639-1
	Name      string `json:"name"`
	Tesseract string `json:"tesseract"` // traineddata code
	Script    string `json:"script"`
}

// Registry is the supported-language set. It is immutable after construction
// and safe for concurrent use.
type Registry struct {
	byCode      map[string]Language
	byTesseract map[string]Language
	order       []string
	target      Language
}

// NewRegistry builds the registry with the languages the pretrained model is
// served for. The target language is English; all translations go into it.
func NewRegistry() *Registry {
	r := &Registry{
		byCode:      make(map[string]Language),
		byTesseract: make(map[string]Language),
	}
	for _, l := range []Language{
		{Code: "ne", Name: "Nepali", Tesseract: "nep", Script: "Devanagari"},
		{Code: "si", Name: "Sinhala", Tesseract: "sin", Script: "Sinhala"},
		{Code: "en", Name: "English", Tesseract: "eng", Script: "Latin"},
	} {
		r.byCode[l.Code] = l
		r.byTesseract[l.Tesseract] = l
		r.order = append(r.order, l.Code)
	}
	r.target = r.byCode["en"]
	return r
}

// Resolve looks up a language by its ISO 639-1 code. Region and casing
// variants ("NE", "ne-NP") are canonicalized before lookup.
func (r *Registry) Resolve(code string) (Language, bool) {
	c := strings.ToLower(strings.TrimSpace(code))
	if l, ok := r.byCode[c]; ok {
		return l, true
	}
	tag, err := xlang.Parse(c)
	if err != nil {
		return Language{}, false
	}
	base, _ := tag.Base()
	l, ok := r.byCode[base.String()]
	return l, ok
}

// ResolveTesseract looks up a language by its Tesseract traineddata code.
func (r *Registry) ResolveTesseract(code string) (Language, bool) {
	l, ok := r.byTesseract[strings.TrimSpace(code)]
	return l, ok
}

// Target returns the language all translations are produced in.
func (r *Registry) Target() Language {
	return r.target
}

// List returns the supported languages in registration order.
func (r *Registry) List() []Language {
	out := make([]Language, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.byCode[code])
	}
	return out
}

// Codes returns the supported ISO codes in registration order.
func (r *Registry) Codes() []string {
	return append([]string(nil), r.order...)
}

// Count returns the number of supported languages.
func (r *Registry) Count() int {
	return len(r.order)
}

// ScriptOf classifies text by the first script-significant rune. Used as a
// fallback when OCR ran without a language hint.
func ScriptOf(text string) string {
	for _, ru := range text {
		switch {
		case unicode.Is(unicode.Devanagari, ru):
			return "Devanagari"
		case unicode.Is(unicode.Sinhala, ru):
			return "Sinhala"
		case unicode.IsLetter(ru) && ru < 0x250:
			return "Latin"
		}
	}
	return ""
}

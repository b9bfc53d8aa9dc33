package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type translateBody struct {
	Text       string `validate:"required"`
	SourceLang string `validate:"required"`
}

type ocrBody struct {
	ImageBase64 string `validate:"required,base64"`
	SourceLang  string `validate:"omitempty,max=10"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct", func(t *testing.T) {
		s := translateBody{Text: "तिमीलाई कस्तो छ?", SourceLang: "ne"}
		assert.NoError(t, ValidateStruct(&s))
	})

	t.Run("missing required fields", func(t *testing.T) {
		s := translateBody{}
		err := ValidateStruct(&s)
		require.Error(t, err)
		require.True(t, IsValidationError(err))

		fields := GetValidationFields(err)
		assert.Equal(t, "Text is required", fields["Text"])
		assert.Equal(t, "SourceLang is required", fields["SourceLang"])
	})

	t.Run("one missing field reported alone", func(t *testing.T) {
		s := translateBody{Text: "hello"}
		err := ValidateStruct(&s)
		require.Error(t, err)

		fields := GetValidationFields(err)
		assert.Len(t, fields, 1)
		assert.Contains(t, fields, "SourceLang")
	})

	t.Run("base64 tag", func(t *testing.T) {
		s := ocrBody{ImageBase64: "not base64!!!"}
		err := ValidateStruct(&s)
		require.Error(t, err)

		fields := GetValidationFields(err)
		assert.Equal(t, "ImageBase64 must be valid base64 data", fields["ImageBase64"])
	})

	t.Run("max tag", func(t *testing.T) {
		s := ocrBody{ImageBase64: "aGVsbG8=", SourceLang: "waytoolongcode"}
		err := ValidateStruct(&s)
		require.Error(t, err)

		fields := GetValidationFields(err)
		assert.Equal(t, "SourceLang must be at most 10", fields["SourceLang"])
	})
}

func TestValidationError(t *testing.T) {
	t.Run("error message", func(t *testing.T) {
		err := &ValidationError{Message: "Validation failed"}
		assert.Equal(t, "Validation failed", err.Error())
	})

	t.Run("non-validation errors are not matched", func(t *testing.T) {
		assert.False(t, IsValidationError(assert.AnError))
		assert.Nil(t, GetValidationFields(assert.AnError))
	})
}

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("ne", "source_lang"))

	err := ValidateRequired("", "source_lang")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source_lang is required")
}

package translation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bhashabridge/bhasha-bridge/backend/internal/language"
	"github.com/bhashabridge/bhasha-bridge/backend/internal/observability"
	"github.com/bhashabridge/bhasha-bridge/backend/services"
)

// fakeHost scripts the model host: fixed output keyed by input text.
type fakeHost struct {
	outputs map[string]string
	err     error
	ready   bool
	calls   int
}

func (f *fakeHost) Translate(ctx context.Context, text string, src language.Language) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.outputs[text], nil
}

func (f *fakeHost) Ready() bool { return f.ready }

func newTestService(host *fakeHost) *Service {
	return NewService(
		language.NewRegistry(),
		host,
		NewResultCache(16, time.Minute),
		observability.NewMetrics(),
		zap.NewNop(),
	)
}

func TestTranslate(t *testing.T) {
	t.Run("translates nepali text", func(t *testing.T) {
		host := &fakeHost{ready: true, outputs: map[string]string{"तिमीलाई कस्तो छ?": "How are you?"}}
		svc := newTestService(host)

		res, err := svc.Translate(context.Background(), "तिमीलाई कस्तो छ?", "ne")
		require.NoError(t, err)
		assert.Equal(t, "How are you?", res.Text)
		assert.Equal(t, "ne", res.Source.Code)
		assert.False(t, res.Cached)
	})

	t.Run("identical input yields identical output", func(t *testing.T) {
		host := &fakeHost{ready: true, outputs: map[string]string{"नमस्ते": "Hello"}}
		svc := newTestService(host)

		first, err := svc.Translate(context.Background(), "नमस्ते", "ne")
		require.NoError(t, err)
		second, err := svc.Translate(context.Background(), "नमस्ते", "ne")
		require.NoError(t, err)

		assert.Equal(t, first.Text, second.Text)
		assert.True(t, second.Cached)
		assert.Equal(t, 1, host.calls, "second call must not reach the model")
	})

	t.Run("region and casing variants resolve to the same language", func(t *testing.T) {
		host := &fakeHost{ready: true, outputs: map[string]string{"नमस्ते": "Hello"}}
		svc := newTestService(host)

		res, err := svc.Translate(context.Background(), "नमस्ते", "NE")
		require.NoError(t, err)
		assert.Equal(t, "ne", res.Source.Code)

		res, err = svc.Translate(context.Background(), "नमस्ते", "ne-NP")
		require.NoError(t, err)
		assert.Equal(t, "ne", res.Source.Code)
	})

	t.Run("empty text fails validation", func(t *testing.T) {
		svc := newTestService(&fakeHost{ready: true})

		_, err := svc.Translate(context.Background(), "   ", "ne")
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("missing source language fails validation", func(t *testing.T) {
		svc := newTestService(&fakeHost{ready: true})

		_, err := svc.Translate(context.Background(), "hello", "")
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("unknown source language is rejected with the supported set", func(t *testing.T) {
		svc := newTestService(&fakeHost{ready: true})

		_, err := svc.Translate(context.Background(), "hello", "xx")
		require.Error(t, err)
		assert.True(t, services.IsUnsupportedLanguageError(err))

		details := services.GetErrorDetails(err)
		assert.Equal(t, "xx", details["source_lang"])
		assert.Equal(t, []string{"ne", "si", "en"}, details["supported"])
	})

	t.Run("unloaded model reports not ready", func(t *testing.T) {
		svc := newTestService(&fakeHost{ready: false})

		_, err := svc.Translate(context.Background(), "नमस्ते", "ne")
		require.Error(t, err)
		assert.True(t, services.IsNotReadyError(err))
	})

	t.Run("engine failure maps to model inference error", func(t *testing.T) {
		engineErr := errors.New("out of memory")
		svc := newTestService(&fakeHost{ready: true, err: engineErr})

		_, err := svc.Translate(context.Background(), "नमस्ते", "ne")
		require.Error(t, err)
		assert.True(t, services.IsModelInferenceError(err))
		assert.ErrorIs(t, err, engineErr)
	})

	t.Run("empty generation maps to model inference error", func(t *testing.T) {
		svc := newTestService(&fakeHost{ready: true, outputs: map[string]string{}})

		_, err := svc.Translate(context.Background(), "नमस्ते", "ne")
		require.Error(t, err)
		assert.True(t, services.IsModelInferenceError(err))
	})

	t.Run("nfc variants share a cache entry", func(t *testing.T) {
		// Composed U+00E9 vs decomposed e+U+0301 normalize to the same
		// model input and cache key.
		composed := "caf\u00e9"
		decomposed := "cafe\u0301"
		host := &fakeHost{ready: true, outputs: map[string]string{composed: "cafe"}}
		svc := newTestService(host)

		first, err := svc.Translate(context.Background(), composed, "en")
		require.NoError(t, err)
		second, err := svc.Translate(context.Background(), decomposed, "en")
		require.NoError(t, err)

		assert.Equal(t, first.Text, second.Text)
		assert.True(t, second.Cached)
		assert.Equal(t, 1, host.calls)
	})

	t.Run("works without cache and metrics", func(t *testing.T) {
		host := &fakeHost{ready: true, outputs: map[string]string{"नमस्ते": "Hello"}}
		svc := NewService(language.NewRegistry(), host, nil, nil, zap.NewNop())

		res, err := svc.Translate(context.Background(), "नमस्ते", "ne")
		require.NoError(t, err)
		assert.Equal(t, "Hello", res.Text)

		res, err = svc.Translate(context.Background(), "नमस्ते", "ne")
		require.NoError(t, err)
		assert.False(t, res.Cached)
		assert.Equal(t, 2, host.calls)
	})
}

func TestServiceReady(t *testing.T) {
	assert.True(t, newTestService(&fakeHost{ready: true}).Ready())
	assert.False(t, newTestService(&fakeHost{ready: false}).Ready())

	svc := NewService(language.NewRegistry(), nil, nil, nil, zap.NewNop())
	assert.False(t, svc.Ready())
}

func TestServiceLanguages(t *testing.T) {
	svc := newTestService(&fakeHost{ready: true})

	langs := svc.Languages()
	require.Len(t, langs, 3)
	assert.Equal(t, "ne", langs[0].Code)
	assert.Equal(t, "si", langs[1].Code)
	assert.Equal(t, "en", langs[2].Code)
}

func TestServiceCacheStats(t *testing.T) {
	host := &fakeHost{ready: true, outputs: map[string]string{"नमस्ते": "Hello"}}
	svc := newTestService(host)

	_, err := svc.Translate(context.Background(), "नमस्ते", "ne")
	require.NoError(t, err)
	_, err = svc.Translate(context.Background(), "नमस्ते", "ne")
	require.NoError(t, err)

	stats := svc.CacheStats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, uint64(1), stats.Hits)
}

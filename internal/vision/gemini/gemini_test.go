package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crabe/delivnote/internal/vision"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Extractor {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	e := NewExtractor("test-key", "gemini-flash-latest")
	e.baseURL = server.URL
	return e
}

func TestExtractSendsPromptAndImages(t *testing.T) {
	var got request
	e := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-flash-latest")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": `{"items": []}`}}}},
			},
		})
	})

	text, err := e.Extract(context.Background(), []vision.Image{
		{Data: []byte("fake-image"), MIMEType: "image/png"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"items": []}`, text)

	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 2)
	assert.Equal(t, vision.ExtractionPrompt, got.Contents[0].Parts[0].Text)
	require.NotNil(t, got.Contents[0].Parts[1].InlineData)
	assert.Equal(t, "image/png", got.Contents[0].Parts[1].InlineData.MIMEType)
	assert.Equal(t, "application/json", got.GenerationConfig.ResponseMIMEType)
}

func TestExtractErrorStatus(t *testing.T) {
	e := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := e.Extract(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestExtractEmptyCandidates(t *testing.T) {
	e := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})

	_, err := e.Extract(context.Background(), nil)
	assert.Error(t, err)
}

package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/application/ports"
)

func TestAnthropicService_Complete(t *testing.T) {
	var got anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Hola "},{"type":"text","text":"obra"}]}`))
	}))
	defer srv.Close()

	s := NewAnthropicService("test-key", "claude-test", time.Second)
	s.baseURL = srv.URL

	out, err := s.Complete(context.Background(), ports.CompletionRequest{System: "sys", Prompt: "resume", JSON: true})
	require.NoError(t, err)
	assert.Equal(t, "Hola obra", out)
	assert.Equal(t, "claude-test", got.Model)
	assert.Equal(t, 1024, got.MaxTokens)
	assert.Contains(t, got.System, "JSON")
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "resume", got.Messages[0].Content)
}

func TestAnthropicService_ErrorDeAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer srv.Close()

	s := NewAnthropicService("bad", "m", time.Second)
	s.baseURL = srv.URL

	_, err := s.Complete(context.Background(), ports.CompletionRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication_error")
}

func TestAnthropicService_SinAPIKey(t *testing.T) {
	_, err := NewAnthropicService("", "m", 0).Complete(context.Background(), ports.CompletionRequest{Prompt: "x"})
	assert.Error(t, err)
}

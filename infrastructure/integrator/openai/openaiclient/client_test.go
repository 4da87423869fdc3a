package openaiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
)

func TestCompleteJSON(t *testing.T) {
	var received map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"chatcmpl-1","object":"chat.completion","model":"gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":"{\"ok\":true}"},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	client := NewClient(config.OpenAI{APIKey: "sk-test", BaseURL: server.URL + "/v1", MaxTokens: 500}, server.Client())

	content, err := client.CompleteJSON(context.Background(), "sistema", "usuário")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, content)

	assert.Equal(t, defaultModel, received["model"])
	format, _ := received["response_format"].(map[string]any)
	assert.Equal(t, "json_object", format["type"])
	messages, _ := received["messages"].([]any)
	assert.Len(t, messages, 2)
}

func TestCompleteJSON_ErroDaAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`)
	}))
	defer server.Close()

	client := NewClient(config.OpenAI{APIKey: "sk-test", BaseURL: server.URL + "/v1"}, server.Client())

	_, err := client.CompleteJSON(context.Background(), "sistema", "usuário")
	assert.Error(t, err)
}

package narrator_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

func TestOpenAIGenerator(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "test-model",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"narration\":\"hi\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 42, "completion_tokens": 7, "total_tokens": 49}
		}`))
	}))
	defer server.Close()

	gen, err := narrator.NewOpenAI(&narrator.OpenAIConfig{
		APIKey:  "test",
		Model:   "test-model",
		BaseURL: server.URL + "/v1",
	})
	require.NoError(t, err)
	assert.Equal(t, "openai", gen.Name())

	resp, err := gen.Generate(context.Background(), &narrator.Request{
		Operation: narrator.OperationCombatTurn,
		System:    "system",
		Prompt:    "prompt",
		Schema:    narrator.CombatTurnSchema(),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"narration":"hi"}`, resp.Text)
	assert.Equal(t, 42, resp.PromptTokens)
	assert.Equal(t, 7, resp.CompletionTokens)

	assert.Equal(t, "test-model", captured["model"])
	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 2)
	format, ok := captured["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_schema", format["type"])
}

func TestOpenAIGenerator_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer server.Close()

	gen, err := narrator.NewOpenAI(&narrator.OpenAIConfig{APIKey: "test", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), &narrator.Request{Prompt: "prompt"})
	require.Error(t, err)
}

func TestOllamaGenerator(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3.1","message":{"role":"assistant","content":"{\"narration\":\"hi\"}"},"done":true,"prompt_eval_count":11,"eval_count":5}`))
	}))
	defer server.Close()

	gen, err := narrator.NewOllama(&narrator.OllamaConfig{BaseURL: server.URL + "/v1/"})
	require.NoError(t, err)
	assert.Equal(t, "ollama", gen.Name())

	resp, err := gen.Generate(context.Background(), &narrator.Request{
		System: "system",
		Prompt: "prompt",
		Schema: narrator.CombatTurnSchema(),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"narration":"hi"}`, resp.Text)
	assert.Equal(t, 11, resp.PromptTokens)
	assert.Equal(t, 5, resp.CompletionTokens)

	assert.Equal(t, false, captured["stream"])
	format, ok := captured["format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "object", format["type"])
}

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown backend", func(t *testing.T) {
		_, closeFn, err := narrator.NewGenerator(ctx, &narrator.BackendConfig{Backend: "claude"})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.NoError(t, closeFn())
	})

	t.Run("gemini requires api key", func(t *testing.T) {
		_, _, err := narrator.NewGenerator(ctx, &narrator.BackendConfig{Backend: narrator.BackendGemini})
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("ollama", func(t *testing.T) {
		gen, closeFn, err := narrator.NewGenerator(ctx, &narrator.BackendConfig{Backend: "Ollama"})
		require.NoError(t, err)
		assert.Equal(t, narrator.BackendOllama, gen.Name())
		assert.NoError(t, closeFn())
	})

	t.Run("openai compatible endpoint", func(t *testing.T) {
		gen, _, err := narrator.NewGenerator(ctx, &narrator.BackendConfig{
			Backend: narrator.BackendOpenAI,
			BaseURL: "http://localhost:8080/v1",
		})
		require.NoError(t, err)
		assert.Equal(t, narrator.BackendOpenAI, gen.Name())
	})
}

package completion_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitcoach/internal/completion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientMissingAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	client, err := completion.NewClient()
	assert.Nil(t, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}

func TestNewClientReadsEnvironment(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")

	client, err := completion.NewClient()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestCompleteSuccess(t *testing.T) {
	var gotAuth string
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"ok\":true}"}}]}`))
	}))
	defer server.Close()

	client := completion.NewClientWithConfig("test-key", server.URL, "test-model")
	text, err := client.Complete(context.Background(), "system prompt", "user prompt")

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, text)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "system prompt", gotBody.Messages[0].Content)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
}

func TestCompleteProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer server.Close()

	client := completion.NewClientWithConfig("test-key", server.URL, "test-model")
	_, err := client.Complete(context.Background(), "system", "user")

	var cerr *completion.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, http.StatusTooManyRequests, cerr.StatusCode)
	assert.Contains(t, cerr.Message, "rate limit exceeded")
}

func TestCompleteProviderErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := completion.NewClientWithConfig("test-key", server.URL, "test-model")
	_, err := client.Complete(context.Background(), "system", "user")

	var cerr *completion.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, http.StatusBadGateway, cerr.StatusCode)
}

func TestCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := completion.NewClientWithConfig("test-key", server.URL, "test-model")
	_, err := client.Complete(context.Background(), "system", "user")

	var cerr *completion.Error
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Message, "no completion choices")
}

func TestCompleteSingleAttempt(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := completion.NewClientWithConfig("test-key", server.URL, "test-model")
	_, err := client.Complete(context.Background(), "system", "user")

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestCompleteHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"late"}}]}`))
	}))
	defer server.Close()

	client := completion.NewClientWithConfig("test-key", server.URL, "test-model")
	_, err := client.Complete(ctx, "system", "user")
	assert.Error(t, err)
}

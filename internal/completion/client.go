package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.3-70b-versatile"
)

// PlanSystemPrompt is the fixed instruction for plan generation; the plan
// parser depends on the JSON-only contract it states.
const PlanSystemPrompt = "You are a helpful fitness assistant that outputs only valid JSON."

// Error reports an upstream provider failure. The caller decides whether to
// retry the whole pipeline; the client itself performs exactly one attempt.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion provider error (status %d): %s", e.StatusCode, e.Message)
	}
	return "completion provider error: " + e.Message
}

// Client calls an OpenAI-compatible chat-completions endpoint. It holds no
// state between calls.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient reads GROQ_API_KEY and fails fast when it is absent, before any
// network call can happen. GROQ_BASE_URL and GROQ_MODEL override the defaults.
func NewClient() (*Client, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable is not set")
	}
	baseURL := os.Getenv("GROQ_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = defaultModel
	}
	return NewClientWithConfig(apiKey, baseURL, model), nil
}

func NewClientWithConfig(apiKey, baseURL, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{},
	}
}

// Complete sends one chat completion and returns the raw reply text. No
// retries: a failed call surfaces to the caller as *Error.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+c.apiKey)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", &Error{Message: err.Error()}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err != nil || errorResponse.Error.Message == "" {
			return "", &Error{StatusCode: response.StatusCode, Message: "provider returned a non-200 status"}
		}
		return "", &Error{StatusCode: response.StatusCode, Message: errorResponse.Error.Message}
	}

	var result chatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", &Error{Message: "failed to decode provider response: " + err.Error()}
	}
	if len(result.Choices) == 0 {
		return "", &Error{Message: "no completion choices returned"}
	}

	return result.Choices[0].Message.Content, nil
}

package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

const (
	defaultBaseURL    = "https://api.mistral.ai"
	defaultModel      = "mistral-large-latest"
	defaultSmallModel = "mistral-small-latest"
)

// Client calls the Mistral chat-completions endpoint. The process-wide
// API key from the environment is a fallback; callers may pass a
// per-call key resolved from the settings store.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	smallModel string
	httpClient *http.Client
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ConfigurationError indicates that no API credential was available,
// neither per-call nor process-wide. It is never retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "mistral: " + e.Reason
}

// UpstreamError carries the raw status and body of a non-success
// response from the text-generation service.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("mistral: API error: %d - %s", e.Status, e.Body)
}

func NewClient() *Client {
	baseURL := os.Getenv("MISTRAL_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := os.Getenv("MISTRAL_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Client{
		apiKey:     os.Getenv("MISTRAL_API_KEY"),
		baseURL:    baseURL,
		model:      model,
		smallModel: defaultSmallModel,
		httpClient: &http.Client{},
	}
}

// Model returns the default large model name, recorded on generated
// articles for auditing.
func (c *Client) Model() string {
	return c.model
}

func (c *Client) resolveKey(apiKey string) (string, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		key = c.apiKey
	}
	if key == "" {
		return "", &ConfigurationError{Reason: "API key is not configured. Please set it in the AI settings."}
	}
	return key, nil
}

func (c *Client) chatCompletion(ctx context.Context, model string, messages []ChatMessage, temperature float64, maxTokens int, apiKey string) (string, error) {
	key, err := c.resolveKey(apiKey)
	if err != nil {
		return "", err
	}

	req := ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", key))

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(response.Body)
		return "", &UpstreamError{Status: response.StatusCode, Body: string(body)}
	}

	var result ChatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return result.Choices[0].Message.Content, nil
}

// extractJSON returns the first balanced {...} object found in s.
// Model output may wrap the JSON in surrounding prose.
func extractJSON(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// generateExcerpt strips markup characters and truncates near the
// given length at a word boundary.
func generateExcerpt(content string, maxLength int) string {
	text := strings.TrimSpace(strings.Map(func(r rune) rune {
		switch r {
		case '#', '*', '[', ']':
			return -1
		}
		return r
	}, content))

	if len(text) <= maxLength {
		return text
	}

	excerpt := text[:maxLength]
	if lastSpace := strings.LastIndexByte(excerpt, ' '); lastSpace > 0 {
		return excerpt[:lastSpace] + "..."
	}
	return excerpt + "..."
}

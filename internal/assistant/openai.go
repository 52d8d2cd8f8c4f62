package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4"
	defaultPrompt  = "You are a task extraction assistant. Extract actionable tasks " +
		"from the user's text and respond with JSON of the shape " +
		`{"tasks":[{"name":"...","description":"...","dueDate":"YYYY-MM-DD"}]}` +
		" and nothing else."
	requestTimeout = 30 * time.Second
)

// OpenAIClient extracts tasks from free text through the chat completions
// endpoint.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	prompt  string
	client  *http.Client
}

func NewOpenAIClient(apiKey, baseURL string) (*OpenAIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("assistant: api key is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   defaultModel,
		prompt:  defaultPrompt,
		client:  &http.Client{Timeout: requestTimeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type proposalPayload struct {
	Tasks []Proposal `json:"tasks"`
}

func (c *OpenAIClient) ProposeTasks(ctx context.Context, freeText string) ([]Proposal, error) {
	if strings.TrimSpace(freeText) == "" {
		return nil, errors.New("assistant: empty input")
	}

	// The model resolves relative phrasing ("tomorrow", "next friday")
	// against the date we hand it.
	system := fmt.Sprintf("%s\n\nCurrent date: %s. Use this date as reference when determining due dates or scheduling information.",
		c.prompt, time.Now().Format("2006-01-02"))

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: freeText},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call chat completions: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("assistant: %s (%s)", apiErr.Error.Message, apiErr.Error.Type)
		}
		return nil, fmt.Errorf("assistant: unexpected status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("assistant: empty completion")
	}

	var payload proposalPayload
	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("parse task payload: %w", err)
	}
	return payload.Tasks, nil
}

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/streamchapter-team/stream-chapters/pkg/config"
)

const systemPrompt = "你是一个资深中文财经直播剪辑师，擅长拆分长视频章节并输出JSON。"

// VolcengineClient is a minimal client for the Ark chat-completions API
type VolcengineClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewVolcengineClient creates a client from the provided config.
// An empty API key produces a client that reports itself unconfigured;
// callers are expected to skip the model path in that case.
func NewVolcengineClient(cfg *config.VolcengineConfig) *VolcengineClient {
	timeout := 120 * time.Second
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &VolcengineClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// IsConfigured reports whether an API key is present
func (v *VolcengineClient) IsConfigured() bool {
	return v.apiKey != ""
}

// ChatMessage is a single chat turn
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat asks the provider to enforce an output shape
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatJSON sends the prompt as one synchronous chat completion requesting
// pure-JSON output with a low temperature. Transport and status failures
// come back as errors; the caller decides how to degrade.
func (v *VolcengineClient) ChatJSON(ctx context.Context, prompt string) (*ChatResponse, error) {
	reqBody := ChatRequest{
		Model: v.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
		Temperature:    0.3,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+v.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("volcengine returned status %d", resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

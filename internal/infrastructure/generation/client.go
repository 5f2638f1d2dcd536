// Package generation provides the HTTP client for the external generation
// collaborator. The API is OpenAI-compatible chat completions; the client
// only moves text and images, it never interprets the reply content.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fridgewise/core/internal/ports/outbound"
	"github.com/fridgewise/core/pkg/errors"
	"go.uber.org/zap"
)

// Config holds the collaborator endpoint settings. It is passed in
// explicitly at construction; the client never reads ambient state.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	VisionModel string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Client implements outbound.GenerationClient against a chat-completions API
type Client struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

// NewClient creates a generation client. A missing API key is allowed at
// construction (the user may add one in settings later); every call checks
// again and fails with a configuration error before any network I/O.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = cfg.Model
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.APIKey == "" {
		logger.Warn("Generation API key not configured, generation calls will fail until one is set")
	}

	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.Named("generation"),
	}
}

// Chat-completions wire structures

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatMessage content is either a plain string or, for vision calls, a
// list of typed content parts
type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatCompletionResponse struct {
	Choices []choice `json:"choices"`
	Usage   usage    `json:"usage"`
}

type choice struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Complete sends one instruction and returns the raw reply text
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: system},
		{Role: outbound.RoleUser, Content: prompt},
	}
	return c.call(ctx, c.cfg.Model, messages)
}

// CompleteVision sends an instruction plus a base64 JPEG payload
func (c *Client) CompleteVision(ctx context.Context, system, prompt, imageBase64 string) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: system},
		{
			Role: outbound.RoleUser,
			Content: []contentPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &imageURL{
					URL: "data:image/jpeg;base64," + imageBase64,
				}},
			},
		},
	}
	return c.call(ctx, c.cfg.VisionModel, messages)
}

// Chat sends a running conversation and returns the next reply
func (c *Client) Chat(ctx context.Context, system string, turns []outbound.ChatTurn) (string, error) {
	messages := make([]chatMessage, 0, len(turns)+1)
	messages = append(messages, chatMessage{Role: "system", Content: system})
	for _, turn := range turns {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Content})
	}
	return c.call(ctx, c.cfg.Model, messages)
}

// call performs one chat-completions request
func (c *Client) call(ctx context.Context, model string, messages []chatMessage) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errors.NewMissingCredentialError("generation")
	}

	reqBody := chatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.NewTransportError("failed to marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", errors.NewTransportError("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Generation request failed", zap.Error(err))
		return "", errors.NewTransportError("request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewTransportError("failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Generation request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(body), 500)),
		)
		return "", errors.NewUpstreamStatusError(resp.StatusCode, truncate(string(body), 500))
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", errors.NewTransportError("failed to decode response envelope", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", errors.NewTransportError("response contained no choices", nil)
	}

	c.logger.Info("Generation call completed",
		zap.String("model", model),
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("prompt_tokens", chatResp.Usage.PromptTokens),
		zap.Int("completion_tokens", chatResp.Usage.CompletionTokens),
	)

	return chatResp.Choices[0].Message.Content, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return fmt.Sprintf("%s... (%d bytes)", s[:limit], len(s))
}

package groq

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"reception-server/internal/observability"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

var ErrNoReply = errors.New("completion service returned no reply")

// Config holds settings for the Groq chat-completion client.
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the Groq endpoint, used by tests.
	BaseURL string
	// Timeout bounds a single completion call. Twilio's gather callback
	// has its own round-trip deadline, so this stays at a few seconds.
	Timeout time.Duration
}

// Client issues single-attempt chat completions against Groq's
// OpenAI-compatible endpoint.
type Client struct {
	client  openai.Client
	model   string
	timeout time.Duration
	logger  *observability.Logger
}

func NewClient(cfg Config, logger *observability.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq API key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 4 * time.Second
	}

	// Single attempt per turn; the caller falls back on failure.
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)

	return &Client{
		client:  client,
		model:   cfg.Model,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Complete sends one low-temperature, non-streaming completion request and
// returns the generated reply text. An empty utterance is valid input. Any
// transport failure, non-2xx status, or missing reply surfaces as an error;
// the caller decides what to say instead.
func (c *Client) Complete(ctx context.Context, systemInstruction, utterance string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(utterance),
		},
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(256),
	})
	if err != nil {
		c.logger.Error(ctx, "completion request failed", err)
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoReply
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", ErrNoReply
	}
	return reply, nil
}

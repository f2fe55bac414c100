// Package genai provides the single-call OpenAI adapter used to generate
// email drafts.
package genai

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Fixed generation parameters. One request, one response; no retries and
// no streaming.
const (
	// DefaultModel is the model identifier used when none is configured.
	DefaultModel = openai.ChatModelGPT3_5Turbo
	// MaxOutputTokens caps the length of a generated draft.
	MaxOutputTokens = 500
	// SamplingTemperature balances creativity and focus for drafting.
	SamplingTemperature = 0.7
)

// Error variables for better error handling and testability
var (
	// ErrAPIKeyNotSet indicates the OpenAI credential is missing; no call
	// may be attempted without it.
	ErrAPIKeyNotSet = errors.New("OPENAI_API_KEY not set")
	// ErrNoChoicesReturned indicates the provider returned an empty choice list.
	ErrNoChoicesReturned = errors.New("no choices returned")
)

// chatService defines the minimal interface for chat completions.
type chatService interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// Client wraps the OpenAI chat completion service for generating drafts.
type Client struct {
	chat  chatService
	model openai.ChatModel
}

// Option configures the Client.
type Option func(*settings)

type settings struct {
	apiKey string
	model  openai.ChatModel
}

// WithAPIKey sets the OpenAI API key, overriding the environment.
func WithAPIKey(key string) Option {
	return func(s *settings) { s.apiKey = key }
}

// WithModel overrides the default model identifier.
func WithModel(model string) Option {
	return func(s *settings) { s.model = openai.ChatModel(model) }
}

// NewClient initializes a GenAI client. The credential is resolved from
// options first, then the OPENAI_API_KEY environment variable; a missing
// credential is a configuration error and no client is constructed.
func NewClient(opts ...Option) (*Client, error) {
	s := settings{model: DefaultModel}
	for _, opt := range opts {
		opt(&s)
	}
	if s.apiKey == "" {
		s.apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if s.apiKey == "" {
		return nil, ErrAPIKeyNotSet
	}
	cli := openai.NewClient(option.WithAPIKey(s.apiKey))
	return &Client{chat: &cli.Chat.Completions, model: s.model}, nil
}

// GenerateDraft sends one chat completion request with the fixed system
// directive and the composed instruction, and returns the first choice's
// content unmodified.
func (c *Client) GenerateDraft(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		MaxTokens:   openai.Int(MaxOutputTokens),
		Temperature: openai.Float(SamplingTemperature),
	}
	resp, err := c.chat.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrNoChoicesReturned
	}
	return resp.Choices[0].Message.Content, nil
}

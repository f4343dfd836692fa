package generative

import (
	"context"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/Abraxas-365/counsel/pkg/errx"
)

const defaultTimeout = 60 * time.Second

// Client handles free-form text generation for counseling prompts
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a new generative client
func NewClient(apiKey string) *Client {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &Client{
		client:  &client,
		model:   "gpt-4o-mini",
		timeout: defaultTimeout,
	}
}

// Complete sends a single-prompt completion request and returns the
// generated text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(1500),
	})
	if err != nil {
		return "", errx.Wrap(err, "completion request failed", errx.TypeExternal)
	}

	if len(completion.Choices) == 0 {
		return "", errx.Wrap(nil, "completion returned no choices", errx.TypeExternal)
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

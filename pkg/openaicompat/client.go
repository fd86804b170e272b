// Package openaicompat sends transcripts to Gemini's OpenAI-compatible
// Chat Completions endpoint.
package openaicompat

import (
	"context"
	"errors"
	"strings"

	"github.com/minhyannv/gemini-chat-go/pkg/chat"
	loggerpkg "github.com/minhyannv/gemini-chat-go/pkg/logger"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var _ chat.Generator = (*Client)(nil)

// ErrNoChoices is returned when the completion carries no choices.
var ErrNoChoices = errors.New("empty completion choices")

// Client implements chat.Generator on top of the OpenAI SDK.
type Client struct {
	client openai.Client
	model  string
	logger loggerpkg.Logger
}

// Option configures optional dependencies for a Client.
type Option func(*clientDeps)

type clientDeps struct {
	logger         loggerpkg.Logger
	requestOptions []option.RequestOption
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *clientDeps) {
		d.logger = loggerpkg.OrNop(l)
	}
}

// WithRequestOptions appends SDK request options, applied after the defaults.
func WithRequestOptions(opts ...option.RequestOption) Option {
	return func(d *clientDeps) {
		d.requestOptions = append(d.requestOptions, opts...)
	}
}

// New creates a Client. baseURL must end with a slash, e.g.
// "https://generativelanguage.googleapis.com/v1beta/openai/".
// SDK retries are disabled so each Generate makes exactly one request.
func New(baseURL, apiKey, model string, opts ...Option) *Client {
	deps := clientDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	reqOpts := []option.RequestOption{option.WithMaxRetries(0)}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	if apiKey != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(apiKey))
	}
	reqOpts = append(reqOpts, deps.requestOptions...)

	return &Client{
		client: openai.NewClient(reqOpts...),
		model:  model,
		logger: deps.logger,
	}
}

// Generate sends turns and returns the first choice's content, trimmed.
func (c *Client) Generate(ctx context.Context, turns []chat.Turn) (string, error) {
	messages := BuildMessages(turns)
	c.logger.Debug("chat completion request", map[string]any{
		"model":    c.model,
		"messages": len(messages),
	})

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", ErrNoChoices
	}
	c.logger.Debug("chat completion received", map[string]any{
		"finish_reason": completion.Choices[0].FinishReason,
	})
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// BuildMessages maps model turns to assistant messages and everything else to user messages.
func BuildMessages(turns []chat.Turn) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))
	for _, t := range turns {
		if t.Role == chat.RoleModel {
			out = append(out, openai.AssistantMessage(t.Text))
			continue
		}
		out = append(out, openai.UserMessage(t.Text))
	}
	return out
}

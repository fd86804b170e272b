package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/minhyannv/gemini-chat-go/pkg/chat"
	loggerpkg "github.com/minhyannv/gemini-chat-go/pkg/logger"
)

var _ chat.Generator = (*Client)(nil)

var (
	ErrNoCandidates = errors.New("response has no candidates")
	ErrNoText       = errors.New("first candidate has no text part")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// Client sends transcripts to generateContent and returns the first
// candidate's text. It performs exactly one request per call.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     loggerpkg.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client, which has no timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(c *Client) {
		c.logger = loggerpkg.OrNop(l)
	}
}

// New creates a Client. baseURL is the scheme and host, e.g.
// "https://generativelanguage.googleapis.com".
func New(baseURL, apiKey, model string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{},
		logger:     loggerpkg.NopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Endpoint returns the request URL, API key included.
func (c *Client) Endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
}

// Generate sends turns and returns the reply text trimmed of surrounding whitespace.
func (c *Client) Generate(ctx context.Context, turns []chat.Turn) (string, error) {
	body, err := json.Marshal(BuildRequest(turns))
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", redact(fmt.Errorf("build request: %w", err), c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("gemini request", map[string]any{
		"model": c.model,
		"turns": len(turns),
		"bytes": len(body),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", redact(err, c.apiKey)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	c.logger.Debug("gemini response", map[string]any{
		"status": resp.StatusCode,
		"bytes":  len(raw),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newStatusError(resp.StatusCode, raw)
	}

	var decoded apiResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return firstText(decoded)
}

func firstText(resp apiResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0].Text == nil {
		return "", ErrNoText
	}
	return strings.TrimSpace(*content.Parts[0].Text), nil
}

func newStatusError(code int, raw []byte) *StatusError {
	var body apiErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		return &StatusError{StatusCode: code, Message: body.Error.Message}
	}
	return &StatusError{StatusCode: code, Message: strings.TrimSpace(string(raw))}
}

// redact strips the API key from errors that embed the request URL.
func redact(err error, apiKey string) error {
	if apiKey == "" {
		return err
	}
	msg := err.Error()
	for _, k := range []string{apiKey, url.QueryEscape(apiKey)} {
		msg = strings.ReplaceAll(msg, k, "REDACTED")
	}
	if msg == err.Error() {
		return err
	}
	return errors.New(msg)
}

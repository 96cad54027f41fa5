// Package llm talks to the Gemini text generation API.
package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// Generator turns a prompt and a system instruction into note text.
type Generator interface {
	Generate(ctx context.Context, prompt, instruction string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, prompt, instruction string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt, instruction string) (string, error) {
	return f(ctx, prompt, instruction)
}

// Config holds the Gemini connection settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

const DefaultModel = "gemini-3-flash-preview"

// Client is a Generator backed by the Gemini API.
type Client struct {
	models *genai.Models
	model  string
	logger zerolog.Logger
}

// NewClient builds a Gemini client. A zero Timeout leaves the HTTP client without a deadline.
func NewClient(ctx context.Context, cfg Config, logger zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("llm: missing API key")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: cfg.Timeout},
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		models: gc.Models,
		model:  cfg.Model,
		logger: logger.With().Str("component", "llm").Str("model", cfg.Model).Logger(),
	}, nil
}

// Generate sends the prompt with temperature zero. Failures come back as *GenerationError.
func (c *Client) Generate(ctx context.Context, prompt, instruction string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0),
	})
	if err != nil {
		ge := classify(err)
		c.logger.Warn().Err(err).Str("kind", string(ge.Kind)).Msg("generation request failed")
		return "", ge
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		c.logger.Warn().Msg("generation returned no text")
		return "", &GenerationError{Kind: KindMalformed, Err: errors.New("empty response")}
	}
	return text, nil
}

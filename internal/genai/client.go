// Package genai wraps the external text- and image-generation collaborator.
// Every failure path degrades to a deterministic canned response so the
// dialogue never stalls on upstream trouble.
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"quotation-engine/internal/catalog"
	"quotation-engine/internal/common/config"
	"quotation-engine/internal/common/logger"
	"quotation-engine/internal/models"
)

var ErrUpstreamUnavailable = errors.New("UPSTREAM_UNAVAILABLE")

// Client calls the chat and vision models. When no API key is configured the
// client is disabled and every call returns ErrUpstreamUnavailable
// immediately; callers fall back to canned responses.
type Client struct {
	api     openai.Client
	cfg     config.GenAIConfig
	enabled bool
	logger  logger.Logger
}

func NewClient(cfg config.GenAIConfig, log logger.Logger) *Client {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api:     openai.NewClient(opts...),
		cfg:     cfg,
		enabled: cfg.Enabled(),
		logger:  log.WithFields(map[string]interface{}{"component": "genai"}),
	}
}

// Chat generates assistant text from the system prompt, the recent history,
// and the product context. maxHistory caps how many trailing messages are
// forwarded to keep within the model's context budget.
func (c *Client) Chat(ctx context.Context, history []models.Message, products []catalog.Item, maxHistory int) (string, error) {
	if !c.enabled {
		return "", ErrUpstreamUnavailable
	}

	recent := history
	if maxHistory > 0 && len(recent) > maxHistory {
		recent = recent[len(recent)-maxHistory:]
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(recent)+1)
	messages = append(messages, openai.SystemMessage(buildSystemPrompt(products)))
	for _, msg := range recent {
		switch msg.Role {
		case models.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:               c.cfg.ChatModel,
		Messages:            messages,
		MaxCompletionTokens: openai.Int(int64(c.cfg.MaxTokens)),
	}

	text, err := c.complete(ctx, params)
	if err != nil {
		return "", err
	}

	c.logger.Info("chat completion generated", map[string]interface{}{
		"historyLen": len(recent),
		"products":   len(products),
	})
	return text, nil
}

// DescribeImage analyzes a base64-encoded JPEG and returns descriptive text
// oriented toward gift suggestions.
func (c *Client) DescribeImage(ctx context.Context, imageBase64 string) (string, error) {
	if !c.enabled {
		return "", ErrUpstreamUnavailable
	}

	params := openai.ChatCompletionNewParams{
		Model: c.cfg.VisionModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(visionPrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: "data:image/jpeg;base64," + imageBase64,
				}),
			}),
		},
		MaxCompletionTokens: openai.Int(300),
	}

	return c.complete(ctx, params)
}

// complete sends the request with exponential backoff. Timeouts and
// exhausted retries surface as ErrUpstreamUnavailable.
func (c *Client) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, ctx.Err())
			}
		}

		resp, err := c.api.Chat.Completions.New(ctx, params)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, ctx.Err())
			}
			continue
		}

		if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
			lastErr = errors.New("empty completion")
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}

	c.logger.Warn("generation call failed after retries", map[string]interface{}{
		"error": lastErr.Error(),
	})
	return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, lastErr)
}

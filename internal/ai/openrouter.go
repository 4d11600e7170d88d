// README: OpenRouter provider (OpenAI-compatible chat completion endpoint).
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// OpenRouterBaseURL is the OpenAI-compatible endpoint of openrouter.ai.
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// DefaultOpenRouterModel matches the original deployment of this service.
	DefaultOpenRouterModel = "google/gemini-2.5-flash"
)

// OpenRouterProvider implements Provider against openrouter.ai.
type OpenRouterProvider struct {
	client       *openai.Client
	model        string
	maxTokens    int
	instructions string
}

// NewOpenRouterProvider builds a provider pointed at OpenRouter.
func NewOpenRouterProvider(apiKey string, cfg Config) (*OpenRouterProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openrouter: missing api key")
	}
	clientCfg := openai.DefaultConfig(apiKey)
	clientCfg.BaseURL = OpenRouterBaseURL

	model := cfg.Model
	if model == "" {
		model = DefaultOpenRouterModel
	}

	return &OpenRouterProvider{
		client:       openai.NewClientWithConfig(clientCfg),
		model:        model,
		maxTokens:    cfg.MaxTokens,
		instructions: cfg.Instructions,
	}, nil
}

// Close is a no-op; the underlying HTTP client has no resources to release.
func (p *OpenRouterProvider) Close() error { return nil }

// GenerateItinerary runs one chat completion.
func (p *OpenRouterProvider) GenerateItinerary(ctx context.Context, prompt string) (Result, error) {
	req := openai.ChatCompletionRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.instructions},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("openrouter: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("openrouter: API returned no choices")
	}

	text := resp.Choices[0].Message.Content
	result := Result{
		Text: text,
		Usage: TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
		},
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &doc); err == nil {
		result.Document = doc
	}
	return result, nil
}

// README: Gemini provider (JSON-mode completion via the official SDK).
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel balances latency and cost for itinerary generation.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a Gemini client configured for structured
// itinerary output.
func NewGeminiProvider(ctx context.Context, apiKey string, cfg Config) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	model := client.GenerativeModel(modelName)

	// Force JSON responses for structured parsing. The pipeline still treats
	// the output as untrusted text; this just raises the odds.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)
	if cfg.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(cfg.MaxTokens))
	}
	if cfg.Instructions != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(cfg.Instructions)},
		}
	}

	return &GeminiProvider{client: client, model: model}, nil
}

// Close releases the underlying client.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// GenerateItinerary runs one completion. When the response decodes as a JSON
// object the result carries a structured document; otherwise the raw text is
// handed to the extraction pipeline.
func (p *GeminiProvider) GenerateItinerary(ctx context.Context, prompt string) (Result, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Result{}, fmt.Errorf("gemini: generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return Result{}, err
	}

	result := Result{Text: text, Usage: usageFrom(resp)}
	var doc map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &doc); err == nil {
		result.Document = doc
	}
	return result, nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: API returned empty candidates")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}
	return b.String(), nil
}

func usageFrom(resp *genai.GenerateContentResponse) TokenUsage {
	if resp.UsageMetadata == nil {
		return TokenUsage{}
	}
	return TokenUsage{
		PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
		CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
	}
}

// README: Agentic Gemini provider (bounded tool loop: web fetch + places).
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultMaxSteps bounds the tool loop when the config leaves it unset.
const DefaultMaxSteps = 6

const (
	toolVisitWebpage = "visit_webpage"
	toolSearchPlaces = "search_places"
)

// GeminiAgent implements Provider with Gemini function calling. The model may
// research with the registered tools before answering; the loop is bounded by
// a fixed step ceiling so a chatty model cannot run away.
//
// JSON response mode cannot be combined with tools, so the final answer comes
// back as free text and relies on the extraction pipeline downstream.
type GeminiAgent struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	fetcher  WebFetcher
	places   PlaceSearcher
	maxSteps int
}

// NewGeminiAgent builds the agentic provider. fetcher and places may be nil;
// missing tools are simply not registered.
func NewGeminiAgent(ctx context.Context, apiKey string, cfg Config, fetcher WebFetcher, places PlaceSearcher) (*GeminiAgent, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini agent: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini agent: create client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.4)
	if cfg.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(cfg.MaxTokens))
	}
	if cfg.Instructions != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(cfg.Instructions)},
		}
	}
	model.Tools = buildTools(fetcher, places)

	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	return &GeminiAgent{
		client:   client,
		model:    model,
		fetcher:  fetcher,
		places:   places,
		maxSteps: maxSteps,
	}, nil
}

// Close releases the underlying client.
func (a *GeminiAgent) Close() error {
	return a.client.Close()
}

func buildTools(fetcher WebFetcher, places PlaceSearcher) []*genai.Tool {
	var decls []*genai.FunctionDeclaration
	if fetcher != nil {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        toolVisitWebpage,
			Description: "Fetch a webpage and return its readable text content.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"url": {Type: genai.TypeString, Description: "Absolute URL to fetch"},
				},
				Required: []string{"url"},
			},
		})
	}
	if places != nil {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        toolSearchPlaces,
			Description: "Search for real places (parks, museums, campsites) near a location.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {Type: genai.TypeString, Description: "What to search for"},
					"near":  {Type: genai.TypeString, Description: "City or area to search around"},
				},
				Required: []string{"query"},
			},
		})
	}
	if len(decls) == 0 {
		return nil
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

// GenerateItinerary runs the bounded research-then-answer loop.
func (a *GeminiAgent) GenerateItinerary(ctx context.Context, prompt string) (Result, error) {
	session := a.model.StartChat()
	parts := []genai.Part{genai.Text(prompt)}
	usage := TokenUsage{}

	for step := 0; step < a.maxSteps; step++ {
		resp, err := session.SendMessage(ctx, parts...)
		if err != nil {
			return Result{}, fmt.Errorf("gemini agent: step %d: %w", step+1, err)
		}
		if resp.UsageMetadata != nil {
			usage.PromptTokens += int(resp.UsageMetadata.PromptTokenCount)
			usage.CompletionTokens += int(resp.UsageMetadata.CandidatesTokenCount)
		}

		call := firstFunctionCall(resp)
		if call == nil {
			text, err := responseText(resp)
			if err != nil {
				return Result{}, err
			}
			return Result{Text: text, Usage: usage}, nil
		}

		log.Printf("agent tool call: %s", call.Name)
		output := a.dispatch(ctx, call)
		parts = []genai.Part{genai.FunctionResponse{
			Name:     call.Name,
			Response: map[string]any{"content": output},
		}}
	}

	return Result{}, fmt.Errorf("gemini agent: step budget (%d) exhausted without a final answer", a.maxSteps)
}

func firstFunctionCall(resp *genai.GenerateContentResponse) *genai.FunctionCall {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if fc, ok := part.(genai.FunctionCall); ok {
			return &fc
		}
	}
	return nil
}

// dispatch executes one tool call. Tool failures are reported back to the
// model as text so it can answer from what it already knows.
func (a *GeminiAgent) dispatch(ctx context.Context, call *genai.FunctionCall) string {
	args, _ := json.Marshal(call.Args)

	switch call.Name {
	case toolVisitWebpage:
		if a.fetcher == nil {
			return "tool unavailable"
		}
		url, _ := call.Args["url"].(string)
		content, err := a.fetcher.Fetch(ctx, url)
		if err != nil {
			return fmt.Sprintf("error fetching the webpage: %v", err)
		}
		return content
	case toolSearchPlaces:
		if a.places == nil {
			return "tool unavailable"
		}
		query, _ := call.Args["query"].(string)
		near, _ := call.Args["near"].(string)
		result, err := a.places.Search(ctx, query, near)
		if err != nil {
			return fmt.Sprintf("error searching places: %v", err)
		}
		return result
	default:
		return fmt.Sprintf("unknown tool %q with args %s", call.Name, args)
	}
}

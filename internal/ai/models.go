// README: Provider result and configuration types.
package ai

// TokenUsage is the token accounting reported by a provider, when available.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
}

// Result is the raw outcome of one generation call. Exactly one of Document
// or Text is meaningful: Document when the provider already decoded a
// structured value, Text otherwise.
type Result struct {
	Document map[string]any
	Text     string
	Usage    TokenUsage
}

// Config holds the generation knobs shared by all providers.
type Config struct {
	// Model is the provider-specific model identifier.
	Model string
	// MaxTokens caps the completion length.
	MaxTokens int
	// MaxSteps bounds the agentic tool loop. Ignored by plain providers.
	MaxSteps int
	// Instructions is the system instructions document loaded at startup.
	Instructions string
}

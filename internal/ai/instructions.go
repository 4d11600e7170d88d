// README: Instructions document loading (file with built-in default).
package ai

import (
	"log"
	"os"
	"strings"
)

// DefaultInstructions is the built-in system prompt used when no instructions
// file is configured or the configured file cannot be read.
const DefaultInstructions = `You are a travel route planning assistant.
Given a trip request you research the area and produce a detailed day-by-day
itinerary. Always answer with a single JSON document and nothing else.`

// LoadInstructions reads the instructions document once at startup. It never
// fails: a missing or unreadable file falls back to the built-in default.
func LoadInstructions(path string) string {
	if path == "" {
		return DefaultInstructions
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("instructions file %s not readable, using default: %v", path, err)
		return DefaultInstructions
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return DefaultInstructions
	}
	return text
}

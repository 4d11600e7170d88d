// README: Multi-strategy candidate extraction from raw generator output.
package itinerary

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// A strategy yields zero or more candidate fragments from free text, in
// document order. Strategies are pure and independent; the engine tries them
// in a fixed order and stops at the first candidate that both parses and
// validates.
type strategy struct {
	name    string
	extract func(text string) []string
}

var (
	fencedBlockRe  = regexp.MustCompile("(?s)```[a-zA-Z]*[ \t]*\n?(.*?)```")
	callStringRe   = regexp.MustCompile(`(?s)\b[A-Za-z_][A-Za-z0-9_.]*\(\s*"((?:[^"\\]|\\.)*)"\s*\)`)
	callObjectRe   = regexp.MustCompile(`(?s)\b[A-Za-z_][A-Za-z0-9_.]*\(\s*(\{.*\})\s*\)`)
	errNoCandidate = errors.New("no candidate fragment parsed and validated")
)

var strategies = []strategy{
	{name: "fenced-block", extract: extractFencedBlocks},
	{name: "outer-braces", extract: extractOuterBraces},
	{name: "call-string", extract: extractCallStrings},
	{name: "call-object", extract: extractCallObjects},
}

func extractFencedBlocks(text string) []string {
	var out []string
	for _, m := range fencedBlockRe.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

// extractOuterBraces captures the greedy span from the first { to the last }.
func extractOuterBraces(text string) []string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil
	}
	return []string{text[start : end+1]}
}

// extractCallStrings captures quoted-string arguments of call-shaped
// wrappers such as final_answer("{...}"). The argument is unescaped before
// being handed to the repairer.
func extractCallStrings(text string) []string {
	var out []string
	for _, m := range callStringRe.FindAllStringSubmatch(text, -1) {
		arg := m[1]
		if unquoted, err := strconv.Unquote(`"` + arg + `"`); err == nil {
			arg = unquoted
		}
		out = append(out, arg)
	}
	return out
}

func extractCallObjects(text string) []string {
	var out []string
	for _, m := range callObjectRe.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

// Extract resolves a raw generation result into a validated generic document.
//
// A result that already carries a structured value bypasses text extraction
// and goes straight to the validator. Free text is mined by each strategy in
// order; every candidate is repaired, parsed and validated, and the first
// success wins. Failure is reported as a typed outcome, never a panic.
func Extract(document map[string]any, text string, valid func(any) bool) (map[string]any, *UnitError) {
	if document != nil {
		if valid(document) {
			return document, nil
		}
		return nil, &UnitError{Kind: FailureValidation, Err: errors.New("structured result has wrong shape")}
	}

	// The whole blob might already be clean JSON.
	candidates := []string{text}
	for _, s := range strategies {
		candidates = append(candidates, s.extract(text)...)
	}

	parsedAny := false
	for _, candidate := range candidates {
		repaired := Repair(candidate)
		var v any
		if err := json.Unmarshal([]byte(repaired), &v); err != nil {
			continue
		}
		parsedAny = true
		doc, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if valid(doc) {
			return doc, nil
		}
	}

	if parsedAny {
		return nil, &UnitError{Kind: FailureValidation, Err: errors.New("candidates parsed but none matched the required shape")}
	}
	return nil, &UnitError{Kind: FailureExtraction, Err: errNoCandidate}
}

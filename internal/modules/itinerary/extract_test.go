// README: Extraction engine tests (strategy coverage, ordering, failure kinds).
package itinerary

import (
	"encoding/json"
	"strconv"
	"testing"
)

// validOptionJSON marshals a synthesized option, which always satisfies the
// single-plan shape.
func validOptionJSON(t *testing.T) string {
	t.Helper()
	opt := SynthesizeOption(testRequest(), ThemeDefinition{Label: "nature"}, 0)
	raw, err := json.Marshal(opt)
	if err != nil {
		t.Fatalf("marshal option: %v", err)
	}
	return string(raw)
}

func testRequest() TripRequest {
	return TripRequest{
		UserID:        "u1",
		Name:          "coast trip",
		Description:   "short hop",
		StartPosition: "A",
		EndPosition:   "B",
		StartDate:     "2026-06-01",
		EndDate:       "2026-06-03",
	}
}

func TestExtractStructuredDocumentBypassesText(t *testing.T) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(validOptionJSON(t)), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got, unitErr := Extract(doc, "this text would never parse", ValidOptionDocument)
	if unitErr != nil {
		t.Fatalf("expected structured document to pass, got %v", unitErr)
	}
	if _, ok := got["trip"]; !ok {
		t.Fatalf("expected trip key in extracted document")
	}
}

func TestExtractStructuredDocumentWrongShape(t *testing.T) {
	_, unitErr := Extract(map[string]any{"oops": 1}, validOptionJSON(t), ValidOptionDocument)
	if unitErr == nil || unitErr.Kind != FailureValidation {
		t.Fatalf("expected validation failure for wrong-shape structured document, got %v", unitErr)
	}
}

func TestExtractWholeBlob(t *testing.T) {
	got, unitErr := Extract(nil, validOptionJSON(t), ValidOptionDocument)
	if unitErr != nil {
		t.Fatalf("whole-blob extraction failed: %v", unitErr)
	}
	if !ValidOptionDocument(any(got)) {
		t.Fatalf("extracted document does not validate")
	}
}

func TestExtractTextStrategies(t *testing.T) {
	payload := validOptionJSON(t)
	cases := []struct {
		name string
		text string
	}{
		{"fenced block", "Here is the plan:\n```json\n" + payload + "\n```\nEnjoy."},
		{"fenced block no language", "```\n" + payload + "\n```"},
		{"outer braces with prose", "Thought: producing itinerary now " + payload + " done."},
		{"call wrapper quoted string", `final_answer(` + strconv.Quote(payload) + `)`},
		{"call wrapper object literal", "final_answer(" + payload + ")"},
		{"dotted call wrapper", "tools.submit(" + payload + ")"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, unitErr := Extract(nil, tc.text, ValidOptionDocument)
			if unitErr != nil {
				t.Fatalf("extraction failed: %v", unitErr)
			}
			if !ValidOptionDocument(any(got)) {
				t.Fatalf("extracted document does not validate")
			}
		})
	}
}

func TestExtractFirstValidCandidateWins(t *testing.T) {
	payload := validOptionJSON(t)
	// The fenced block parses but has the wrong shape; the valid document
	// only appears inside a call wrapper later in the text.
	text := "```json\n{\"not\": \"an itinerary\"}\n```\nfinal_answer(" + payload + ")"

	got, unitErr := Extract(nil, text, ValidOptionDocument)
	if unitErr != nil {
		t.Fatalf("extraction failed: %v", unitErr)
	}
	if !ValidOptionDocument(any(got)) {
		t.Fatalf("extracted document does not validate")
	}
}

func TestExtractFailureKinds(t *testing.T) {
	// Parses somewhere but never validates.
	_, unitErr := Extract(nil, `{"not": "an itinerary"}`, ValidOptionDocument)
	if unitErr == nil || unitErr.Kind != FailureValidation {
		t.Fatalf("expected validation failure, got %v", unitErr)
	}

	// Nothing parses at all.
	_, unitErr = Extract(nil, "no json anywhere in this reply", ValidOptionDocument)
	if unitErr == nil || unitErr.Kind != FailureExtraction {
		t.Fatalf("expected extraction failure, got %v", unitErr)
	}
}

func TestExtractRepairedCandidate(t *testing.T) {
	// A near-JSON fragment with bare keys and a trailing comma still
	// resolves once the repairer has run.
	text := "```\n{name: \"X\", val: 1,}\n```"
	_, unitErr := Extract(nil, text, func(v any) bool {
		doc, ok := v.(map[string]any)
		return ok && doc["name"] == "X"
	})
	if unitErr != nil {
		t.Fatalf("expected repaired candidate to pass, got %v", unitErr)
	}
}

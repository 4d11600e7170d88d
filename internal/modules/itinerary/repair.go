// README: Best-effort text repair for near-JSON generator output.
package itinerary

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	doubledQuoteRe = regexp.MustCompile(`""([^"]+)""`)
	trailingComma  = regexp.MustCompile(`,\s*([}\]])`)
	bareKeyRe      = regexp.MustCompile(`([{\[,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
)

// Repair normalizes a raw text fragment so it is more likely to parse as
// JSON. It is deterministic, never fails, and is a strict no-op on input that
// already parses. Callers attempt the parse themselves; Repair only improves
// the odds.
//
// Transform order: trim outer whitespace, collapse CSV-style doubled quotes,
// turn literal \n and \t sequences into real characters, drop a trailing
// comma before a closing brace or bracket, and quote bare object keys.
func Repair(raw string) string {
	s := strings.TrimSpace(raw)
	if json.Valid([]byte(s)) {
		return s
	}

	// ""key"" -> "key"; empty-string values are left alone.
	s = doubledQuoteRe.ReplaceAllString(s, `"$1"`)

	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\t`, "\t")

	s = trailingComma.ReplaceAllString(s, "$1")

	// {name: 1} -> {"name": 1}; quoted keys do not match the pattern.
	s = bareKeyRe.ReplaceAllString(s, `$1"$2":`)

	return s
}

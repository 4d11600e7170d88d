// README: Webpage-to-text fetch helper for the generation tools.
package webfetch

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// MaxContentLength caps the text returned for one page so a single fetch
// cannot blow the model's context.
const MaxContentLength = 5000

// DefaultTimeout bounds one fetch; the unit-level timeout at the
// orchestrator is the outer guard.
const DefaultTimeout = 15 * time.Second

var blankLines = regexp.MustCompile(`\n{3,}`)

// Fetcher downloads pages and reduces them to readable text.
type Fetcher struct {
	client *http.Client
}

// NewFetcher builds a Fetcher with the default timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: DefaultTimeout}}
}

// Fetch GETs the URL and returns its readable text: markup stripped, noise
// elements removed, runs of blank lines collapsed, truncated at
// MaxContentLength characters.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("webfetch: build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("webfetch: get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("webfetch: get %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("webfetch: parse %s: %w", url, err)
	}

	// Remove noise to save model tokens.
	doc.Find("script, style, nav, footer, iframe, noscript").Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})

	return Clean(doc.Find("body").Text()), nil
}

// Clean normalizes extracted page text: trims edges, collapses runs of more
// than two newlines, and truncates at MaxContentLength without splitting a
// multibyte rune.
func Clean(text string) string {
	text = strings.TrimSpace(text)
	text = blankLines.ReplaceAllString(text, "\n\n")
	if len(text) > MaxContentLength {
		cut := MaxContentLength
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text
}

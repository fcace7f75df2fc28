// Package clean normalizes the HTML fragments Reddit embeds in its RSS
// summaries into plain text suitable for prompts and rendering.
package clean

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// redditArtifacts are navigation fragments present in every hot.rss
// summary that carry no content.
var redditArtifacts = []string{"[link]", "[comments]", "submitted by", "[removed]", "[deleted]"}

func strictHTMLPolicy() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// StripHTML removes every tag from s, decodes entities and collapses
// whitespace, returning a plain-text representation.
func StripHTML(s string) string {
	s = strictHTMLPolicy().Sanitize(s)
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}

// RedditSnippet extracts a readable self-text snippet from a Reddit RSS
// summary. Link posts carry no self-text: after stripping markup and
// artifacts only username mentions remain, and those yield an empty
// snippet.
func RedditSnippet(rawSummary string, maxLen int) string {
	s := StripHTML(rawSummary)
	for _, artifact := range redditArtifacts {
		s = strings.ReplaceAll(s, artifact, "")
	}
	s = strings.Join(strings.Fields(s), " ")

	substantive := 0
	for _, w := range strings.Fields(s) {
		if !strings.HasPrefix(w, "/u/") && !strings.HasPrefix(w, "u/") {
			substantive++
		}
	}
	if substantive <= 3 {
		return ""
	}
	if runes := []rune(s); maxLen > 0 && len(runes) > maxLen {
		s = string(runes[:maxLen])
	}
	return s
}

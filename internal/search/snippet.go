package search

import (
	"html"
	"regexp"
	"strings"
)

const (
	// snippetHead is how much of the text to show when no needle matches.
	snippetHead = 160
	// Window around the earliest needle match.
	snippetBefore = 60
	snippetAfter  = 80
)

// BuildSnippet extracts a contextual excerpt from the document around the
// earliest query-term match and highlights every matched term. The result
// is fully HTML-escaped before highlight markup is inserted, so it is safe
// to embed directly.
func BuildSnippet(doc IndexedDocument, query string) string {
	text := doc.Summary
	if text == "" {
		text = doc.Body
	}
	text = collapseWhitespace(text)

	needles := Needles(query)
	snippet := excerpt(text, needles)
	return highlight(html.EscapeString(snippet), needles)
}

// excerpt selects the window of text to display. With no match it is a
// plain head truncation; around a match it spans snippetBefore bytes of
// leading and snippetAfter bytes of trailing context, with ellipses
// marking the trimmed sides.
func excerpt(text string, needles []string) string {
	lower := strings.ToLower(text)

	matchAt, matchLen := -1, 0
	for _, needle := range needles {
		i := strings.Index(lower, needle)
		if i >= 0 && (matchAt < 0 || i < matchAt) {
			matchAt, matchLen = i, len(needle)
		}
	}

	if matchAt < 0 {
		if len(text) > snippetHead {
			return text[:snippetHead]
		}
		return text
	}

	start := matchAt - snippetBefore
	if start < 0 {
		start = 0
	}
	end := matchAt + matchLen + snippetAfter
	if end > len(text) {
		end = len(text)
	}

	snippet := text[start:end]
	if start > 0 {
		snippet = "…" + snippet
	}
	if end < len(text) {
		snippet += "…"
	}
	return snippet
}

// highlight wraps every needle occurrence in <mark>. A single alternation
// pass keeps the inserted tags from being re-matched by later needles.
// Needles are HTML-escaped before quoting so they line up with the
// already-escaped snippet text.
func highlight(escaped string, needles []string) string {
	if len(needles) == 0 || escaped == "" {
		return escaped
	}
	quoted := make([]string, 0, len(needles))
	for _, needle := range needles {
		quoted = append(quoted, regexp.QuoteMeta(html.EscapeString(needle)))
	}
	re, err := regexp.Compile("(?i)" + strings.Join(quoted, "|"))
	if err != nil {
		return escaped
	}
	return re.ReplaceAllString(escaped, "<mark>$0</mark>")
}

// collapseWhitespace folds runs of whitespace into single spaces
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

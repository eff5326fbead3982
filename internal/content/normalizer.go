package content

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/telcoin-wiki/sitesearch/internal/search"
)

// faqSummaryLen caps the auto-generated summary for FAQ entries
const faqSummaryLen = 220

// Normalize converts both feeds into the uniform document shape the index
// consumes. Records without an id are skipped; everything else gets
// defaults filled in here so downstream code never sees missing fields.
// Pure function of its input.
func Normalize(pages []PageRecord, faqs []FaqRecord) []search.IndexedDocument {
	docs := make([]search.IndexedDocument, 0, len(pages)+len(faqs))
	docs = append(docs, NormalizePages(pages)...)
	docs = append(docs, NormalizeFaqs(faqs)...)
	return docs
}

// NormalizePages converts page feed records. The body is assembled from
// the summary, all heading titles, and all highlight lines.
func NormalizePages(pages []PageRecord) []search.IndexedDocument {
	docs := make([]search.IndexedDocument, 0, len(pages))
	for _, page := range pages {
		if page.ID == "" {
			continue
		}

		parts := make([]string, 0, 2+len(page.Headings))
		if page.Summary != "" {
			parts = append(parts, page.Summary)
		}
		for _, h := range page.Headings {
			if h.Title != "" {
				parts = append(parts, h.Title)
			}
		}
		for _, hl := range page.Highlights {
			if hl != "" {
				parts = append(parts, hl)
			}
		}

		url := page.URL
		if url == "" {
			url = "#"
		}

		docs = append(docs, search.IndexedDocument{
			Ref:     "page:" + page.ID,
			Type:    search.TypePage,
			Title:   page.Title,
			Summary: page.Summary,
			Body:    collapseWhitespace(strings.Join(parts, " ")),
			URL:     url,
			Tags:    page.Tags,
		})
	}
	return docs
}

// NormalizeFaqs converts FAQ feed records. Answers arrive as HTML; the
// body is the stripped text and the summary its leading slice.
func NormalizeFaqs(faqs []FaqRecord) []search.IndexedDocument {
	docs := make([]search.IndexedDocument, 0, len(faqs))
	for _, faq := range faqs {
		if faq.ID == "" {
			continue
		}

		body := StripHTML(faq.Answer)
		summary := body
		if len(summary) > faqSummaryLen {
			summary = summary[:faqSummaryLen]
		}

		var sources []search.SourceLink
		for _, src := range faq.Sources {
			sources = append(sources, search.SourceLink{Label: src.Label, URL: src.URL})
		}

		docs = append(docs, search.IndexedDocument{
			Ref:     "faq:" + faq.ID,
			Type:    search.TypeFaq,
			Title:   faq.Question,
			Summary: summary,
			Body:    body,
			URL:     "/faq/#" + faq.ID,
			Tags:    faq.Tags,
			Sources: sources,
		})
	}
	return docs
}

// StripHTML reduces an HTML fragment to its visible text using the
// standard tokenizer, skipping script and style content entirely.
func StripHTML(fragment string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	var builder strings.Builder
	skipDepth := 0

	for {
		tokenType := tokenizer.Next()
		switch tokenType {
		case html.ErrorToken:
			// EOF is the normal end; a malformed fragment just yields
			// whatever text was extracted before the error.
			return collapseWhitespace(builder.String())

		case html.StartTagToken:
			token := tokenizer.Token()
			if token.Data == "script" || token.Data == "style" {
				skipDepth++
			}

		case html.EndTagToken:
			token := tokenizer.Token()
			if (token.Data == "script" || token.Data == "style") && skipDepth > 0 {
				skipDepth--
			}

		case html.TextToken:
			if skipDepth == 0 {
				text := strings.TrimSpace(tokenizer.Token().Data)
				if text != "" {
					builder.WriteString(text + " ")
				}
			}
		}
	}
}

// collapseWhitespace folds whitespace runs into single spaces
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

package search

import (
	"strings"
)

// DocType discriminates the two kinds of searchable content
type DocType string

const (
	TypePage DocType = "page"
	TypeFaq  DocType = "faq"
)

// SourceLink points at supporting material for an FAQ answer
type SourceLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// IndexedDocument is the normalized, presentation-ready form of one
// searchable content item. Refs are namespaced by type ("page:<id>",
// "faq:<id>") and unique within one index.
type IndexedDocument struct {
	Ref     string       `json:"ref"`
	Type    DocType      `json:"type"`
	Title   string       `json:"title"`
	Summary string       `json:"summary"`
	Body    string       `json:"body"`
	URL     string       `json:"url"`
	Tags    []string     `json:"tags,omitempty"`
	Sources []SourceLink `json:"sources,omitempty"`
}

// SearchRecord is the lower-cased projection of an IndexedDocument used
// purely for substring matching. Combined concatenates title, summary,
// body and tags for the whole-query bonus.
type SearchRecord struct {
	Title    string
	Summary  string
	Body     string
	Tags     []string
	Combined string
}

// QueryResult is one scored hit, ephemeral per query
type QueryResult struct {
	Ref   string
	Score float64
}

// ResultGroup buckets ranked hits by document type for display
type ResultGroup struct {
	Label string
	Items []QueryResult
}

// maxNeedles bounds scoring and highlighting cost per query
const maxNeedles = 5

// Needles derives the query tokens used for scoring and snippet
// highlighting: lower-cased whitespace fields longer than one character,
// capped at maxNeedles.
func Needles(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	needles := make([]string, 0, maxNeedles)
	for _, field := range fields {
		if len(field) <= 1 {
			continue
		}
		needles = append(needles, field)
		if len(needles) == maxNeedles {
			break
		}
	}
	return needles
}

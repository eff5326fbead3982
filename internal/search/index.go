package search

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Index holds one immutable snapshot of searchable content: the
// presentation documents and their matching projections, keyed by ref.
type Index struct {
	Documents map[string]IndexedDocument
	Records   map[string]SearchRecord
}

// BuildIndex derives a fresh Index from the given documents. It never
// fails: an empty input yields empty maps. Building depends only on its
// input, so rebuilding with the same documents yields an equal index.
func BuildIndex(documents []IndexedDocument) *Index {
	idx := &Index{
		Documents: make(map[string]IndexedDocument, len(documents)),
		Records:   make(map[string]SearchRecord, len(documents)),
	}
	for _, doc := range documents {
		idx.Documents[doc.Ref] = doc
		idx.Records[doc.Ref] = newSearchRecord(doc)
	}
	return idx
}

// newSearchRecord lower-cases every matchable field and precomputes the
// combined projection used for the whole-query bonus.
func newSearchRecord(doc IndexedDocument) SearchRecord {
	rec := SearchRecord{
		Title:   strings.ToLower(doc.Title),
		Summary: strings.ToLower(doc.Summary),
		Body:    strings.ToLower(doc.Body),
	}
	if len(doc.Tags) > 0 {
		rec.Tags = make([]string, 0, len(doc.Tags))
		for _, tag := range doc.Tags {
			rec.Tags = append(rec.Tags, strings.TrimSpace(strings.ToLower(tag)))
		}
	}
	rec.Combined = strings.TrimSpace(
		rec.Title + " " + rec.Summary + " " + rec.Body + " " + strings.Join(rec.Tags, " "))
	return rec
}

// Service owns the live index. Rebuilds swap in a complete replacement
// snapshot under the write lock, so a concurrent query sees either the
// old index or the new one, never a mix.
type Service struct {
	mu     sync.RWMutex
	idx    *Index
	logger *logrus.Entry
}

// NewService returns a Service in the empty state; every query returns
// no results until the first Rebuild.
func NewService(logger *logrus.Entry) *Service {
	return &Service{
		idx:    BuildIndex(nil),
		logger: logger,
	}
}

// Rebuild replaces the current index with one built from documents.
// The old snapshot keeps serving queries until the swap.
func (s *Service) Rebuild(documents []IndexedDocument) {
	idx := BuildIndex(documents)

	s.mu.Lock()
	s.idx = idx
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Infof("Search index rebuilt with %d documents", len(idx.Documents))
	}
}

// Search scores the query against the current index snapshot.
func (s *Service) Search(query string) []QueryResult {
	return s.snapshot().Search(query)
}

// Group buckets ranked results by document type.
func (s *Service) Group(results []QueryResult) []ResultGroup {
	return s.snapshot().Group(results)
}

// Snippet builds the highlighted excerpt for one hit. The second return
// is false when the ref is no longer in the index.
func (s *Service) Snippet(ref, query string) (string, bool) {
	doc, ok := s.Document(ref)
	if !ok {
		return "", false
	}
	return BuildSnippet(doc, query), true
}

// Document looks up the presentation record for a ref.
func (s *Service) Document(ref string) (IndexedDocument, bool) {
	doc, ok := s.snapshot().Documents[ref]
	return doc, ok
}

// Size reports how many documents the current index holds.
func (s *Service) Size() int {
	return len(s.snapshot().Documents)
}

func (s *Service) snapshot() *Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx
}

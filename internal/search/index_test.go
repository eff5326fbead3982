package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telcoin-wiki/sitesearch/internal/search"
)

func TestBuildIndex_EmptyInput(t *testing.T) {
	idx := search.BuildIndex(nil)

	assert.Empty(t, idx.Documents)
	assert.Empty(t, idx.Records)
}

func TestBuildIndex_Projection(t *testing.T) {
	idx := search.BuildIndex([]search.IndexedDocument{
		{
			Ref:     "page:tel",
			Type:    search.TypePage,
			Title:   "The TEL Token",
			Summary: "Native Token",
			Body:    "Telcoin Network gas",
			Tags:    []string{" TEL ", "Token"},
		},
	})

	rec, ok := idx.Records["page:tel"]
	require.True(t, ok)

	assert.Equal(t, "the tel token", rec.Title)
	assert.Equal(t, "native token", rec.Summary)
	assert.Equal(t, "telcoin network gas", rec.Body)
	assert.Equal(t, []string{"tel", "token"}, rec.Tags)
	assert.Equal(t, "the tel token native token telcoin network gas tel token", rec.Combined)
}

func TestBuildIndex_Idempotent(t *testing.T) {
	docs := []search.IndexedDocument{
		{Ref: "page:a", Type: search.TypePage, Title: "Alpha", Tags: []string{"x"}},
		{Ref: "faq:b", Type: search.TypeFaq, Title: "Beta", Body: "beta body"},
	}

	first := search.BuildIndex(docs)
	second := search.BuildIndex(docs)

	assert.Equal(t, first.Records, second.Records)
	assert.Equal(t, first.Documents, second.Documents)
}

func TestService_EmptyUntilRebuild(t *testing.T) {
	svc := search.NewService(nil)

	assert.Zero(t, svc.Size())
	assert.Empty(t, svc.Search("anything"))
}

func TestService_RebuildReplacesIndex(t *testing.T) {
	svc := search.NewService(nil)

	svc.Rebuild([]search.IndexedDocument{
		{Ref: "page:old", Type: search.TypePage, Title: "Old Page"},
	})
	require.Equal(t, 1, svc.Size())
	require.Len(t, svc.Search("old"), 1)

	// A rebuild fully replaces the previous snapshot; nothing lingers.
	svc.Rebuild([]search.IndexedDocument{
		{Ref: "page:new", Type: search.TypePage, Title: "New Page"},
	})
	assert.Equal(t, 1, svc.Size())
	assert.Empty(t, svc.Search("old"))
	assert.Len(t, svc.Search("new"), 1)
}

func TestService_SnippetForMissingRef(t *testing.T) {
	svc := search.NewService(nil)

	_, ok := svc.Snippet("page:ghost", "query")
	assert.False(t, ok)
}

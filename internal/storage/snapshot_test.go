package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telcoin-wiki/sitesearch/internal/content"
	"github.com/telcoin-wiki/sitesearch/internal/storage"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	pages := []content.PageRecord{
		{ID: "wallet", Title: "Telcoin Wallet", Tags: content.TagList{"wallet"}},
	}
	faqs := []content.FaqRecord{
		{ID: "faq1", Question: "What is TELx?", Answer: "<p>TELx</p>"},
	}

	require.NoError(t, store.SavePages(pages))
	require.NoError(t, store.SaveFaqs(faqs))

	gotPages, err := store.LoadPages()
	require.NoError(t, err)
	assert.Equal(t, pages, gotPages)

	gotFaqs, err := store.LoadFaqs()
	require.NoError(t, err)
	assert.Equal(t, faqs, gotFaqs)
}

func TestFileStore_MissingSnapshot(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.LoadPages()
	assert.Error(t, err)

	_, err = store.LoadFaqs()
	assert.Error(t, err)
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	require.NoError(t, store.SavePages(nil))
	pages, err := store.LoadPages()
	require.NoError(t, err)
	assert.Empty(t, pages)
}

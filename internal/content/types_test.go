package content_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telcoin-wiki/sitesearch/internal/content"
)

func TestTagList_CoercesMixedTypes(t *testing.T) {
	var page content.PageRecord
	err := json.Unmarshal([]byte(`{"id":"x","tags":["tel", 2023, true, null, {"nested":"obj"}]}`), &page)
	require.NoError(t, err)

	assert.Equal(t, content.TagList{"tel", "2023", "true"}, page.Tags)
}

func TestTagList_ScalarTag(t *testing.T) {
	var faq content.FaqRecord
	err := json.Unmarshal([]byte(`{"id":"y","question":"q","answer":"a","tags":"solo"}`), &faq)
	require.NoError(t, err)

	assert.Equal(t, content.TagList{"solo"}, faq.Tags)
}

func TestTagList_AbsentStaysEmpty(t *testing.T) {
	var page content.PageRecord
	err := json.Unmarshal([]byte(`{"id":"z"}`), &page)
	require.NoError(t, err)

	assert.Empty(t, page.Tags)
}

package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpus_SuccessCount(t *testing.T) {
	corpus := &Corpus{
		ID: uuid.New(),
		Sources: []SourceDocument{
			{URL: "https://a.tistory.com/1", Success: true, Text: "하나"},
			{URL: "https://example.com", Success: false},
			{URL: "https://blog.naver.com/x/1", Success: true, Text: "둘"},
		},
	}

	assert.Equal(t, 2, corpus.SuccessCount())
}

func TestSourceDocument_OmitsEmptyMetadata(t *testing.T) {
	doc := SourceDocument{URL: "https://example.com", Platform: "unknown"}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "hash")
	assert.NotContains(t, string(data), "fetched_at")
	assert.Contains(t, string(data), `"success":false`)
}

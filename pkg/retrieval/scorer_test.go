package retrieval

import (
	"context"
	"testing"

	"github.com/SouLSoniC07/AI-Tutor/pkg/chunk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordScorerFirstMatchWins(t *testing.T) {
	scorer := NewKeywordScorer()
	chunks := []chunk.Chunk{
		{Text: "Paris is the capital of France", Index: 0},
		{Text: "The capital has the Eiffel Tower", Index: 1},
	}

	selection, err := scorer.Select(context.Background(), "capital", chunks)

	require.NoError(t, err)
	require.NotNil(t, selection)
	assert.Equal(t, 0, selection.Chunk.Index)
	assert.Equal(t, "Paris is the capital of France", selection.Chunk.Text)
}

func TestKeywordScorerKeywordOrderBeatsChunkOrder(t *testing.T) {
	scorer := NewKeywordScorer()
	chunks := []chunk.Chunk{
		{Text: "All about rivers and lakes", Index: 0},
		{Text: "Mountains are tall", Index: 1},
	}

	// "mountains" comes before "rivers" in the question, so the later chunk
	// wins even though an earlier chunk matches a later keyword.
	selection, err := scorer.Select(context.Background(), "tell me about mountains and rivers", chunks)

	require.NoError(t, err)
	require.NotNil(t, selection)
	assert.Equal(t, 1, selection.Chunk.Index)
}

func TestKeywordScorerCaseInsensitive(t *testing.T) {
	scorer := NewKeywordScorer()
	chunks := []chunk.Chunk{
		{Text: "PARIS is the CAPITAL of France", Index: 0},
	}

	selection, err := scorer.Select(context.Background(), "Capital", chunks)

	require.NoError(t, err)
	require.NotNil(t, selection)
	assert.Equal(t, 0, selection.Chunk.Index)
}

func TestKeywordScorerShortWordsIgnored(t *testing.T) {
	scorer := NewKeywordScorer()
	chunks := []chunk.Chunk{
		{Text: "the cat sat on the mat", Index: 0},
	}

	// Every question word is three characters or fewer, so nothing matches.
	selection, err := scorer.Select(context.Background(), "cat sat mat", chunks)

	require.NoError(t, err)
	assert.Nil(t, selection)
}

func TestKeywordScorerNoMatch(t *testing.T) {
	scorer := NewKeywordScorer()
	chunks := []chunk.Chunk{
		{Text: "Paris is the capital of France", Index: 0},
	}

	selection, err := scorer.Select(context.Background(), "photosynthesis chlorophyll", chunks)

	require.NoError(t, err)
	assert.Nil(t, selection)
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     []string
	}{
		{
			name:     "keeps order and drops short words",
			question: "What is the capital of France?",
			want:     []string{"what", "capital", "france"},
		},
		{
			name:     "punctuation is not part of a word",
			question: "explain: binary-search, trees!",
			want:     []string{"explain", "binary", "search", "trees"},
		},
		{
			name:     "empty question",
			question: "",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractKeywords(tt.question))
		})
	}
}

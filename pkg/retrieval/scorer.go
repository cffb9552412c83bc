// Package retrieval scores document chunks against a question and picks the
// best candidate passage.
package retrieval

import (
	"context"
	"strings"
	"unicode"

	"github.com/SouLSoniC07/AI-Tutor/pkg/chunk"
)

// Selection is the winning chunk of one scoring pass. Score is 1 for the
// binary keyword strategy and the cosine similarity for the embedding one.
type Selection struct {
	Chunk chunk.Chunk
	Score float64
}

// Scorer selects the most relevant chunk for a question. A nil Selection with
// a nil error means no chunk qualified; the caller owns the fallback path.
type Scorer interface {
	Name() string
	Select(ctx context.Context, question string, chunks []chunk.Chunk) (*Selection, error)
}

// minKeywordLength drops short/common tokens ("is", "the", "what").
const minKeywordLength = 3

// KeywordScorer is the zero-dependency strategy: for each question keyword, in
// question order, it scans the chunks in document order and returns the first
// case-insensitive substring hit. Intentionally a short-circuit search, not a
// ranked maximum-overlap score.
type KeywordScorer struct{}

func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{}
}

func (s *KeywordScorer) Name() string { return "keyword" }

func (s *KeywordScorer) Select(_ context.Context, question string, chunks []chunk.Chunk) (*Selection, error) {
	for _, keyword := range extractKeywords(question) {
		for _, c := range chunks {
			if strings.Contains(strings.ToLower(c.Text), keyword) {
				return &Selection{Chunk: c, Score: 1}, nil
			}
		}
	}
	return nil, nil
}

// extractKeywords lower-cases the question and keeps words longer than three
// characters, preserving question order.
func extractKeywords(question string) []string {
	words := strings.FieldsFunc(strings.ToLower(question), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	keywords := make([]string, 0, len(words))
	for _, word := range words {
		if len([]rune(word)) > minKeywordLength {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

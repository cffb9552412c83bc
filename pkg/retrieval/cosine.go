package retrieval

import (
	"context"
	"fmt"
	"math"

	"github.com/SouLSoniC07/AI-Tutor/pkg/chunk"
	"github.com/SouLSoniC07/AI-Tutor/pkg/embedding"
)

// EmbeddingScorer ranks chunks by cosine similarity between the question
// vector and each chunk vector. Two calls per request: one batched for the
// chunks, one for the question. Service failures propagate as
// *embedding.ServiceError for the selector boundary to absorb.
type EmbeddingScorer struct {
	provider embedding.Provider
}

func NewEmbeddingScorer(provider embedding.Provider) *EmbeddingScorer {
	return &EmbeddingScorer{provider: provider}
}

func (s *EmbeddingScorer) Name() string { return "embedding" }

func (s *EmbeddingScorer) Select(ctx context.Context, question string, chunks []chunk.Chunk) (*Selection, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	chunkVectors, err := s.provider.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed chunks: %w", err)
	}

	questionVectors, err := s.provider.EmbedTexts(ctx, []string{question})
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	questionVector := questionVectors[0]

	// Strictly-greater comparison over chunks in index order: equal maxima
	// resolve to the earliest chunk.
	best := -1
	bestScore := 0.0
	for i, vec := range chunkVectors {
		score := cosineSimilarity(questionVector, vec)
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	return &Selection{Chunk: chunks[best], Score: bestScore}, nil
}

// cosineSimilarity assumes nothing about normalization and computes the full
// quotient; for the unit vectors the provider returns this is a dot product.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, magA, magB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		magA += float64(v) * float64(v)
	}
	for _, v := range b {
		magB += float64(v) * float64(v)
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

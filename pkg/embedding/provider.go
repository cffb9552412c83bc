// Package embedding talks to the external sentence-embedding service.
package embedding

import (
	"context"
	"fmt"
	"math"
)

// Provider defines the interface for generating text embeddings. One call may
// carry many texts; the service returns one vector per input, same order.
type Provider interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ServiceError marks any failure talking to the embedding service (transport,
// timeout, non-200, malformed body) so the answer pipeline can degrade to its
// diagnostic response instead of surfacing an HTTP error.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("embedding service error: %v", e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// normalizeVector normalizes a vector to unit length (magnitude = 1).
// Cosine similarity over normalized vectors reduces to a dot product.
func normalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	// Avoid division by zero
	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}

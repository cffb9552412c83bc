package retrieval

import (
	"fmt"

	"github.com/SouLSoniC07/AI-Tutor/pkg/embedding"
)

const (
	StrategyKeyword   = "keyword"
	StrategyEmbedding = "embedding"
)

// NewScorer builds the configured chunk-scoring strategy.
func NewScorer(strategy string, provider embedding.Provider) (Scorer, error) {
	switch strategy {
	case StrategyKeyword, "":
		return NewKeywordScorer(), nil
	case StrategyEmbedding:
		if provider == nil {
			return nil, fmt.Errorf("embedding strategy requires an embedding provider")
		}
		return NewEmbeddingScorer(provider), nil
	default:
		return nil, fmt.Errorf("unknown scoring strategy: %s", strategy)
	}
}

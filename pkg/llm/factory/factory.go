package factory

import (
	"fmt"

	"github.com/SouLSoniC07/AI-Tutor/pkg/llm"
	"github.com/SouLSoniC07/AI-Tutor/pkg/llm/ollama"
)

// NewProvider builds the configured generation backend. Only Ollama is wired
// today; the switch keeps the seam for hosted providers.
func NewProvider(providerName, model, ollamaBaseURL string) (llm.Provider, error) {
	switch providerName {
	case "ollama", "":
		return ollama.NewOllamaProvider(ollamaBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", providerName)
	}
}

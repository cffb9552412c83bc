package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPProvider implements Provider against the sentence-transformer sidecar:
// POST <base>/embed {"texts": [...]} -> {"embeddings": [[...], ...]}
type HTTPProvider struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPProvider(baseURL string, timeout time.Duration) Provider {
	if baseURL == "" {
		baseURL = "http://localhost:5678"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPProvider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

type embedRequest struct {
	Texts []string `json:"texts"`
}

type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

func (p *HTTPProvider) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	jsonBody, err := json.Marshal(embedRequest{Texts: texts})
	if err != nil {
		return nil, &ServiceError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	endpoint := fmt.Sprintf("%s/embed", p.BaseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, &ServiceError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, &ServiceError{Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ServiceError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ServiceError{Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))}
	}

	var embedResp embedResponse
	if err := json.Unmarshal(bodyBytes, &embedResp); err != nil {
		return nil, &ServiceError{Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	if len(embedResp.Embeddings) != len(texts) {
		return nil, &ServiceError{Err: fmt.Errorf("expected %d embeddings, got %d", len(texts), len(embedResp.Embeddings))}
	}

	// Normalize every vector so downstream cosine similarity is a plain dot product.
	for i, vec := range embedResp.Embeddings {
		embedResp.Embeddings[i] = normalizeVector(vec)
	}

	return embedResp.Embeddings, nil
}

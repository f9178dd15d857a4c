package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"furnimarket/pkg/logger"
)

// HTTPImageAnalyzer calls an external vision endpoint that accepts a raw image
// body and answers with a ListingSuggestion JSON document.
type HTTPImageAnalyzer struct {
	endpoint   string
	httpClient *http.Client
}

func NewHTTPImageAnalyzer(endpoint string) *HTTPImageAnalyzer {
	return &HTTPImageAnalyzer{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (a *HTTPImageAnalyzer) Analyze(ctx context.Context, image io.Reader, contentType string) (*ListingSuggestion, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, image)
	if err != nil {
		return nil, fmt.Errorf("failed to build analyzer request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyzer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logger.Warn("Analyzer returned status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("analyzer returned status %d", resp.StatusCode)
	}

	var suggestion ListingSuggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestion); err != nil {
		return nil, fmt.Errorf("failed to decode analyzer response: %w", err)
	}

	return &suggestion, nil
}

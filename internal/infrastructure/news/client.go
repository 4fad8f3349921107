// Package news implements the outbound client for the headline-search
// provider. Errors fall into two kinds: a response was received with a
// non-2xx status (domain.UpstreamError, relayed to callers) or no response
// was received at all (domain.ErrUpstreamUnavailable).
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gustavo-ramos/newsfeed-backend/internal/domain"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/config"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.NewsConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		// No client timeout: a slow provider is bounded only by the
		// transport defaults.
		httpClient: &http.Client{},
	}
}

// TopHeadlines fetches headlines scoped to a country code, filtered by the
// given query term. The successful payload is returned verbatim.
func (c *Client) TopHeadlines(ctx context.Context, country, query string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/top-headlines", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building news request: %w", err)
	}

	params := url.Values{}
	params.Set("country", country)
	params.Set("q", query)
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading news response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(body, resp.StatusCode),
		}
	}

	return json.RawMessage(body), nil
}

// extractMessage pulls the provider's error message out of its body when
// present, falling back to the HTTP status text.
func extractMessage(body []byte, statusCode int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return http.StatusText(statusCode)
}

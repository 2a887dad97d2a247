package medusa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"colorful-history/internal/domain/regions"
)

const publishableKeyHeader = "x-publishable-api-key"

// ErrUpstreamStatus is returned for non-2xx store API responses.
var ErrUpstreamStatus = errors.New("medusa: unexpected status")

// Client talks to the Medusa store API.
type Client struct {
	baseURL        string
	publishableKey string
	http           *http.Client
}

func NewClient(baseURL, publishableKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:        strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		publishableKey: publishableKey,
		http:           httpClient,
	}
}

type regionsResponse struct {
	Regions []regions.Region `json:"regions"`
}

// ListRegions implements regions.Source.
func (c *Client) ListRegions(ctx context.Context) ([]regions.Region, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/store/regions", nil)
	if err != nil {
		return nil, fmt.Errorf("medusa: build request: %w", err)
	}
	req.Header.Set(publishableKeyHeader, c.publishableKey)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("medusa: list regions: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, res.StatusCode)
	}

	var body regionsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("medusa: decode regions: %w", err)
	}
	return body.Regions, nil
}

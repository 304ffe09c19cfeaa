package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pacsflow/pacsflow/internal/config"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
)

// GeocodeClient defines the interface for forward geocoding lookups
type GeocodeClient interface {
	Search(ctx context.Context, query string) ([]Result, error)
	SearchOne(ctx context.Context, query string) (*Result, error)
}

// Result is a single geocoding match
type Result struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Class       string `json:"class"`
	Type        string `json:"type"`
}

// Client handles geocoding API calls against a Nominatim compatible endpoint
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *retryablehttp.Client
	logger     *logger.Logger
}

// NewClient creates a new geocoding client
func NewClient(cfg *config.Configuration, log *logger.Logger) GeocodeClient {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 3
	httpClient.HTTPClient.Timeout = cfg.Geocoding.Timeout
	httpClient.Logger = log.GetRetryableHTTPLogger()

	return &Client{
		baseURL:    cfg.Geocoding.BaseURL,
		userAgent:  cfg.Geocoding.UserAgent,
		httpClient: httpClient,
		logger:     log,
	}
}

// Search performs a forward geocoding lookup for a free-form address query
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	if query == "" {
		return nil, ierr.NewError("query is required").
			WithHint("Provide an address to geocode").
			Mark(ierr.ErrValidation)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "5")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, ierr.NewError("failed to create HTTP request").Mark(ierr.ErrInternal)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Errorw("geocoding request failed", "error", err, "query", query)
		return nil, ierr.WithError(err).
			WithHint("Unable to reach the geocoding service").
			Mark(ierr.ErrHTTPClient)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ierr.NewError("failed to read geocoding response").Mark(ierr.ErrHTTPClient)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Errorw("geocoding API error", "status", resp.StatusCode, "query", query)
		return nil, ierr.NewError("geocoding API error").
			WithHint(fmt.Sprintf("HTTP status %d", resp.StatusCode)).
			Mark(ierr.ErrHTTPClient)
	}

	var results []Result
	if err := json.Unmarshal(respBody, &results); err != nil {
		return nil, ierr.NewError("failed to parse geocoding response").Mark(ierr.ErrHTTPClient)
	}

	c.logger.Debugw("geocoding search completed", "query", query, "results", len(results))

	return results, nil
}

// SearchOne returns the best match for a query or a not found error
func (c *Client) SearchOne(ctx context.Context, query string) (*Result, error) {
	results, err := c.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ierr.NewError("no geocoding results").
			WithHint("No location matched the given address").
			WithReportableDetails(map[string]interface{}{
				"query": query,
			}).
			Mark(ierr.ErrNotFound)
	}
	return &results[0], nil
}

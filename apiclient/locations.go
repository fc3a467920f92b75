// Package apiclient calls the InsiderJobs HTTP API.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/R3Claimers/InsiderJobs/models"
)

// LocationsPath is the public city suggestion route
const LocationsPath = "/api/users/locations"

// NewLocationsRequest builds a suggestion request against baseURL,
// e.g. "http://localhost:5000".
func NewLocationsRequest(ctx context.Context, baseURL, query string) (*http.Request, error) {
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	u := strings.TrimRight(baseURL, "/") + LocationsPath + "?" + url.Values{"query": {query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// FetchLocations runs one suggestion request. A body reporting
// success=false is returned as an error carrying the server message.
func FetchLocations(ctx context.Context, client *http.Client, baseURL, query string) ([]models.CitySuggestion, error) {
	req, err := NewLocationsRequest(ctx, baseURL, query)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var body models.LocationsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if !body.Success {
		msg := body.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("locations request unsuccessful: %s", msg)
	}

	return body.Cities, nil
}

// LocationsClient binds FetchLocations to a server so it can back an autocomplete session.
type LocationsClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// FetchLocations implements location.Fetcher.
func (c *LocationsClient) FetchLocations(ctx context.Context, query string) ([]models.CitySuggestion, error) {
	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return FetchLocations(ctx, client, c.BaseURL, query)
}

package location

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/R3Claimers/InsiderJobs/config"
	"github.com/R3Claimers/InsiderJobs/models"
	"github.com/R3Claimers/InsiderJobs/utils"
)

// Provider search parameters.
const (
	MaxRows      = 20
	FeatureClass = "P"
)

const maxResponseBytes = 1 << 20

// ErrNoResults is returned when a provider response has no geonames collection.
var ErrNoResults = errors.New("geonames: response has no results collection")

// ProviderError is an error object reported in a provider response body,
// e.g. an exhausted daily credit limit for the account.
type ProviderError struct {
	Code    int64
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("geonames: %s (code %d)", e.Message, e.Code)
}

// GeoNamesClient queries the GeoNames searchJSON endpoint.
type GeoNamesClient struct {
	baseURL    string
	username   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewGeoNamesClient creates a client from configuration. A zero rate disables throttling.
func NewGeoNamesClient(cfg *config.Config) *GeoNamesClient {
	limit := rate.Inf
	if cfg.GeoNamesRatePerSecond > 0 {
		limit = rate.Limit(cfg.GeoNamesRatePerSecond)
	}
	burst := cfg.GeoNamesBurst
	if burst < 1 {
		burst = 1
	}

	username := cfg.GeoNamesUsername
	if username == "" {
		username = "demo"
	}

	return &GeoNamesClient{
		baseURL:    cfg.GeoNamesURL,
		username:   username,
		httpClient: utils.NewHTTPClient(cfg.GeoNamesTimeout, ""),
		limiter:    rate.NewLimiter(limit, burst),
	}
}

// SearchURL returns the provider URL for a name prefix search.
func (c *GeoNamesClient) SearchURL(query string) string {
	params := url.Values{}
	params.Set("name_startsWith", query)
	params.Set("maxRows", strconv.Itoa(MaxRows))
	params.Set("featureClass", FeatureClass)
	params.Set("username", c.username)
	params.Set("orderby", "relevance")
	params.Set("style", "FULL")
	return c.baseURL + "?" + params.Encode()
}

// SearchCities runs one provider call. Results keep the provider's relevance order.
func (c *GeoNamesClient) SearchCities(ctx context.Context, query string) ([]models.CitySuggestion, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geonames: rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SearchURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("geonames: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geonames: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("geonames: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("geonames: failed to read response: %w", err)
	}

	return ParseSearchResponse(body)
}

// ParseSearchResponse maps a searchJSON body to suggestions.
func ParseSearchResponse(body []byte) ([]models.CitySuggestion, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("geonames: malformed JSON response")
	}

	doc := gjson.ParseBytes(body)
	if status := doc.Get("status"); status.Exists() {
		return nil, &ProviderError{
			Code:    status.Get("value").Int(),
			Message: status.Get("message").String(),
		}
	}

	results := doc.Get("geonames")
	if !results.IsArray() {
		return nil, ErrNoResults
	}

	entries := results.Array()
	cities := make([]models.CitySuggestion, 0, len(entries))
	for _, entry := range entries {
		cities = append(cities, NewCitySuggestion(
			entry.Get("name").String(),
			entry.Get("adminName1").String(),
			entry.Get("countryName").String(),
		))
	}
	return cities, nil
}

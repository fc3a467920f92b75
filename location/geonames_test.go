package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R3Claimers/InsiderJobs/config"
)

func newTestClient(url string) *GeoNamesClient {
	cfg := config.Default()
	cfg.GeoNamesURL = url
	cfg.GeoNamesUsername = "tester"
	cfg.GeoNamesTimeout = time.Second
	cfg.GeoNamesRatePerSecond = 0
	return NewGeoNamesClient(cfg)
}

func TestSearchCitiesRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Spri", q.Get("name_startsWith"))
		assert.Equal(t, "20", q.Get("maxRows"))
		assert.Equal(t, "P", q.Get("featureClass"))
		assert.Equal(t, "tester", q.Get("username"))
		assert.Equal(t, "relevance", q.Get("orderby"))
		assert.Equal(t, "FULL", q.Get("style"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totalResultsCount":2,"geonames":[
			{"name":"Springfield","adminName1":"Illinois","countryName":"United States"},
			{"name":"Springfield","adminName1":"Missouri","countryName":"United States"}
		]}`))
	}))
	defer srv.Close()

	cities, err := newTestClient(srv.URL).SearchCities(context.Background(), "Spri")
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Springfield, Illinois", cities[0].Display)
	assert.Equal(t, "Springfield, Missouri", cities[1].Display)
}

func TestSearchCitiesErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{}`},
		{"malformed", http.StatusOK, `{"geonames":[`},
		{"missing results", http.StatusOK, `{"totalResultsCount":0}`},
		{"provider status", http.StatusOK, `{"status":{"message":"user account not enabled","value":10}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			cities, err := newTestClient(srv.URL).SearchCities(context.Background(), "Paris")
			assert.Error(t, err)
			assert.Nil(t, cities)
		})
	}
}

func TestSearchCitiesTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(srv.URL).SearchCities(ctx, "Paris")
	assert.Error(t, err)
}

func TestParseSearchResponse(t *testing.T) {
	cities, err := ParseSearchResponse([]byte(`{"geonames":[{"name":"Sao &amp; Paulo","countryName":"Brazil"}]}`))
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Sao & Paulo", cities[0].Name)
	assert.Equal(t, "Sao & Paulo", cities[0].Display)
	assert.Empty(t, cities[0].State)

	cities, err = ParseSearchResponse([]byte(`{"geonames":[]}`))
	require.NoError(t, err)
	assert.Empty(t, cities)

	_, err = ParseSearchResponse([]byte(`{"status":{"message":"limit exceeded","value":18}}`))
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, int64(18), perr.Code)

	_, err = ParseSearchResponse([]byte(`{"geonames":{}}`))
	assert.ErrorIs(t, err, ErrNoResults)
}

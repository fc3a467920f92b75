package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocationsRequest(t *testing.T) {
	req, err := NewLocationsRequest(context.Background(), "http://localhost:5000/", "São Paulo & co")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/users/locations", req.URL.Path)
	assert.Equal(t, "São Paulo & co", req.URL.Query().Get("query"))

	_, err = NewLocationsRequest(context.Background(), "", "x")
	assert.Error(t, err)
}

func TestFetchLocations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("query") {
		case "Paris":
			w.Write([]byte(`{"success":true,"cities":[{"name":"Paris","state":"Île-de-France","country":"France","display":"Paris, Île-de-France"}]}`))
		case "fail":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"message":"Error fetching locations"}`))
		default:
			w.Write([]byte(`not json`))
		}
	}))
	defer srv.Close()

	c := &LocationsClient{BaseURL: srv.URL}

	cities, err := c.FetchLocations(context.Background(), "Paris")
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Paris, Île-de-France", cities[0].Display)

	_, err = c.FetchLocations(context.Background(), "fail")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error fetching locations")

	_, err = c.FetchLocations(context.Background(), "garbage")
	assert.Error(t, err)
}

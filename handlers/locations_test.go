package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R3Claimers/InsiderJobs/location"
	"github.com/R3Claimers/InsiderJobs/models"
)

type countingProvider struct {
	calls  atomic.Int32
	cities []models.CitySuggestion
	err    error
}

func (p *countingProvider) SearchCities(ctx context.Context, query string) ([]models.CitySuggestion, error) {
	p.calls.Add(1)
	return p.cities, p.err
}

func newLocationRouter(p location.Provider) *gin.Engine {
	rt := &Router{Locations: NewLocationHandler(location.NewService(p, time.Second, nil))}

	r := gin.New()
	rt.RegisterRootRoutes(r)
	api := r.Group("/api")
	api.GET("/users/locations", rt.Locations.GetLocations)
	return r
}

func getLocations(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLocationRoutesWithService(t *testing.T) {
	paths := []string{"/api/users/locations", "/locations"}

	t.Run("provider outage answers an empty list", func(t *testing.T) {
		p := &countingProvider{err: errors.New("dial tcp: connection refused")}
		r := newLocationRouter(p)

		for _, path := range paths {
			w := getLocations(r, path+"?query=Paris")
			require.Equal(t, http.StatusOK, w.Code, path)
			assert.JSONEq(t, `{"success":true,"cities":[]}`, w.Body.String(), path)
		}
		assert.Equal(t, int32(2), p.calls.Load())
	})

	t.Run("short queries never reach the provider", func(t *testing.T) {
		p := &countingProvider{cities: []models.CitySuggestion{location.NewCitySuggestion("Springfield", "Illinois", "United States")}}
		r := newLocationRouter(p)

		for _, path := range paths {
			for _, q := range []string{"", "?query=", "?query=S", "?query=%C3%A9"} {
				w := getLocations(r, path+q)
				require.Equal(t, http.StatusOK, w.Code, path+q)
				assert.JSONEq(t, `{"success":true,"cities":[]}`, w.Body.String(), path+q)
			}
		}
		assert.Zero(t, p.calls.Load())
	})

	t.Run("suggestions pass through", func(t *testing.T) {
		p := &countingProvider{cities: []models.CitySuggestion{location.NewCitySuggestion("Springfield", "Illinois", "United States")}}
		r := newLocationRouter(p)

		for _, path := range paths {
			w := getLocations(r, path+"?query=Spr")
			require.Equal(t, http.StatusOK, w.Code)
			resp := decode[models.LocationsResponse](t, w)
			assert.True(t, resp.Success)
			require.Len(t, resp.Cities, 1)
			assert.Equal(t, "Springfield, Illinois", resp.Cities[0].Display)
		}
		assert.Equal(t, int32(2), p.calls.Load())
	})
}

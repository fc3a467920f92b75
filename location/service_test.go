package location

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R3Claimers/InsiderJobs/metrics"
	"github.com/R3Claimers/InsiderJobs/models"
)

type fakeProvider struct {
	calls  atomic.Int32
	cities []models.CitySuggestion
	err    error
	block  bool
}

func (p *fakeProvider) SearchCities(ctx context.Context, query string) ([]models.CitySuggestion, error) {
	p.calls.Add(1)
	if p.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return p.cities, p.err
}

func TestServiceShortQuery(t *testing.T) {
	for _, q := range []string{"", "a", "é", "東"} {
		p := &fakeProvider{}
		cities, err := NewService(p, time.Second, nil).Search(context.Background(), q)
		require.NoError(t, err)
		assert.NotNil(t, cities)
		assert.Empty(t, cities)
		assert.Zero(t, p.calls.Load(), "query %q must not reach the provider", q)
	}
}

func TestServiceKeepsProviderOrder(t *testing.T) {
	p := &fakeProvider{cities: []models.CitySuggestion{
		NewCitySuggestion("Berlin", "Land Berlin", "Germany"),
		NewCitySuggestion("Bern", "Bern", "Switzerland"),
	}}
	m := metrics.NewManager()

	cities, err := NewService(p, time.Second, m).Search(context.Background(), "Ber")
	require.NoError(t, err)
	assert.Equal(t, p.cities, cities)
	assert.Equal(t, int32(1), p.calls.Load())

	expected := `
# HELP insiderjobs_locations_lookups_total Location suggestion lookups by outcome
# TYPE insiderjobs_locations_lookups_total counter
insiderjobs_locations_lookups_total{outcome="ok"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "insiderjobs_locations_lookups_total"))
}

func TestServiceDegradesOnProviderFailure(t *testing.T) {
	p := &fakeProvider{err: errors.New("connection refused")}

	m := metrics.NewManager()
	cities, err := NewService(p, time.Second, m).Search(context.Background(), "Paris")
	require.NoError(t, err)
	assert.NotNil(t, cities)
	assert.Empty(t, cities)
	n, err := testutil.GatherAndCount(m.Registry(), "insiderjobs_locations_lookups_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestServiceTimeout(t *testing.T) {
	p := &fakeProvider{block: true}

	start := time.Now()
	cities, err := NewService(p, 30*time.Millisecond, nil).Search(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Empty(t, cities)
	assert.Less(t, time.Since(start), time.Second)
}

package location

import (
	"context"
	"log"
	"time"

	"github.com/R3Claimers/InsiderJobs/metrics"
	"github.com/R3Claimers/InsiderJobs/models"
)

// Provider is an upstream place-name search.
type Provider interface {
	SearchCities(ctx context.Context, query string) ([]models.CitySuggestion, error)
}

// Service answers suggestion lookups. Provider failures never reach the
// caller: they are logged and degrade to an empty list.
type Service struct {
	provider Provider
	timeout  time.Duration
	metrics  *metrics.Manager
}

// NewService creates a lookup service. A non-positive timeout leaves the
// caller's context deadline as the only bound.
func NewService(provider Provider, timeout time.Duration, m *metrics.Manager) *Service {
	return &Service{
		provider: provider,
		timeout:  timeout,
		metrics:  m,
	}
}

// Search returns suggestions for query in provider order. Queries shorter than
// MinQueryLength return an empty list without contacting the provider.
func (s *Service) Search(ctx context.Context, query string) ([]models.CitySuggestion, error) {
	if !IsSearchable(query) {
		s.metrics.RecordLocationLookup(metrics.LookupShortQuery)
		return []models.CitySuggestion{}, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	cities, err := s.provider.SearchCities(ctx, query)
	s.metrics.ObserveProvider(err, time.Since(start))

	if err != nil {
		log.Printf("[Locations] Error fetching cities for %q: %v", query, err)
		s.metrics.RecordLocationLookup(metrics.LookupDegraded)
		return []models.CitySuggestion{}, nil
	}

	if cities == nil {
		cities = []models.CitySuggestion{}
	}
	s.metrics.RecordLocationLookup(metrics.LookupOK)
	return cities, nil
}

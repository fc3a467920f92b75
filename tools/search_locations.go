package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/R3Claimers/InsiderJobs/models"
)

// LocationSearcher returns city suggestions for a query
type LocationSearcher interface {
	Search(ctx context.Context, query string) ([]models.CitySuggestion, error)
}

// SearchLocationsTool exposes city autocomplete to agents
type SearchLocationsTool struct {
	searcher LocationSearcher
}

// NewSearchLocationsTool creates a new location search tool
func NewSearchLocationsTool(searcher LocationSearcher) *SearchLocationsTool {
	return &SearchLocationsTool{searcher: searcher}
}

func (t *SearchLocationsTool) Name() string {
	return "search_locations"
}

func (t *SearchLocationsTool) Description() string {
	return `Suggest populated places whose name starts with the query.
Queries shorter than 2 characters return no suggestions.
Returns cities in relevance order with name, state, country and a display label.`
}

func (t *SearchLocationsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Beginning of a city name, e.g. \"Spring\"",
			},
		},
		"required": []string{"query"},
	}
}

// SearchLocationsInput represents the input for location search
type SearchLocationsInput struct {
	Query string `json:"query"`
}

func (t *SearchLocationsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in SearchLocationsInput
	if err := decodeInput(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	cities, err := t.searcher.Search(ctx, in.Query)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("location search failed: %v", err))
	}

	return NewSuccessResult(models.LocationsResponse{Success: true, Cities: cities})
}

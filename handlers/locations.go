package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/R3Claimers/InsiderJobs/models"
)

// LocationHandler serves city suggestions
type LocationHandler struct {
	searcher LocationSearcher
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(searcher LocationSearcher) *LocationHandler {
	return &LocationHandler{searcher: searcher}
}

// GetLocations returns populated places whose name starts with the query
// @Summary Suggest cities
// @Description Suggest populated places for a name prefix. Queries shorter than 2 characters return an empty list; provider outages also return an empty list.
// @Tags Locations
// @Produce json
// @Param query query string true "Beginning of a city name"
// @Success 200 {object} models.LocationsResponse "City suggestions in relevance order"
// @Failure 500 {object} models.MessageResponse "Error fetching locations"
// @Router /users/locations [get]
func (h *LocationHandler) GetLocations(c *gin.Context) {
	cities, err := h.searcher.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		log.Printf("[LocationHandler] Search error: %v", err)
		fail(c, http.StatusInternalServerError, "Error fetching locations")
		return
	}

	if cities == nil {
		cities = []models.CitySuggestion{}
	}
	c.JSON(http.StatusOK, models.LocationsResponse{
		Success: true,
		Cities:  cities,
	})
}

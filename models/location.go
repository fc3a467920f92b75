package models

// CitySuggestion is a single populated place returned by the location search.
// Display is Name, or "Name, State" when State is non-empty.
type CitySuggestion struct {
	Name    string `json:"name" example:"Springfield"`
	State   string `json:"state" example:"Illinois"`
	Country string `json:"country" example:"United States"`
	Display string `json:"display" example:"Springfield, Illinois"`
}

// LocationsResponse is the body of GET /locations
type LocationsResponse struct {
	Success bool             `json:"success" example:"true"`
	Cities  []CitySuggestion `json:"cities"`
	Message string           `json:"message,omitempty"`
}

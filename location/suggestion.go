// Package location implements city suggestions: the GeoNames-backed server
// search and the debounced autocomplete session that consumes it.
package location

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/R3Claimers/InsiderJobs/models"
)

// MinQueryLength is the shortest query, in characters, that is ever sent to a provider.
const MinQueryLength = 2

// IsSearchable reports whether query is long enough to be searched. Length
// is counted in characters, not bytes.
func IsSearchable(query string) bool {
	return utf8.RuneCountInString(query) >= MinQueryLength
}

// DecodeEntities resolves HTML character references such as "&amp;" or "&#233;".
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return html.UnescapeString(s)
}

// DisplayLabel is name, or "name, region" when region is non-empty.
func DisplayLabel(name, region string) string {
	if region == "" {
		return name
	}
	return name + ", " + region
}

// NewCitySuggestion builds a suggestion from provider text, decoding entities
// in every field before composing the display label.
func NewCitySuggestion(name, region, country string) models.CitySuggestion {
	name = DecodeEntities(name)
	region = DecodeEntities(region)
	return models.CitySuggestion{
		Name:    name,
		State:   region,
		Country: DecodeEntities(country),
		Display: DisplayLabel(name, region),
	}
}

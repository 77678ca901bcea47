package scraper

import (
	"fmt"
	"strings"

	"rentscout/internal/models"
)

// BuildSearchURL constructs a portal search URL from query entities, e.g.
// "/apartments-for-rent-in-east-legon?bed=2". An unconstrained query falls
// back to the country-wide rentals page.
func BuildSearchURL(baseURL string, q models.Query) string {
	slug := "properties"

	switch q.PropertyType {
	case models.PropertyHouse, models.PropertyTownhouse:
		slug = "houses"
	case models.PropertyApartment:
		slug = "apartments"
	}

	parts := []string{slug, "for-rent"}

	if q.Location != "" {
		parts = append(parts, "in-"+strings.ReplaceAll(strings.ToLower(q.Location), " ", "-"))
	} else {
		parts = append(parts, "in-ghana")
	}

	url := strings.TrimSuffix(baseURL, "/") + "/" + strings.Join(parts, "-")

	if q.Bedrooms != models.AnyBedrooms {
		url += fmt.Sprintf("?bed=%d", q.Bedrooms)
	}

	return url
}

package normalizer

import (
	"strings"

	"rentscout/internal/models"
)

// propertyKeyword maps one keyword found in listing text to a property type.
// Order matters: "townhouse" must be checked before "house".
type propertyKeyword struct {
	keyword  string
	property models.PropertyType
}

var propertyKeywords = []propertyKeyword{
	{"townhouse", models.PropertyTownhouse},
	{"town house", models.PropertyTownhouse},
	{"apartment", models.PropertyApartment},
	{"flat", models.PropertyApartment},
	{"house", models.PropertyHouse},
	{"bungalow", models.PropertyHouse},
	{"villa", models.PropertyHouse},
}

// ClassifyPropertyType resolves listing text to a property type by keyword
// lookup, defaulting to unknown.
func ClassifyPropertyType(text string) models.PropertyType {
	lowered := strings.ToLower(text)

	for _, pk := range propertyKeywords {
		if strings.Contains(lowered, pk.keyword) {
			return pk.property
		}
	}

	return models.PropertyUnknown
}

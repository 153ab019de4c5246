package country

import "github.com/KirkDiggler/explorer/internal/models"

// ListCountriesOutput contains every country of the reference file
type ListCountriesOutput struct {
	// Countries in file order
	Countries []*models.Country

	// Names in file order, parallel to Countries
	Names []string
}

// GetCountryInput contains parameters for retrieving a country
type GetCountryInput struct {
	Name string
}

// FindCountryInput contains parameters for resolving a typed name
type FindCountryInput struct {
	Query string
}

package country

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/explorer/internal/repositories/country Repository

import (
	"context"

	"github.com/KirkDiggler/explorer/internal/models"
)

// Repository provides read-only access to the country reference data
type Repository interface {
	// ListCountries returns every country in file order
	ListCountries(ctx context.Context) (*ListCountriesOutput, error)

	// GetCountry retrieves a country by its exact name
	GetCountry(ctx context.Context, input *GetCountryInput) (*models.Country, error)

	// FindCountry resolves a loosely typed name to a country
	FindCountry(ctx context.Context, input *FindCountryInput) (*models.Country, error)
}

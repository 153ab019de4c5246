package country

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/explorer/internal/models"
	"github.com/KirkDiggler/explorer/internal/names"
	"github.com/tidwall/gjson"
)

var (
	// ErrCountryNotFound is returned when no country matches
	ErrCountryNotFound = errors.New("country not found")

	// ErrDataFileNotFound is returned when the countries file does not exist
	ErrDataFileNotFound = errors.New("countries file not found")

	// ErrMalformedDataFile is returned when the countries file cannot be parsed
	ErrMalformedDataFile = errors.New("countries file is malformed")
)

// Config holds configuration for the file-backed country repository
type Config struct {
	// Path is the location of the countries JSON file
	Path string
}

// fileRepository serves countries parsed once from a JSON file
type fileRepository struct {
	countries []*models.Country
	names     []string
	byName    map[string]*models.Country
}

// NewFile loads the countries file. Any error here is fatal to the application.
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("countries file path cannot be empty")
	}

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataFileNotFound, cfg.Path)
		}
		return nil, fmt.Errorf("failed to read countries file: %w", err)
	}

	return newFromBytes(data)
}

// newFromBytes parses the reference data. gjson is used so that the key order of
// the file is kept; level fallbacks depend on it.
func newFromBytes(data []byte) (*fileRepository, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformedDataFile
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrMalformedDataFile)
	}

	repo := &fileRepository{
		byName: make(map[string]*models.Country),
	}

	var parseErr error
	root.ForEach(func(key, value gjson.Result) bool {
		country, err := parseCountry(key.String(), value)
		if err != nil {
			parseErr = err
			return false
		}

		if existing, ok := repo.byName[country.Name]; ok {
			log.Printf("Duplicate country %q in data file, keeping the last entry", country.Name)
			*existing = *country
			return true
		}

		repo.byName[country.Name] = country
		repo.countries = append(repo.countries, country)
		repo.names = append(repo.names, country.Name)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return repo, nil
}

func parseCountry(name string, value gjson.Result) (*models.Country, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty country name", ErrMalformedDataFile)
	}

	if !value.IsObject() {
		return nil, fmt.Errorf("%w: %q is not an object", ErrMalformedDataFile, name)
	}

	coords := value.Get("coordenadas").Array()
	if len(coords) != 2 {
		return nil, fmt.Errorf("%w: %q needs coordinates as [lat, lon]", ErrMalformedDataFile, name)
	}

	var animals []string
	for _, a := range value.Get("animais").Array() {
		animals = append(animals, a.String())
	}

	return &models.Country{
		Name:      name,
		Continent: value.Get("continente").String(),
		Climate:   value.Get("clima").String(),
		Capital:   value.Get("capital").String(),
		Animals:   animals,
		Coordinates: models.Coordinates{
			Lat: coords[0].Float(),
			Lng: coords[1].Float(),
		},
	}, nil
}

// ListCountries returns every country in file order
func (r *fileRepository) ListCountries(ctx context.Context) (*ListCountriesOutput, error) {
	countries := make([]*models.Country, len(r.countries))
	for i, country := range r.countries {
		countries[i] = cloneCountry(country)
	}

	countryNames := make([]string, len(r.names))
	copy(countryNames, r.names)

	return &ListCountriesOutput{
		Countries: countries,
		Names:     countryNames,
	}, nil
}

// GetCountry retrieves a country by its exact name
func (r *fileRepository) GetCountry(ctx context.Context, input *GetCountryInput) (*models.Country, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	country, ok := r.byName[input.Name]
	if !ok {
		return nil, ErrCountryNotFound
	}

	return cloneCountry(country), nil
}

// FindCountry resolves a loosely typed name, ignoring case, padding and accents
func (r *fileRepository) FindCountry(ctx context.Context, input *FindCountryInput) (*models.Country, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name, ok := names.Match(input.Query, r.names)
	if !ok {
		return nil, ErrCountryNotFound
	}

	return cloneCountry(r.byName[name]), nil
}

// cloneCountry keeps callers from mutating the loaded data
func cloneCountry(c *models.Country) *models.Country {
	clone := *c
	clone.Animals = append([]string(nil), c.Animals...)
	return &clone
}

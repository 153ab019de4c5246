package game

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/explorer/internal/models"
	"github.com/KirkDiggler/explorer/internal/names"
)

// levelPools resolves the country names of every level once
func (s *service) levelPools(ctx context.Context) (map[models.Level][]string, error) {
	s.levelsMu.Lock()
	defer s.levelsMu.Unlock()

	if s.levels != nil {
		return s.levels, nil
	}

	output, err := s.countryRepo.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	all := output.Names

	easy := resolveWanted(models.LevelEasy, s.easyCountries, all)
	if len(easy) == 0 {
		easy = window(all, 0, easyFallbackEnd)
	}

	medium := resolveWanted(models.LevelMedium, s.mediumCountries, all)
	if len(medium) == 0 {
		medium = window(all, easyFallbackEnd, mediumFallbackEnd)
	}

	taken := make(map[string]bool, len(easy)+len(medium))
	for _, name := range easy {
		taken[name] = true
	}
	for _, name := range medium {
		taken[name] = true
	}

	var hard []string
	for _, name := range all {
		if !taken[name] {
			hard = append(hard, name)
		}
	}
	if len(hard) == 0 {
		hard = append([]string(nil), all...)
	}

	log.Printf("Levels configured: easy %d, medium %d, hard %d countries", len(easy), len(medium), len(hard))

	s.levels = map[models.Level][]string{
		models.LevelEasy:   easy,
		models.LevelMedium: medium,
		models.LevelHard:   hard,
	}
	return s.levels, nil
}

// resolveWanted maps wanted names onto the data file keys, skipping misses
func resolveWanted(level models.Level, wanted, all []string) []string {
	var found []string
	seen := make(map[string]bool)

	for _, name := range wanted {
		key, ok := names.Match(name, all)
		if !ok {
			log.Printf("Country not found for level %s: %s", level, name)
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		found = append(found, key)
	}

	return found
}

// window returns all[from:to] clamped to the slice bounds
func window(all []string, from, to int) []string {
	if from > len(all) {
		from = len(all)
	}
	if to > len(all) {
		to = len(all)
	}
	return append([]string(nil), all[from:to]...)
}

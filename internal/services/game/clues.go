package game

import "github.com/KirkDiggler/explorer/internal/models"

// Clues returns the first revealed clues of a country, in reveal order
func Clues(country *models.Country, revealed int) []models.Clue {
	if country == nil || revealed < 1 {
		return nil
	}

	all := []models.Clue{
		{Kind: models.ClueKindContinent, Text: country.Continent},
		{Kind: models.ClueKindClimate, Text: country.Climate},
	}
	if len(country.Animals) > 0 {
		all = append(all, models.Clue{Kind: models.ClueKindAnimal, Text: country.Animals[0]})
	}

	if revealed > len(all) {
		revealed = len(all)
	}
	return all[:revealed]
}

// revealNextClue reveals one more clue if the country has one left
func revealNextClue(round *models.Round, country *models.Country) *models.Clue {
	available := Clues(country, round.CluesRevealed+1)
	if len(available) <= round.CluesRevealed {
		return nil
	}

	round.CluesRevealed = len(available)
	clue := available[len(available)-1]
	return &clue
}

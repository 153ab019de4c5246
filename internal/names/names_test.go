package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Portugal", "portugal"},
		{"  França ", "franca"},
		{"JAPÃO", "japao"},
		{"Áustria", "austria"},
		{"República Checa", "republica checa"},
		{"Polónia", "polonia"},
		{"Suíça", "suica"},
		{"África do Sul", "africa do sul"},
		{"Bélgica", "belgica"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, s := range []string{"Coreia do Sul", "  ÍNDIA", "Côte", "Nova Zelândia", "Egito", "çãõü"} {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), s)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("canada", "Canadá"))
	assert.True(t, Equal(" méxico", "México "))
	assert.False(t, Equal("Áustria", "Austrália"))
}

func TestMatch(t *testing.T) {
	countries := []string{"Portugal", "Espanha", "França", "Japão", "Estados Unidos"}

	got, ok := Match("franca", countries)
	require.True(t, ok)
	assert.Equal(t, "França", got)

	got, ok = Match("ESTADOS UNIDOS", countries)
	require.True(t, ok)
	assert.Equal(t, "Estados Unidos", got)

	got, ok = Match("Japão", countries)
	require.True(t, ok)
	assert.Equal(t, "Japão", got)

	_, ok = Match("Atlantis", countries)
	assert.False(t, ok)

	_, ok = Match("   ", countries)
	assert.False(t, ok)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Coreia Do Sul", Title("coreia do sul"))
	assert.Equal(t, "França", Title("  FRANÇA "))
}

func TestFileVariants(t *testing.T) {
	assert.Equal(t, []string{
		"estados_unidos",
		"estadosunidos",
		"estados-unidos",
		"estados unidos",
		"estados",
	}, FileVariants("Estados Unidos"))

	assert.Equal(t, []string{
		"guine_bissau",
		"guinebissau",
		"guine-bissau",
		"guiné-bissau",
		"guine",
	}, FileVariants("Guiné-Bissau"))

	// single words collapse to one stem
	assert.Equal(t, []string{"portugal"}, FileVariants("Portugal"))
	assert.Equal(t, []string{"japao", "japão"}, FileVariants("Japão"))
}

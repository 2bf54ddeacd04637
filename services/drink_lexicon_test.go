package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexiconInfer(t *testing.T) {
	lx := DefaultDrinkLexicon()

	cases := []struct {
		text string
		want DrinkTag
	}{
		{"a glass of water", DrinkWater},
		{"500ml of green tea", DrinkTea},
		{"black coffee, no sugar", DrinkCoffee},
		{"orange juice with breakfast", DrinkJuice},
		{"almond milk latte", DrinkMilk}, // compound keyword wins over latte
		{"a can of pepsi", DrinkSoda},
		{"just had a coke", DrinkSoda},
		{"espresso shot", DrinkCoffee},
		{"h2o", DrinkWater},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, lx.Infer(tc.text), tc.text)
	}
}

func TestLexiconDefaultsToWater(t *testing.T) {
	lx := DefaultDrinkLexicon()

	// No keyword at all falls back to water.
	assert.Equal(t, DrinkWater, lx.Infer("500 ml"))
	assert.Equal(t, DrinkWater, lx.Infer("drank a bottle"))
}

func TestLexiconMatchesWholeWords(t *testing.T) {
	lx := DefaultDrinkLexicon()

	// "protein" must not match "tea" embedded in it.
	assert.Equal(t, DrinkWater, lx.Infer("500 ml protein shake"))
	// Plural forms still match.
	assert.Equal(t, DrinkCoffee, lx.Infer("two coffees"))
}

func TestLexiconKeywordsAreDisjoint(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range DefaultDrinkLexicon().entries {
		assert.False(t, seen[e.Keyword], "duplicate keyword %q", e.Keyword)
		seen[e.Keyword] = true
	}
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVolumeFromText(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"COCA-COLA 500ml", 500},
		{"Spring Water 1.5L", 1500},
		{"Premium Juice 1 liter", 1000},
		{"Iced Tea 16 fl oz", 473},
		{"Energy Drink 12 oz", 355},
		{"330 ml can", 330},
	}
	for _, tc := range cases {
		got, found := ExtractVolumeFromText(tc.text)
		require.True(t, found, tc.text)
		assert.Equal(t, tc.want, got, tc.text)
	}
}

func TestExtractVolumeFromTextNoMatch(t *testing.T) {
	for _, text := range []string{"Sparkling Water", "", "best before 2027"} {
		_, found := ExtractVolumeFromText(text)
		assert.False(t, found, text)
	}
}

func TestClassifyDrinkTitle(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Pepsi Max 330ml", "Pepsi"},
		{"Coca-Cola Zero", "Soda"},
		{"Sprite Lemon", "Soda"},
		{"Evian Natural Spring Water", "Water"},
		{"Lipton Green Tea", "Tea"},
		{"Nescafe Iced Coffee", "Coffee"},
		{"Tropicana Orange Juice", "Juice"},
		{"Whole Milk 1L", "Milk"},
		{"Mystery Beverage", "Water"}, // unknown defaults to water
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyDrinkTitle(tc.title), tc.title)
	}
}

func TestClassifyDrinkTitleBrandBeatsGeneric(t *testing.T) {
	// Brand precedence: "Pepsi Cola" is Pepsi, not generic Soda.
	assert.Equal(t, "Pepsi", ClassifyDrinkTitle("Pepsi Cola 2L"))
	// "Coke" wins over the "cola" substring it sits next to.
	assert.Equal(t, "Soda", ClassifyDrinkTitle("Coke cola classic"))
}

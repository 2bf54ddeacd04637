package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExplicitVolume(t *testing.T) {
	p := NewIntakeParser()

	cases := []struct {
		text   string
		volume int
		drink  DrinkTag
	}{
		{"I drank 500ml of water", 500, DrinkWater},
		{"500 ml", 500, DrinkWater},
		{"1.5 liters of green tea", 1500, DrinkTea},
		{"had 2 glasses", 500, DrinkWater},
		{"2 cups of coffee this morning", 480, DrinkCoffee},
		{"drank 12 oz of orange juice", 360, DrinkJuice},
		{"1 bottle of pepsi", 500, DrinkSoda},
		{"0.25 l of milk", 250, DrinkMilk},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got := p.Parse(tc.text)
			require.True(t, got.Recognized)
			assert.Equal(t, tc.volume, got.VolumeML)
			assert.Equal(t, tc.drink, got.DrinkType)
			assert.Equal(t, SourceExplicit, got.Source)
		})
	}
}

func TestParseBareServing(t *testing.T) {
	p := NewIntakeParser()

	cases := []struct {
		text   string
		volume int
	}{
		{"drank a bottle", 500},
		{"a glass of water", 250},
		{"had one cup", 240},
		{"bottle", 500},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got := p.Parse(tc.text)
			require.True(t, got.Recognized)
			assert.Equal(t, tc.volume, got.VolumeML)
			assert.Equal(t, SourceDefault, got.Source)
		})
	}
}

func TestParseUnrecognized(t *testing.T) {
	p := NewIntakeParser()

	for _, text := range []string{
		"hello there",
		"",
		"   ",
		"I am thirsty",
		"ml",     // unit with no quantity and not servable
		"500",    // quantity with no unit
		"liters", // non-servable unit alone
	} {
		t.Run(fmt.Sprintf("%q", text), func(t *testing.T) {
			got := p.Parse(text)
			assert.False(t, got.Recognized)
			assert.Zero(t, got.VolumeML)
		})
	}
}

func TestParseZeroAndNegativeInvalidate(t *testing.T) {
	p := NewIntakeParser()

	// A non-positive quantity rejects the whole utterance even though
	// "glass" alone would qualify for the serving default.
	for _, text := range []string{
		"0 ml of water",
		"drank 0 glasses",
		"-500 ml",
		"-2 cups",
	} {
		t.Run(text, func(t *testing.T) {
			got := p.Parse(text)
			assert.False(t, got.Recognized)
		})
	}
}

func TestParseFirstQuantityWins(t *testing.T) {
	p := NewIntakeParser()

	got := p.Parse("200 ml then another 300 ml")
	require.True(t, got.Recognized)
	assert.Equal(t, 200, got.VolumeML)
}

func TestParseIsIdempotent(t *testing.T) {
	p := NewIntakeParser()

	for _, text := range []string{
		"1.5 liters of green tea",
		"drank a bottle",
		"hello there",
	} {
		first := p.Parse(text)
		second := p.Parse(text)
		assert.Equal(t, first, second, text)
	}
}

func TestParseRoundTripAliases(t *testing.T) {
	p := NewIntakeParser()

	// "5 <alias>" must convert to exactly 5 times the alias factor.
	for _, u := range DefaultUnitTable() {
		got := p.Parse(fmt.Sprintf("5 %s", u.Alias))
		require.True(t, got.Recognized, u.Alias)
		assert.Equal(t, int(5*u.FactorML), got.VolumeML, u.Alias)
		assert.Equal(t, SourceExplicit, got.Source, u.Alias)
	}
}

func TestParseMilliliterSweep(t *testing.T) {
	p := NewIntakeParser()

	// "{n} ml" must come back as exactly n for any positive n.
	for _, n := range []int{1, 30, 240, 250, 330, 500, 1000, 2500, 4000} {
		got := p.Parse(fmt.Sprintf("%d ml", n))
		require.True(t, got.Recognized, n)
		assert.Equal(t, n, got.VolumeML, n)
		assert.Equal(t, SourceExplicit, got.Source, n)
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	p := NewIntakeParser()

	lower := p.Parse("i drank 500ml of green tea")
	upper := p.Parse("I DRANK 500ML OF GREEN TEA")
	assert.Equal(t, lower.VolumeML, upper.VolumeML)
	assert.Equal(t, lower.DrinkType, upper.DrinkType)
	assert.Equal(t, lower.Recognized, upper.Recognized)
}

func TestParseDecimalQuantities(t *testing.T) {
	p := NewIntakeParser()

	got := p.Parse("0.5 l")
	require.True(t, got.Recognized)
	assert.Equal(t, 500, got.VolumeML)

	// Fractional results round to the nearest milliliter.
	got = p.Parse("1.5 oz")
	require.True(t, got.Recognized)
	assert.Equal(t, 45, got.VolumeML)
}

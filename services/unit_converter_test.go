package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitTableAliasesAreDisjoint(t *testing.T) {
	seen := map[string]bool{}
	for _, u := range DefaultUnitTable() {
		assert.False(t, seen[u.Alias], "duplicate alias %q", u.Alias)
		seen[u.Alias] = true
	}
}

func TestToMilliliters(t *testing.T) {
	table := DefaultUnitTable()

	cases := []struct {
		value float64
		token string
		want  int
	}{
		{500, "ml", 500},
		{1.5, "l", 1500},
		{1, "liter", 1000},
		{2, "glasses", 500},
		{2, "cups", 480},
		{1, "bottle", 500},
		{12, "oz", 360},
		{8, "ounces", 240},
	}
	for _, tc := range cases {
		got, err := table.ToMilliliters(tc.value, tc.token)
		require.NoError(t, err, tc.token)
		assert.Equal(t, tc.want, got, "%v %s", tc.value, tc.token)
	}
}

func TestToMillilitersUnknownUnit(t *testing.T) {
	_, err := DefaultUnitTable().ToMilliliters(1, "gallon")
	assert.ErrorIs(t, err, ErrUnitNotRecognized)
}

func TestSingleServing(t *testing.T) {
	table := DefaultUnitTable()

	for token, want := range map[string]int{
		"cup":     240,
		"glass":   250,
		"bottle":  500,
		"glasses": 250,
	} {
		got, err := table.SingleServing(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got, token)
	}
}

func TestSingleServingRejectsMeasureUnits(t *testing.T) {
	// "ml" or "liter" alone carry no implied serving size.
	for _, token := range []string{"ml", "l", "liter", "oz"} {
		_, err := DefaultUnitTable().SingleServing(token)
		assert.Error(t, err, token)
	}
}

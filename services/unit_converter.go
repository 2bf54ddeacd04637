package services

import (
	"errors"
	"math"
	"strings"
)

// ErrUnitNotRecognized is returned when a unit token matches no table
// entry. The converter never guesses a factor.
var ErrUnitNotRecognized = errors.New("unit not recognized")

// UnitAlias maps one spoken/typed unit token to a milliliter factor.
// Servable marks container nouns that may be logged without an explicit
// number ("a glass", "drank a bottle"); for those the factor doubles as
// the single-serving volume.
type UnitAlias struct {
	Alias    string
	FactorML float64
	Servable bool
}

// UnitTable is the fixed unit vocabulary. Order is irrelevant for
// lookups; the parser sorts aliases longest-first when building its
// patterns so "liter" is never shadowed by "l".
type UnitTable []UnitAlias

// DefaultUnitTable returns the process-wide unit vocabulary. Aliases
// must be disjoint: no token may appear twice.
func DefaultUnitTable() UnitTable {
	return UnitTable{
		{Alias: "ml", FactorML: 1},
		{Alias: "milliliter", FactorML: 1},
		{Alias: "milliliters", FactorML: 1},
		{Alias: "l", FactorML: 1000},
		{Alias: "liter", FactorML: 1000},
		{Alias: "liters", FactorML: 1000},
		{Alias: "cup", FactorML: 240, Servable: true},
		{Alias: "cups", FactorML: 240, Servable: true},
		{Alias: "glass", FactorML: 250, Servable: true},
		{Alias: "glasses", FactorML: 250, Servable: true},
		{Alias: "bottle", FactorML: 500, Servable: true},
		{Alias: "bottles", FactorML: 500, Servable: true},
		{Alias: "oz", FactorML: 30},
		{Alias: "ounce", FactorML: 30},
		{Alias: "ounces", FactorML: 30},
	}
}

// Lookup finds the entry for a unit token (case-insensitive).
func (t UnitTable) Lookup(token string) (UnitAlias, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	for _, u := range t {
		if u.Alias == token {
			return u, true
		}
	}
	return UnitAlias{}, false
}

// ToMilliliters converts an explicit quantity to whole milliliters,
// rounded to the nearest ml.
func (t UnitTable) ToMilliliters(value float64, token string) (int, error) {
	u, ok := t.Lookup(token)
	if !ok {
		return 0, ErrUnitNotRecognized
	}
	return int(math.Round(value * u.FactorML)), nil
}

// SingleServing returns the fixed volume for a bare container noun
// ("a bottle" -> 500 ml). Non-servable units are rejected so "ml" alone
// can never produce a 1 ml log.
func (t UnitTable) SingleServing(token string) (int, error) {
	u, ok := t.Lookup(token)
	if !ok || !u.Servable {
		return 0, ErrUnitNotRecognized
	}
	return int(math.Round(u.FactorML)), nil
}

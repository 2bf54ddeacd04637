package services

import (
	"regexp"
	"strings"
)

// DrinkTag is a canonical beverage category, independent of the many
// synonyms that map to it. Tags line up with the seeded DrinkType rows.
type DrinkTag string

const (
	DrinkWater  DrinkTag = "Water"
	DrinkTea    DrinkTag = "Tea"
	DrinkCoffee DrinkTag = "Coffee"
	DrinkMilk   DrinkTag = "Milk"
	DrinkJuice  DrinkTag = "Juice"
	DrinkSoda   DrinkTag = "Soda"
	DrinkOther  DrinkTag = "Other"
)

type DrinkKeyword struct {
	Keyword string
	Tag     DrinkTag
}

// DrinkLexicon is a precedence-ordered keyword table: entries are
// tested top to bottom and the first hit wins, so specific phrases
// ("green tea") must precede the generic terms they contain.
type DrinkLexicon struct {
	entries  []DrinkKeyword
	patterns []*regexp.Regexp
}

func NewDrinkLexicon(entries []DrinkKeyword) DrinkLexicon {
	patterns := make([]*regexp.Regexp, len(entries))
	for i, e := range entries {
		// Whole-word match, tolerant of a trailing plural "s".
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(e.Keyword) + `s?\b`)
	}
	return DrinkLexicon{entries: entries, patterns: patterns}
}

// DefaultDrinkLexicon returns the fixed keyword table. Specific
// multi-word phrases first, then brands, then generic terms.
func DefaultDrinkLexicon() DrinkLexicon {
	return NewDrinkLexicon([]DrinkKeyword{
		{Keyword: "green tea", Tag: DrinkTea},
		{Keyword: "black tea", Tag: DrinkTea},
		{Keyword: "herbal tea", Tag: DrinkTea},
		{Keyword: "iced tea", Tag: DrinkTea},
		{Keyword: "black coffee", Tag: DrinkCoffee},
		{Keyword: "orange juice", Tag: DrinkJuice},
		{Keyword: "apple juice", Tag: DrinkJuice},
		{Keyword: "fruit juice", Tag: DrinkJuice},
		{Keyword: "almond milk", Tag: DrinkMilk},
		{Keyword: "soy milk", Tag: DrinkMilk},
		{Keyword: "oat milk", Tag: DrinkMilk},
		{Keyword: "soft drink", Tag: DrinkSoda},
		{Keyword: "espresso", Tag: DrinkCoffee},
		{Keyword: "latte", Tag: DrinkCoffee},
		{Keyword: "cappuccino", Tag: DrinkCoffee},
		{Keyword: "coke", Tag: DrinkSoda},
		{Keyword: "pepsi", Tag: DrinkSoda},
		{Keyword: "sprite", Tag: DrinkSoda},
		{Keyword: "cola", Tag: DrinkSoda},
		{Keyword: "soda", Tag: DrinkSoda},
		{Keyword: "coffee", Tag: DrinkCoffee},
		{Keyword: "tea", Tag: DrinkTea},
		{Keyword: "juice", Tag: DrinkJuice},
		{Keyword: "milk", Tag: DrinkMilk},
		{Keyword: "water", Tag: DrinkWater},
		{Keyword: "h2o", Tag: DrinkWater},
	})
}

// Infer returns the tag of the first keyword found in the text.
// Plain water is the dominant logged beverage, so no match defaults to
// Water rather than Other.
func (lx DrinkLexicon) Infer(text string) DrinkTag {
	text = strings.ToLower(text)
	for i, p := range lx.patterns {
		if p.MatchString(text) {
			return lx.entries[i].Tag
		}
	}
	return DrinkWater
}

package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// IntakeSource tags how the volume was obtained, so callers can tell
// "explicit number found" apart from "single-serving default applied".
type IntakeSource string

const (
	SourceExplicit IntakeSource = "explicit"
	SourceDefault  IntakeSource = "default"
)

// ParsedIntake is the structured result of one parse call. It is a
// value object owned by the caller and never mutated after creation.
type ParsedIntake struct {
	Recognized bool         `json:"recognized"`
	VolumeML   int          `json:"volume_ml,omitempty"`
	DrinkType  DrinkTag     `json:"drink_type"`
	Source     IntakeSource `json:"source,omitempty"`
	SourceText string       `json:"source_text"`
}

// IntakeParser turns a free-text utterance ("I drank 500ml of green
// tea", "had a bottle") into zero-or-one intake record. It is pure and
// stateless: the same input always yields the same output, and it is
// safe for unsynchronized concurrent use. The voice, chatbot and
// quick-entry surfaces all share one instance.
//
// Matching is an ordered rule list:
//  1. number followed by a unit token, longest alias first
//  2. bare container noun, optionally preceded by an article
//
// If neither rule yields a volume the utterance is not recognized; the
// parser never guesses a default volume.
type IntakeParser struct {
	units    UnitTable
	lexicon  DrinkLexicon
	numUnit  *regexp.Regexp
	bareUnit *regexp.Regexp
}

// NewIntakeParser builds a parser over the default vocabulary tables.
func NewIntakeParser() *IntakeParser {
	return NewIntakeParserWith(DefaultUnitTable(), DefaultDrinkLexicon())
}

// NewIntakeParserWith builds a parser over injected tables, which lets
// tests substitute a reduced vocabulary.
func NewIntakeParserWith(units UnitTable, lexicon DrinkLexicon) *IntakeParser {
	// Longest alias first so "liter" is matched before "l" can strand
	// the trailing "iter".
	aliases := make([]string, len(units))
	for i, u := range units {
		aliases[i] = regexp.QuoteMeta(u.Alias)
	}
	sort.Slice(aliases, func(i, j int) bool { return len(aliases[i]) > len(aliases[j]) })
	alt := strings.Join(aliases, "|")

	var servable []string
	for _, u := range units {
		if u.Servable {
			servable = append(servable, regexp.QuoteMeta(u.Alias))
		}
	}
	sort.Slice(servable, func(i, j int) bool { return len(servable[i]) > len(servable[j]) })

	return &IntakeParser{
		units:    units,
		lexicon:  lexicon,
		numUnit:  regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*(` + alt + `)\b`),
		bareUnit: regexp.MustCompile(`(?:\b(?:a|an|one)\s+)?\b(` + strings.Join(servable, "|") + `)\b`),
	}
}

// Parse extracts a (volume, drink type) pair from raw text. Any
// unparseable input yields Recognized=false; the method never fails.
func (p *IntakeParser) Parse(text string) ParsedIntake {
	result := ParsedIntake{SourceText: text}
	norm := strings.ToLower(strings.TrimSpace(text))

	// Rule 1: explicit number + unit. First match wins; a second
	// quantity in the same utterance is deliberately ignored.
	if m := p.numUnit.FindStringSubmatch(norm); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil || value <= 0 {
			// Zero or negative quantities invalidate the whole
			// utterance rather than falling through to rule 2.
			return result
		}
		ml, err := p.units.ToMilliliters(value, m[2])
		if err != nil || ml <= 0 {
			return result
		}
		result.Recognized = true
		result.VolumeML = ml
		result.Source = SourceExplicit
		result.DrinkType = p.lexicon.Infer(norm)
		return result
	}

	// Rule 2: bare container noun ("a glass", "bottle of water").
	if m := p.bareUnit.FindStringSubmatch(norm); m != nil {
		ml, err := p.units.SingleServing(m[1])
		if err == nil {
			result.Recognized = true
			result.VolumeML = ml
			result.Source = SourceDefault
			result.DrinkType = p.lexicon.Infer(norm)
			return result
		}
	}

	return result
}

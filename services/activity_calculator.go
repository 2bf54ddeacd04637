package services

import (
	"fmt"
	"strings"

	"backend/models"
)

const (
	baseHydrationPerKg = 35 // ml per kg of body weight
	defaultWeightKg    = 70
)

var activityMultipliers = map[string]float64{
	"sedentary": 1.0,
	"low":       1.1,
	"moderate":  1.3,
	"high":      1.5,
}

// ActivityBonus is the extra hydration suggested for a day's wearable
// activity, with a human-readable breakdown.
type ActivityBonus struct {
	BonusML       int    `json:"bonus_ml"`
	ActivityLevel string `json:"activity_level"`
	Reasoning     string `json:"reasoning"`
}

// BaseHydrationFor returns the weight-scaled daily baseline.
func BaseHydrationFor(weightKg float64) int {
	if weightKg <= 0 {
		weightKg = defaultWeightKg
	}
	return int(weightKg * baseHydrationPerKg)
}

// ActivityHydrationBonus converts a synced activity day into an
// additive hydration bonus: level multiplier over the weight baseline,
// plus 1 ml per 10 kcal burned above 2000.
func ActivityHydrationBonus(weightKg float64, day *models.ActivityData) ActivityBonus {
	if day == nil {
		return ActivityBonus{ActivityLevel: "unknown", Reasoning: "No activity data available"}
	}

	level := day.ActivityLevel()
	base := BaseHydrationFor(weightKg)
	mult := activityMultipliers[level]
	if mult == 0 {
		mult = 1.0
	}
	levelBonus := int(float64(base)*mult) - base

	calorieBonus := 0
	if day.CaloriesBurned > 2000 {
		calorieBonus = (day.CaloriesBurned - 2000) / 10
	}

	var parts []string
	if levelBonus > 0 {
		parts = append(parts, fmt.Sprintf("Activity level (%s): +%dml", level, levelBonus))
	}
	if calorieBonus > 0 {
		parts = append(parts, fmt.Sprintf("High calorie burn: +%dml", calorieBonus))
	}
	reasoning := "No additional hydration needed"
	if len(parts) > 0 {
		reasoning = strings.Join(parts, "; ")
	}

	return ActivityBonus{
		BonusML:       levelBonus + calorieBonus,
		ActivityLevel: level,
		Reasoning:     reasoning,
	}
}

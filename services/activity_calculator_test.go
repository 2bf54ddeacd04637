package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func TestBaseHydrationFor(t *testing.T) {
	assert.Equal(t, 2450, BaseHydrationFor(70))
	assert.Equal(t, 3500, BaseHydrationFor(100))
	// Missing weight falls back to the 70 kg default.
	assert.Equal(t, 2450, BaseHydrationFor(0))
	assert.Equal(t, 2450, BaseHydrationFor(-10))
}

func TestActivityLevelBuckets(t *testing.T) {
	cases := []struct {
		steps, minutes int
		want           string
	}{
		{12000, 0, "high"},
		{0, 75, "high"},
		{6000, 0, "moderate"},
		{0, 35, "moderate"},
		{3000, 0, "low"},
		{0, 20, "low"},
		{500, 5, "sedentary"},
	}
	for _, tc := range cases {
		day := &models.ActivityData{Steps: tc.steps, ActiveMinutes: tc.minutes}
		assert.Equal(t, tc.want, day.ActivityLevel(), "steps=%d minutes=%d", tc.steps, tc.minutes)
	}
}

func TestActivityHydrationBonus(t *testing.T) {
	// High activity at 70 kg: base 2450, multiplier 1.5 -> +1225.
	day := &models.ActivityData{Steps: 12000, CaloriesBurned: 1800}
	bonus := ActivityHydrationBonus(70, day)
	assert.Equal(t, 1225, bonus.BonusML)
	assert.Equal(t, "high", bonus.ActivityLevel)

	// Calorie burn above 2000 adds 1 ml per 10 kcal.
	day = &models.ActivityData{Steps: 12000, CaloriesBurned: 2500}
	bonus = ActivityHydrationBonus(70, day)
	assert.Equal(t, 1225+50, bonus.BonusML)

	// Sedentary day earns nothing.
	day = &models.ActivityData{Steps: 100}
	bonus = ActivityHydrationBonus(70, day)
	assert.Equal(t, 0, bonus.BonusML)
	assert.Equal(t, "No additional hydration needed", bonus.Reasoning)
}

func TestActivityHydrationBonusNoData(t *testing.T) {
	bonus := ActivityHydrationBonus(70, nil)
	assert.Equal(t, 0, bonus.BonusML)
	assert.Equal(t, "unknown", bonus.ActivityLevel)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemperatureAdjustment(t *testing.T) {
	cases := []struct {
		temp float64
		want int
	}{
		{30, 200},  // +200 per 5°C above 25
		{35, 400},
		{27.5, 100},
		{25, 0},
		{20, 0},
		{15, 0},
		{10, -100}, // -100 per 5°C below 15
		{5, -200},
		{-30, -500}, // floored
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TemperatureAdjustment(tc.temp), "temp=%.1f", tc.temp)
	}
}

func TestHumidityAdjustment(t *testing.T) {
	assert.Equal(t, 100, HumidityAdjustment(80))
	assert.Equal(t, 100, HumidityAdjustment(71))
	assert.Equal(t, 0, HumidityAdjustment(70))
	assert.Equal(t, 0, HumidityAdjustment(50))
	assert.Equal(t, 0, HumidityAdjustment(40))
	assert.Equal(t, 50, HumidityAdjustment(39))
	assert.Equal(t, 50, HumidityAdjustment(10))
}

func TestActivityAdjustment(t *testing.T) {
	assert.Equal(t, 300, ActivityAdjustment("high"))
	assert.Equal(t, 150, ActivityAdjustment("moderate"))
	assert.Equal(t, 0, ActivityAdjustment("low"))
	assert.Equal(t, 0, ActivityAdjustment("sedentary"))
	assert.Equal(t, 0, ActivityAdjustment(""))
}

func TestExplainRecommendationMentionsFactors(t *testing.T) {
	w := &Weather{Temperature: 32, Humidity: 80, Condition: "Clear"}
	got := explainRecommendation(w, "high", TemperatureAdjustment(w.Temperature), HumidityAdjustment(w.Humidity))
	assert.Contains(t, got, "hot")
	assert.Contains(t, got, "humidity")
	assert.Contains(t, got, "high activity")

	mild := &Weather{Temperature: 20, Humidity: 50}
	got = explainRecommendation(mild, "sedentary", 0, 0)
	assert.Contains(t, got, "Standard hydration")
}

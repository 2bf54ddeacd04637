package services

import (
	"fmt"
	"strings"
	"time"

	"backend/config"
	"backend/models"
)

const baseHydrationML = 2000

// TemperatureAdjustment returns the goal delta for the day's
// temperature: +200 ml per 5°C above 25°C, -100 ml per 5°C below 15°C
// floored at -500 ml, nothing in the comfortable band.
func TemperatureAdjustment(temp float64) int {
	if temp > 25 {
		return int((temp - 25) / 5 * 200)
	}
	if temp < 15 {
		adj := int((temp - 15) / 5 * 100)
		if adj < -500 {
			adj = -500
		}
		return adj
	}
	return 0
}

// HumidityAdjustment returns +100 ml in humid air (sweating) and
// +50 ml in dry air (respiratory loss).
func HumidityAdjustment(humidity int) int {
	if humidity > 70 {
		return 100
	}
	if humidity < 40 {
		return 50
	}
	return 0
}

// ActivityAdjustment maps the wearable activity level to a goal delta.
func ActivityAdjustment(level string) int {
	switch level {
	case "high":
		return 300
	case "moderate":
		return 150
	default:
		return 0
	}
}

// RecommendHydration computes the weather- and activity-adjusted daily
// goal and persists a snapshot. The total never drops below the
// 2000 ml baseline.
func RecommendHydration(userID uint, w *Weather, activityLevel string, baseML int) (*models.HydrationRecommendation, error) {
	if baseML <= 0 {
		baseML = baseHydrationML
	}

	tempAdj := TemperatureAdjustment(w.Temperature)
	humAdj := HumidityAdjustment(w.Humidity)
	actAdj := ActivityAdjustment(activityLevel)

	total := baseML + tempAdj + humAdj + actAdj
	if total < baseHydrationML {
		total = baseHydrationML
	}

	rec := &models.HydrationRecommendation{
		UserID:             userID,
		Date:               dayStartLocal(time.Now()),
		BaseML:             baseML,
		Temperature:        w.Temperature,
		Humidity:           w.Humidity,
		WeatherCondition:   w.Condition,
		TempAdjustment:     tempAdj,
		HumidityAdjustment: humAdj,
		ActivityAdjustment: actAdj,
		TotalML:            total,
		Explanation:        explainRecommendation(w, activityLevel, tempAdj, humAdj),
	}

	err := config.DB.
		Where("user_id = ? AND date = ?", userID, rec.Date).
		Assign(rec).
		FirstOrCreate(rec).Error
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func explainRecommendation(w *Weather, activityLevel string, tempAdj, humAdj int) string {
	var parts []string

	if tempAdj > 0 {
		parts = append(parts, fmt.Sprintf("It's hot (%.1f°C), so you should drink more water.", w.Temperature))
	} else if tempAdj < 0 {
		parts = append(parts, fmt.Sprintf("It's cool (%.1f°C), but stay hydrated.", w.Temperature))
	}

	if w.Humidity > 70 {
		parts = append(parts, fmt.Sprintf("High humidity (%d%%) increases water loss through sweating.", w.Humidity))
	} else if w.Humidity < 40 {
		parts = append(parts, fmt.Sprintf("Dry air (%d%%) can cause more water loss through breathing.", w.Humidity))
	}

	switch activityLevel {
	case "high":
		parts = append(parts, "Your high activity level requires additional hydration.")
	case "moderate":
		parts = append(parts, "Your moderate activity level requires some additional hydration.")
	}

	if len(parts) == 0 {
		parts = append(parts, "Standard hydration recommendation for your profile.")
	}
	return strings.Join(parts, " ")
}

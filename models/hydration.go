package models

import (
	"time"

	"gorm.io/gorm"
)

// HydrationRecommendation is a snapshot of a weather/activity-adjusted
// daily goal shown to the user.
type HydrationRecommendation struct {
	gorm.Model
	UserID             uint      `gorm:"index;not null"`
	Date               time.Time `gorm:"index;not null"`
	BaseML             int
	Temperature        float64
	Humidity           int
	WeatherCondition   string `gorm:"size:50"`
	TempAdjustment     int
	HumidityAdjustment int
	ActivityAdjustment int
	TotalML            int
	Explanation        string `gorm:"type:text"`
}

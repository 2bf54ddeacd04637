package models

import "gorm.io/gorm"

// DrinkType is a catalog entry; HydrationFactor scales the logged
// volume when computing effective hydration (water = 1.0).
type DrinkType struct {
	gorm.Model
	Name            string  `gorm:"size:50;uniqueIndex;not null"`
	HydrationFactor float64 `gorm:"default:1.0"`
	Color           string  `gorm:"size:20;default:#4DA6FF"`
	Icon            string  `gorm:"size:50"`

	WaterLogs []WaterLog
}

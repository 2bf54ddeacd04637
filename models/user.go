package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username      string `gorm:"uniqueIndex;not null"`
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	DailyGoal     int    `gorm:"default:2000"` // ml
	PreferredUnit string `gorm:"size:10;default:ml"`
	Theme         string `gorm:"size:10;default:light"`
	AccentColor   string `gorm:"size:20;default:blue"`
	Gender        string `gorm:"size:20"`
	WeightKg      float64
	AvatarPath    string `gorm:"size:255"`

	ReminderEnabled  bool `gorm:"default:false"`
	ReminderInterval int  `gorm:"default:60"` // minutes

	ResetToken    string
	ResetTokenExp time.Time

	WaterLogs  []WaterLog
	Containers []Container
}

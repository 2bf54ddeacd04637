package models

import "time"

type Reminder struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:20"` // "reminder" | "goal_reached"
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}

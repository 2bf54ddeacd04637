package models

import "gorm.io/gorm"

// Container is a user-defined vessel ("my office mug") with a fixed
// volume, used for one-tap logging.
type Container struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"size:100;not null"`
	Volume      int    `gorm:"not null"` // ml
	DrinkTypeID *uint
	ImagePath   string `gorm:"size:255"`

	WaterLogs []WaterLog
}

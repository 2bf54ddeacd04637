package models

import (
	"time"

	"gorm.io/gorm"
)

// Input methods recorded on each log entry.
const (
	InputManual    = "manual"
	InputContainer = "container"
	InputVoice     = "voice"
	InputChat      = "chat"
	InputOCR       = "ocr"
	InputBarcode   = "barcode"
)

type WaterLog struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null"`
	Amount      int       `gorm:"not null"` // ml
	Timestamp   time.Time `gorm:"index;not null"`
	DrinkTypeID *uint     `gorm:"index"`
	ContainerID *uint
	InputMethod string `gorm:"size:20;default:manual"`
	Notes       string `gorm:"type:text"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// WearableConnection stores a user's OAuth link to a fitness platform
// ("google_fit" or "fitbit").
type WearableConnection struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null"`
	Platform       string `gorm:"size:50;not null"`
	PlatformUserID string `gorm:"size:100"`
	AccessToken    string `gorm:"type:text;not null"`
	RefreshToken   string `gorm:"type:text"`
	TokenExpiresAt time.Time
	IsActive       bool `gorm:"default:true"`
	LastSync       time.Time
}

// TokenExpired reports whether the access token needs a refresh.
func (c *WearableConnection) TokenExpired() bool {
	if c.TokenExpiresAt.IsZero() {
		return false
	}
	return time.Now().UTC().After(c.TokenExpiresAt)
}

// ActivityData is one day of synced activity from a wearable.
// Unique per (user, date).
type ActivityData struct {
	gorm.Model
	UserID         uint      `gorm:"uniqueIndex:uniq_user_date;not null"`
	ConnectionID   uint      `gorm:"index"`
	Date           time.Time `gorm:"uniqueIndex:uniq_user_date;not null"` // truncated to midnight
	Steps          int       `gorm:"default:0"`
	DistanceMeters float64   `gorm:"default:0"`
	CaloriesBurned int       `gorm:"default:0"`
	ActiveMinutes  int       `gorm:"default:0"`
	HeartRateAvg   int
}

// ActivityLevel buckets the day by steps and active minutes.
func (a *ActivityData) ActivityLevel() string {
	switch {
	case a.Steps >= 10000 || a.ActiveMinutes >= 60:
		return "high"
	case a.Steps >= 5000 || a.ActiveMinutes >= 30:
		return "moderate"
	case a.Steps >= 2000 || a.ActiveMinutes >= 15:
		return "low"
	default:
		return "sedentary"
	}
}

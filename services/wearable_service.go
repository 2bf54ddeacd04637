package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/logger"
	"backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SaveWearableConnection stores (or replaces) a user's link to a
// platform after a successful code exchange.
func SaveWearableConnection(userID uint, platform string, tokens *TokenSet) (*models.WearableConnection, error) {
	conn := models.WearableConnection{
		UserID:         userID,
		Platform:       platform,
		PlatformUserID: tokens.UserID,
		AccessToken:    tokens.AccessToken,
		RefreshToken:   tokens.RefreshToken,
		TokenExpiresAt: tokens.ExpiresAt,
		IsActive:       true,
	}

	var existing models.WearableConnection
	err := config.DB.Where("user_id = ? AND platform = ?", userID, platform).First(&existing).Error
	if err == nil {
		existing.PlatformUserID = conn.PlatformUserID
		existing.AccessToken = conn.AccessToken
		existing.RefreshToken = conn.RefreshToken
		existing.TokenExpiresAt = conn.TokenExpiresAt
		existing.IsActive = true
		if err := config.DB.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := config.DB.Create(&conn).Error; err != nil {
		return nil, err
	}
	return &conn, nil
}

// ListWearableConnections returns a user's active platform links.
func ListWearableConnections(userID uint) ([]models.WearableConnection, error) {
	var conns []models.WearableConnection
	err := config.DB.Where("user_id = ? AND is_active = ?", userID, true).Find(&conns).Error
	return conns, err
}

// DisconnectWearable deactivates a platform link without deleting the
// synced activity history.
func DisconnectWearable(userID uint, platform string) error {
	res := config.DB.Model(&models.WearableConnection{}).
		Where("user_id = ? AND platform = ?", userID, platform).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("connection not found")
	}
	return nil
}

// SyncWearable pulls today's activity from the platform, refreshing
// the access token first when it has expired, and upserts the day row.
func SyncWearable(oauth *OAuthService, userID uint, platform string) (*models.ActivityData, error) {
	var conn models.WearableConnection
	err := config.DB.
		Where("user_id = ? AND platform = ? AND is_active = ?", userID, platform, true).
		First(&conn).Error
	if err != nil {
		return nil, errors.New("no active connection for platform")
	}

	if conn.TokenExpired() {
		if conn.RefreshToken == "" {
			return nil, errors.New("access token expired and no refresh token stored")
		}
		tokens, err := oauth.RefreshToken(platform, conn.RefreshToken)
		if err != nil {
			return nil, err
		}
		conn.AccessToken = tokens.AccessToken
		if tokens.RefreshToken != "" {
			conn.RefreshToken = tokens.RefreshToken
		}
		conn.TokenExpiresAt = tokens.ExpiresAt
		if err := config.DB.Save(&conn).Error; err != nil {
			return nil, err
		}
		logger.Info("refreshed wearable access token",
			zap.Uint("user_id", userID), zap.String("platform", platform))
	}

	client, err := NewFitnessClient(platform)
	if err != nil {
		return nil, err
	}
	summary, err := client.DailyActivity(conn.AccessToken, time.Now())
	if err != nil {
		return nil, err
	}

	day := models.ActivityData{
		UserID:         userID,
		ConnectionID:   conn.ID,
		Date:           summary.Date,
		Steps:          summary.Steps,
		DistanceMeters: summary.DistanceMeters,
		CaloriesBurned: summary.CaloriesBurned,
		ActiveMinutes:  summary.ActiveMinutes,
		HeartRateAvg:   summary.HeartRateAvg,
	}
	err = config.DB.
		Where("user_id = ? AND date = ?", userID, day.Date).
		Assign(day).
		FirstOrCreate(&day).Error
	if err != nil {
		return nil, err
	}

	conn.LastSync = time.Now()
	_ = config.DB.Save(&conn).Error

	return &day, nil
}

// TodayActivity returns today's synced day, if any.
func TodayActivity(userID uint) (*models.ActivityData, error) {
	start := time.Now().UTC().Truncate(24 * time.Hour)

	var day models.ActivityData
	err := config.DB.Where("user_id = ? AND date = ?", userID, start).First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}

// ActivityHistory lists recent synced days, newest first.
func ActivityHistory(userID uint, days int) ([]models.ActivityData, error) {
	if days <= 0 || days > 90 {
		days = 14
	}
	var rows []models.ActivityData
	err := config.DB.
		Where("user_id = ? AND date >= ?", userID, time.Now().UTC().AddDate(0, 0, -days)).
		Order("date desc").
		Find(&rows).Error
	return rows, err
}

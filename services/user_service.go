package services

import (
	"errors"
	"fmt"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type SettingsInput struct {
	Username         string  `json:"username"`
	DailyGoal        int     `json:"daily_goal"`
	PreferredUnit    string  `json:"preferred_unit"`
	Theme            string  `json:"theme"`
	AccentColor      string  `json:"accent_color"`
	Gender           string  `json:"gender"`
	WeightKg         float64 `json:"weight_kg"`
	ReminderEnabled  *bool   `json:"reminder_enabled"`
	ReminderInterval int     `json:"reminder_interval"`
	Avatar           string  `json:"avatar"` // data-URI image
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"id":                user.ID,
		"username":          user.Username,
		"email":             user.Email,
		"daily_goal":        user.DailyGoal,
		"preferred_unit":    user.PreferredUnit,
		"theme":             user.Theme,
		"accent_color":      user.AccentColor,
		"gender":            user.Gender,
		"weight_kg":         user.WeightKg,
		"avatar":            user.AvatarPath,
		"reminder_enabled":  user.ReminderEnabled,
		"reminder_interval": user.ReminderInterval,
	}, nil
}

func UpdateUserSettings(userID uint, input SettingsInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.DailyGoal > 0 {
		user.DailyGoal = input.DailyGoal
	}
	if input.PreferredUnit != "" {
		switch input.PreferredUnit {
		case "ml", "oz":
			user.PreferredUnit = input.PreferredUnit
		default:
			return errors.New("preferred_unit must be ml or oz")
		}
	}
	if input.Theme != "" {
		user.Theme = input.Theme
	}
	if input.AccentColor != "" {
		user.AccentColor = input.AccentColor
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.ReminderEnabled != nil {
		user.ReminderEnabled = *input.ReminderEnabled
	}
	if input.ReminderInterval > 0 {
		user.ReminderInterval = input.ReminderInterval
	}
	if input.Avatar != "" {
		url, err := utils.UploadBase64ImageToS3(input.Avatar, "avatars", user.Username)
		if err != nil {
			return fmt.Errorf("failed to upload avatar: %v", err)
		}
		user.AvatarPath = url
	}

	return config.DB.Save(&user).Error
}

func FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

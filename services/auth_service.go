package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/logger"
	"backend/models"
	"backend/utils"

	"go.uber.org/zap"
)

func RegisterUser(username, email, password string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	// Best effort; registration succeeds even if SES is down.
	if err := utils.SendWelcomeEmail(email, username); err != nil {
		logger.Warn("welcome email failed", zap.String("email", email), zap.Error(err))
	}
	return nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", err
	}

	return token, nil
}

// StartPasswordReset stores a short-lived code and mails it to the
// user. Unknown emails return nil so the endpoint does not leak which
// accounts exist.
func StartPasswordReset(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	code := utils.GenerateRandomToken(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(email, code)
}

func CompletePasswordReset(email, code, newPassword string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return errors.New("invalid reset code")
	}
	if user.ResetToken == "" || user.ResetToken != code || time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid reset code")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}

package services

import (
	"errors"

	"backend/config"
	"backend/models"
)

func ListContainers(userID uint) ([]models.Container, error) {
	var containers []models.Container
	err := config.DB.Where("user_id = ?", userID).Order("id asc").Find(&containers).Error
	return containers, err
}

func CreateContainer(userID uint, name string, volume int, drinkTypeID *uint, imagePath string) (*models.Container, error) {
	if name == "" {
		return nil, errors.New("container name is required")
	}
	if volume <= 0 {
		return nil, errors.New("container volume must be positive")
	}
	c := models.Container{
		UserID:      userID,
		Name:        name,
		Volume:      volume,
		DrinkTypeID: drinkTypeID,
		ImagePath:   imagePath,
	}
	if err := config.DB.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func UpdateContainer(userID, containerID uint, name string, volume int, drinkTypeID *uint) (*models.Container, error) {
	c, err := findContainer(userID, containerID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		c.Name = name
	}
	if volume > 0 {
		c.Volume = volume
	}
	if drinkTypeID != nil {
		c.DrinkTypeID = drinkTypeID
	}
	if err := config.DB.Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func DeleteContainer(userID, containerID uint) error {
	c, err := findContainer(userID, containerID)
	if err != nil {
		return err
	}
	return config.DB.Delete(c).Error
}

// LogWithContainer records one full container as an intake entry.
func LogWithContainer(userID, containerID uint) (*models.WaterLog, error) {
	c, err := findContainer(userID, containerID)
	if err != nil {
		return nil, err
	}
	return LogWater(userID, c.Volume, c.DrinkTypeID, &c.ID, models.InputContainer, "logged via container "+c.Name)
}

func findContainer(userID, containerID uint) (*models.Container, error) {
	var c models.Container
	if err := config.DB.Where("id = ? AND user_id = ?", containerID, userID).First(&c).Error; err != nil {
		return nil, errors.New("container not found")
	}
	return &c, nil
}

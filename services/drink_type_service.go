package services

import (
	"backend/config"
	"backend/models"
)

// ListDrinkTypes returns the full catalog.
func ListDrinkTypes() ([]models.DrinkType, error) {
	var types []models.DrinkType
	err := config.DB.Order("id asc").Find(&types).Error
	return types, err
}

// FindDrinkTypeByName looks a catalog entry up by canonical name.
func FindDrinkTypeByName(name string) (*models.DrinkType, error) {
	var dt models.DrinkType
	if err := config.DB.Where("name = ?", name).First(&dt).Error; err != nil {
		return nil, err
	}
	return &dt, nil
}

func hydrationFactors() (map[uint]float64, error) {
	types, err := ListDrinkTypes()
	if err != nil {
		return nil, err
	}
	factors := make(map[uint]float64, len(types))
	for _, t := range types {
		factors[t.ID] = t.HydrationFactor
	}
	return factors, nil
}

package config

import (
	"fmt"
	"log"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.DrinkType{},
		&models.WaterLog{},
		&models.Container{},
		&models.WearableConnection{},
		&models.ActivityData{},
		&models.HydrationRecommendation{},
		&models.Reminder{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	seedDrinkTypes()
}

// seedDrinkTypes makes sure the built-in catalog exists. Factors are
// hydration effectiveness relative to plain water.
func seedDrinkTypes() {
	defaults := []models.DrinkType{
		{Name: "Water", HydrationFactor: 1.0, Color: "#4DA6FF", Icon: "bi-droplet-fill"},
		{Name: "Tea", HydrationFactor: 0.8, Color: "#C68958", Icon: "bi-cup-hot"},
		{Name: "Coffee", HydrationFactor: 0.6, Color: "#6F4E37", Icon: "bi-cup-hot-fill"},
		{Name: "Milk", HydrationFactor: 0.9, Color: "#F5F5DC", Icon: "bi-cup-straw"},
		{Name: "Juice", HydrationFactor: 0.7, Color: "#FFA500", Icon: "bi-cup-straw"},
		{Name: "Soda", HydrationFactor: 0.3, Color: "#8B0000", Icon: "bi-cup-straw"},
		{Name: "Pepsi", HydrationFactor: 0.3, Color: "#0E4C92", Icon: "bi-cup-straw"},
	}
	for _, dt := range defaults {
		var existing models.DrinkType
		if err := DB.Where("name = ?", dt.Name).First(&existing).Error; err != nil {
			if err := DB.Create(&dt).Error; err != nil {
				log.Printf("seed drink type %s failed: %v", dt.Name, err)
			}
		}
	}
}

package controllers

import (
	"fmt"
	"net/http"

	"backend/logger"
	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ScanLabelInput struct {
	Image string `json:"image" binding:"required"` // data-URI
	Log   bool   `json:"log"`                      // log immediately instead of returning a candidate
}

// ScanLabel OCRs a bottle photo and returns the detected volume and
// drink type. With log=true the intake is recorded right away.
func ScanLabel(c *gin.Context) {
	uid := c.GetUint("userID")

	var input ScanLabelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageBytes, err := utils.DecodeBase64Image(input.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.ReadLabel(imageBytes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Keep the photo for the log entry; OCR already succeeded, so a
	// failed upload only loses the thumbnail.
	photoURL, err := utils.UploadBase64ImageToS3(input.Image, "labels", fmt.Sprintf("user-%d", uid))
	if err != nil {
		logger.Warn("label photo upload failed", zap.Uint("user_id", uid), zap.Error(err))
	}

	if !input.Log {
		c.JSON(http.StatusOK, gin.H{"scan": result, "photo_url": photoURL})
		return
	}

	var drinkTypeID *uint
	if dt, err := services.FindDrinkTypeByName(result.DrinkType); err == nil {
		drinkTypeID = &dt.ID
	}
	log, err := services.LogWater(uid, result.VolumeML, drinkTypeID, nil, models.InputOCR, result.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"scan": result, "photo_url": photoURL, "log": log})
}

type LogLabelInput struct {
	VolumeML  int    `json:"volume_ml" binding:"required"`
	DrinkType string `json:"drink_type"`
	Text      string `json:"text"`
}

// LogFromLabel persists a scan candidate the user has reviewed,
// possibly after editing the volume or drink type. No second OCR pass.
func LogFromLabel(c *gin.Context) {
	uid := c.GetUint("userID")

	var input LogLabelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.VolumeML <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "volume_ml must be positive"})
		return
	}

	var drinkTypeID *uint
	if input.DrinkType != "" {
		if dt, err := services.FindDrinkTypeByName(input.DrinkType); err == nil {
			drinkTypeID = &dt.ID
		}
	}
	log, err := services.LogWater(uid, input.VolumeML, drinkTypeID, nil, models.InputOCR, input.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, log)
}

package controllers

import (
	"errors"
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type BarcodeController struct {
	Barcodes *services.BarcodeService
}

func NewBarcodeController(bs *services.BarcodeService) *BarcodeController {
	return &BarcodeController{Barcodes: bs}
}

// Lookup resolves a scanned barcode to a beverage candidate.
func (bc *BarcodeController) Lookup(c *gin.Context) {
	code := c.Param("code")

	product, err := bc.Barcodes.Lookup(code)
	if err != nil {
		if errors.Is(err, services.ErrNotADrink) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// Log resolves a barcode and records the product's volume.
func (bc *BarcodeController) Log(c *gin.Context) {
	uid := c.GetUint("userID")
	code := c.Param("code")

	product, err := bc.Barcodes.Lookup(code)
	if err != nil {
		if errors.Is(err, services.ErrNotADrink) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var drinkTypeID *uint
	if dt, err := services.FindDrinkTypeByName(product.DrinkType); err == nil {
		drinkTypeID = &dt.ID
	}
	log, err := services.LogWater(uid, product.VolumeML, drinkTypeID, nil, models.InputBarcode, product.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product, "log": log})
}

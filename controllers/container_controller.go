package controllers

import (
	"net/http"
	"strconv"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ContainerInput struct {
	Name        string `json:"name" binding:"required"`
	Volume      int    `json:"volume" binding:"required"`
	DrinkTypeID *uint  `json:"drink_type_id"`
	Image       string `json:"image"` // optional data-URI
}

func ListContainers(c *gin.Context) {
	uid := c.GetUint("userID")

	containers, err := services.ListContainers(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"containers": containers})
}

func CreateContainer(c *gin.Context) {
	uid := c.GetUint("userID")

	var input ContainerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Volume <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "volume must be positive"})
		return
	}

	imagePath := ""
	if input.Image != "" {
		url, err := utils.UploadBase64ImageToS3(input.Image, "containers", input.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		imagePath = url
	}

	container, err := services.CreateContainer(uid, input.Name, input.Volume, input.DrinkTypeID, imagePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, container)
}

func UpdateContainer(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid container id"})
		return
	}

	var input ContainerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	container, err := services.UpdateContainer(uid, uint(id), input.Name, input.Volume, input.DrinkTypeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, container)
}

func DeleteContainer(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid container id"})
		return
	}

	if err := services.DeleteContainer(uid, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "container deleted"})
}

// LogFromContainer logs the container's full volume in one tap.
func LogFromContainer(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid container id"})
		return
	}

	log, err := services.LogWithContainer(uid, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, log)
}

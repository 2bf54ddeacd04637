package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ChatbotController struct {
	Bot *services.ChatbotService
}

func NewChatbotController(bot *services.ChatbotService) *ChatbotController {
	return &ChatbotController{Bot: bot}
}

type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

func (cc *ChatbotController) Message(c *gin.Context) {
	uid := c.GetUint("userID")

	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.FindUserByID(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	total, _, err := services.TodayIntake(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	reply, parsed := cc.Bot.ProcessMessage(input.Message, total, user.DailyGoal)
	if parsed != nil {
		if _, err := services.LogParsedIntake(uid, *parsed, models.InputChat); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, reply)
}

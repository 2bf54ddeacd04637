package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type TipsController struct {
	Tips *services.TipsService
}

func NewTipsController(ts *services.TipsService) *TipsController {
	return &TipsController{Tips: ts}
}

func (tc *TipsController) GetTips(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := services.FindUserByID(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	tips, err := tc.Tips.GetTips(uid, user.DailyGoal)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

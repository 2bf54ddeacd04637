package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type IntakeController struct {
	Parser *services.IntakeParser
}

func NewIntakeController(parser *services.IntakeParser) *IntakeController {
	return &IntakeController{Parser: parser}
}

type IntakeInput struct {
	Text string `json:"text" binding:"required"`
}

// Parse runs the utterance through the parser without logging
// anything, so clients can show a confirmation first.
func (ic *IntakeController) Parse(c *gin.Context) {
	var input IntakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parsed := ic.Parser.Parse(input.Text)
	c.JSON(http.StatusOK, parsed)
}

// LogVoice records an intake from a transcribed voice utterance.
func (ic *IntakeController) LogVoice(c *gin.Context) {
	ic.log(c, models.InputVoice)
}

// LogText records an intake from the quick text entry field.
func (ic *IntakeController) LogText(c *gin.Context) {
	ic.log(c, models.InputManual)
}

func (ic *IntakeController) log(c *gin.Context, inputMethod string) {
	uid := c.GetUint("userID")

	var input IntakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parsed := ic.Parser.Parse(input.Text)
	if !parsed.Recognized {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"parsed": parsed,
			"error":  "could not understand the intake",
		})
		return
	}

	log, err := services.LogParsedIntake(uid, parsed, inputMethod)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"parsed": parsed, "log": log})
}

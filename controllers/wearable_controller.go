package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type WearableController struct {
	OAuth *services.OAuthService
}

func NewWearableController(oauth *services.OAuthService) *WearableController {
	return &WearableController{OAuth: oauth}
}

// Connect returns the provider's authorization URL for the client to
// open in a browser.
func (wc *WearableController) Connect(c *gin.Context) {
	uid := c.GetUint("userID")
	platform := c.Param("platform")

	url, state, err := wc.OAuth.AuthorizationURL(platform, uid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authorization_url": url, "state": state})
}

// Callback finishes the OAuth dance. The provider redirects here, so
// this route is unauthenticated; the state ties it back to the user.
func (wc *WearableController) Callback(c *gin.Context) {
	platform := c.Param("platform")
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and state required"})
		return
	}

	uid, err := wc.OAuth.ConsumeState(platform, state)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := wc.OAuth.ExchangeCode(platform, code)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if _, err := services.SaveWearableConnection(uid, platform, tokens); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "connected", "platform": platform})
}

func (wc *WearableController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	conns, err := services.ListWearableConnections(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"connections": conns})
}

func (wc *WearableController) Disconnect(c *gin.Context) {
	uid := c.GetUint("userID")
	platform := c.Param("platform")

	if err := services.DisconnectWearable(uid, platform); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "disconnected"})
}

// Sync pulls today's activity from the platform and stores it.
func (wc *WearableController) Sync(c *gin.Context) {
	uid := c.GetUint("userID")
	platform := c.Param("platform")

	day, err := services.SyncWearable(wc.OAuth, uid, platform)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": day})
}

// Activity returns today's synced data plus the hydration bonus it
// earns.
func (wc *WearableController) Activity(c *gin.Context) {
	uid := c.GetUint("userID")

	day, err := services.TodayActivity(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user, err := services.FindUserByID(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	bonus := services.ActivityHydrationBonus(user.WeightKg, day)
	c.JSON(http.StatusOK, gin.H{"activity": day, "hydration_bonus": bonus})
}

func (wc *WearableController) ActivityHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	days, _ := strconv.Atoi(c.DefaultQuery("days", "14"))
	rows, err := services.ActivityHistory(uid, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": rows})
}

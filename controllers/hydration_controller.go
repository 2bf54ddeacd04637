package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type HydrationController struct {
	Weather *services.WeatherService
}

func NewHydrationController(ws *services.WeatherService) *HydrationController {
	return &HydrationController{Weather: ws}
}

// Recommend computes a weather and activity adjusted daily goal.
// Takes either ?city= or ?lat=&lon=; falls back to mock weather when
// the weather API is unavailable.
func (hc *HydrationController) Recommend(c *gin.Context) {
	uid := c.GetUint("userID")

	var (
		w   *services.Weather
		err error
	)
	city := c.Query("city")
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	switch {
	case latStr != "" && lonStr != "":
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}
		w, err = hc.Weather.CurrentByCoords(lat, lon)
	case city != "":
		w, err = hc.Weather.CurrentByCity(city)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "city or lat/lon required"})
		return
	}
	if err != nil {
		w = services.MockWeather(city)
	}

	activityLevel := "sedentary"
	if day, err := services.TodayActivity(uid); err == nil && day != nil {
		activityLevel = day.ActivityLevel()
	}

	user, err := services.FindUserByID(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	rec, err := services.RecommendHydration(uid, w, activityLevel, user.DailyGoal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"weather": w, "recommendation": rec})
}

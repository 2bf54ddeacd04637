package controllers

import (
	"fmt"
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// ExportLogs streams a user's water logs as CSV or JSON.
// Query params: format=csv|json, from=YYYY-MM-DD, to=YYYY-MM-DD.
func ExportLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	format := c.DefaultQuery("format", "csv")

	to := time.Now()
	from := to.AddDate(0, -1, 0)
	if s := c.Query("from"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return
		}
		to = t.Add(24 * time.Hour) // inclusive end date
	}

	filename := fmt.Sprintf("water-logs-%s", time.Now().Format("2006-01-02"))
	switch format {
	case "csv":
		data, err := services.ExportCSV(uid, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, filename))
		c.Data(http.StatusOK, "text/csv", data)
	case "json":
		data, err := services.ExportJSON(uid, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.json"`, filename))
		c.Data(http.StatusOK, "application/json", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or json"})
	}
}

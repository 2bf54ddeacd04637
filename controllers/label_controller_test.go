package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLogFromLabelRejectsBadCandidates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Invalid candidates must be rejected before anything is persisted.
	for _, body := range []string{
		`{"volume_ml":0,"drink_type":"Water"}`,
		`{"volume_ml":-250}`,
		`{}`,
		`not json`,
	} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("userID", uint(1))
		c.Request = httptest.NewRequest(http.MethodPost, "/intake/label/log", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		LogFromLabel(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

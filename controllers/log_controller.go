package controllers

import (
	"Henteklar/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLogs lists check-in/out records. Parents only see their own children.
func GetLogs(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	var filter models.LogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, err)
		return
	}

	logs, err := visibilityService.Logs(c.Request.Context(), session, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": logs})
}

func GetHistory(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	var filter models.HistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, err)
		return
	}

	entries, err := visibilityService.History(c.Request.Context(), session, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

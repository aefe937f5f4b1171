package controllers

import (
	"Henteklar/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

var settingsService SettingsServiceInterface

func SetSettingsService(service SettingsServiceInterface) {
	settingsService = service
}

func GetSettings(c *gin.Context) {
	settings, err := settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": settings})
}

func UpdateSettings(c *gin.Context) {
	var input models.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	settings, err := settingsService.UpdateSettings(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": settings})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTranslations returns the message catalog, in ?lang= or the
// Accept-Language match.
func GetTranslations(c *gin.Context) {
	if translationService == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Translation service not initialized",
		})
		return
	}

	lang := c.Query("lang")
	if lang == "" {
		lang = language(c)
	} else {
		lang = translationService.MatchLanguage(lang)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"lang":         lang,
		"translations": translationService.GetAllTranslations(lang),
	})
}

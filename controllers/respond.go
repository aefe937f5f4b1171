package controllers

import (
	"Henteklar/middlewares"
	"Henteklar/models"
	"Henteklar/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	translationService TranslationServiceInterface
	logger             = zap.NewNop()
)

func init() {
	// Request models carry `validate` tags, shared with the services.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.SetTagName("validate")
	}
}

func SetTranslationService(service TranslationServiceInterface) {
	translationService = service
}

func SetLogger(l *zap.Logger) {
	logger = l
}

func language(c *gin.Context) string {
	if translationService == nil {
		return services.LangNorwegian
	}
	return translationService.MatchLanguage(c.GetHeader("Accept-Language"))
}

func localize(c *gin.Context, key, fallback string) string {
	if translationService == nil {
		return fallback
	}
	return translationService.Translate(language(c), key, fallback)
}

// respondError maps a service error to its HTTP status and a localized body.
func respondError(c *gin.Context, err error) {
	var authErr *services.AuthError
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": localize(c, authErr.Code, authErr.Message), "code": authErr.Code})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": localize(c, validationErr.Code, validationErr.Message), "code": validationErr.Code})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": localize(c, "not_found", "not found")})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": localize(c, "forbidden", "forbidden")})
	case errors.Is(err, services.ErrRemoteUnavailable):
		logger.Warn("remote service unavailable", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": localize(c, "unavailable", "service unavailable")})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": localize(c, "internal_error", "internal error")})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": localize(c, "invalid_request", "invalid request"), "details": err.Error()})
}

// currentSession aborts with 401 when the request was not authenticated.
func currentSession(c *gin.Context) (models.Session, bool) {
	session, ok := middlewares.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": localize(c, "unauthorized", "unauthorized")})
		c.Abort()
	}
	return session, ok
}

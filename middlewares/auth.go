package middlewares

import (
	"Henteklar/models"
	"Henteklar/services"
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionParser verifies a bearer token and returns the session it carries.
type SessionParser interface {
	Parse(token string) (models.Session, error)
}

// SessionRefresher reloads the account a session belongs to.
type SessionRefresher interface {
	RefreshSession(ctx context.Context, session models.Session) (models.Session, error)
}

// AuthMiddleware requires a valid bearer token. The websocket endpoint may
// pass the token as the "token" query parameter since browsers cannot set
// headers on the upgrade request. With a refresher, the role and e-mail
// come from the stored account rather than the token.
func AuthMiddleware(tokens SessionParser, refresher SessionRefresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if c.IsWebsocket() {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		session, err := tokens.Parse(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		if refresher != nil && session.AccountID != "" {
			session, err = refresher.RefreshSession(c.Request.Context(), session)
			if errors.Is(err, services.ErrRemoteUnavailable) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
				c.Abort()
				return
			}
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
				c.Abort()
				return
			}
		}
		if session.AccountID == "" || session.Role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: missing account"})
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Set("firebase_uid", session.FirebaseUID)
		c.Set("role", session.Role)
		c.Next()
	}
}

// RequireRole lets the request through only for the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok || !slices.Contains(roles, session.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession returns the session AuthMiddleware stored on the request.
func GetSession(c *gin.Context) (models.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return models.Session{}, false
	}
	session, ok := v.(models.Session)
	return session, ok
}

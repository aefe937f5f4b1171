package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DebugSession echoes what the auth middleware put on the request.
func DebugSession(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	firebaseUID, _ := c.Get("firebase_uid")
	role, _ := c.Get("role")

	clients := 0
	if liveFeed != nil {
		clients = liveFeed.ClientCount()
	}

	c.JSON(http.StatusOK, gin.H{
		"session":           session,
		"firebase_uid":      firebaseUID,
		"role":              role,
		"language":          language(c),
		"websocket_clients": clients,
	})
}

package controllers

import (
	"Henteklar/models"
	"Henteklar/services"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	childService      ChildServiceInterface
	visibilityService VisibilityServiceInterface
	attendanceService AttendanceServiceInterface
)

func SetChildService(service ChildServiceInterface) {
	childService = service
}

func SetVisibilityService(service VisibilityServiceInterface) {
	visibilityService = service
}

func SetAttendanceService(service AttendanceServiceInterface) {
	attendanceService = service
}

func ListChildren(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	children, err := visibilityService.ListChildren(c.Request.Context(), session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": children})
}

func ReadChild(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	child, err := visibilityService.GetChild(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": child})
}

func CreateChild(c *gin.Context) {
	var input models.ChildInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	child, err := childService.CreateChild(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": child})
}

func UpdateChild(c *gin.Context) {
	var input models.ChildInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	child, err := childService.UpdateChild(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": child})
}

func DeleteChild(c *gin.Context) {
	if err := childService.DeleteChild(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Child deleted successfully"})
}

func CheckIn(c *gin.Context) {
	transition(c, attendanceService.CheckIn)
}

func CheckOut(c *gin.Context) {
	transition(c, attendanceService.CheckOut)
}

type transitionFunc func(ctx context.Context, childID, performedBy string) (*services.TransitionResult, error)

func transition(c *gin.Context, do transitionFunc) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	childID := c.Param("id")
	if err := visibilityService.CanActOnChild(c.Request.Context(), session, childID); err != nil {
		respondError(c, err)
		return
	}

	result, err := do(c.Request.Context(), childID, session.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result})
}

func AddNote(c *gin.Context) {
	var input models.NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	child, err := childService.AddNote(c.Request.Context(), c.Param("id"), input.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": child})
}

func DeleteNote(c *gin.Context) {
	child, err := childService.DeleteNote(c.Request.Context(), c.Param("id"), c.Param("noteId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": child})
}

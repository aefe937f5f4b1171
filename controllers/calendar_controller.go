package controllers

import (
	"Henteklar/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

var calendarService CalendarServiceInterface

func SetCalendarService(service CalendarServiceInterface) {
	calendarService = service
}

func ListEvents(c *gin.Context) {
	var filter models.CalendarFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, err)
		return
	}

	events, err := calendarService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": events})
}

func CreateEvent(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	var input models.CalendarEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	event, err := calendarService.Create(c.Request.Context(), input, session.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": event})
}

func UpdateEvent(c *gin.Context) {
	var input models.CalendarEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	event, err := calendarService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": event})
}

func DeleteEvent(c *gin.Context) {
	if err := calendarService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

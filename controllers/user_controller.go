package controllers

import (
	"Henteklar/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

var accountService AccountServiceInterface

func SetAccountService(service AccountServiceInterface) {
	accountService = service
}

func ListUsers(c *gin.Context) {
	accounts, err := accountService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": accounts})
}

func ReadUser(c *gin.Context) {
	account, err := accountService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": account})
}

func CreateUser(c *gin.Context) {
	var input models.AccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	account, err := accountService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": account})
}

func UpdateUser(c *gin.Context) {
	var input models.AccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	account, err := accountService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": account})
}

// DeleteUser removes the account and detaches it from every child.
func DeleteUser(c *gin.Context) {
	if err := accountService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

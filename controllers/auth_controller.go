package controllers

import (
	"Henteklar/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var authService AuthServiceInterface

func SetAuthService(service AuthServiceInterface) {
	authService = service
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	result, err := authService.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "token": result.Token, "user": result.Account})
}

func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	result, err := authService.SignUp(c.Request.Context(), input.Email, input.Password, input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": true, "token": result.Token, "user": result.Account})
}

// ProviderStart returns the provider's consent URL. The client keeps the
// state and compares it when the provider redirects back.
func ProviderStart(c *gin.Context) {
	state := uuid.NewString()
	url, err := authService.ProviderAuthURL(c.Param("provider"), state)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "state": state})
}

func ProviderCallback(c *gin.Context) {
	var input struct {
		Code string `json:"code" validate:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	result, err := authService.SignInWithProvider(c.Request.Context(), c.Param("provider"), input.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "token": result.Token, "user": result.Account})
}

func RequestPasswordReset(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := authService.RequestPasswordReset(c.Request.Context(), input.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": localize(c, "password_reset_sent", msg)})
}

func Logout(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	if err := authService.SignOut(c.Request.Context(), session); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true})
}

func GetMe(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	account, err := authService.Profile(c.Request.Context(), session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": account})
}

func UpdateMe(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	var input models.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	account, err := authService.UpdateProfile(c.Request.Context(), session, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": account})
}

func ChangePassword(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	var input struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	if err := authService.ChangePassword(c.Request.Context(), session, input.OldPassword, input.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true})
}

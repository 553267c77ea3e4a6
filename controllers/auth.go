package controllers

import (
	"net/http"

	"driveschool-backend/store"
	"driveschool-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Store *store.Store
}

type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// Login checks the admin password against the store. There is no session
// or token: success flips the store's flag until logout or restart.
func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !a.Store.Login(input.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Incorrect password.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Login successful",
		"authenticated": true,
	})
}

func (a *AuthController) Logout(c *gin.Context) {
	a.Store.Logout()
	c.JSON(http.StatusOK, gin.H{
		"message":       "Logged out",
		"authenticated": false,
	})
}

// Me reports the current login state so the admin panel can decide whether
// to show the login screen after a reload.
func (a *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": a.Store.IsAuthenticated()})
}

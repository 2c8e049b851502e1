// controllers/auth.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weatherbot-backend/utils"
)

type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// AuthController guards the admin API with a single operator credential.
type AuthController struct {
	// bcrypt hash of ADMIN_PASSWORD, computed once at startup.
	PasswordHash string
}

func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if a.PasswordHash == "" {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Admin access is not configured")
		return
	}
	if !utils.CheckPasswordHash(input.Password, a.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken("admin")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

package handlers

import (
	"errors"
	"net/http"

	"ironhorse/services/owner"

	"github.com/gin-gonic/gin"
)

// OwnerLoginHandler authenticates the store owner and returns a JWT.
func (hb *HandlerBundle) OwnerLoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, acct, err := hb.Owner.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, owner.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "email": acct.Email})
}

// OwnerLogoutHandler revokes the current owner token.
func (hb *HandlerBundle) OwnerLogoutHandler(c *gin.Context) {
	ownerID := c.GetString("ownerID")
	if err := hb.Owner.RevokeToken(ownerID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// OwnerChangePasswordHandler rotates the owner password.
func (hb *HandlerBundle) OwnerChangePasswordHandler(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ownerID := c.GetString("ownerID")
	if err := hb.Owner.ChangePassword(ownerID, input.CurrentPassword, input.NewPassword); err != nil {
		if errors.Is(err, owner.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "current password is incorrect"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "password changed"})
}

package handlers

import (
	"net/http"

	"ironhorse/models"
	"ironhorse/services/scheduling"

	"github.com/gin-gonic/gin"
)

// GetOperatingHoursHandler returns the weekly schedule.
func (hb *HandlerBundle) GetOperatingHoursHandler(c *gin.Context) {
	hours, err := hb.SettingsRepo.GetOperatingHours()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load operating hours"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hours": hours})
}

// SetOperatingHoursHandler replaces the weekly schedule (owner only).
func (hb *HandlerBundle) SetOperatingHoursHandler(c *gin.Context) {
	var hours models.OperatingHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := scheduling.ValidateOperatingHours(hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := hb.SettingsRepo.SetOperatingHours(hours); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save operating hours"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hours": hours})
}

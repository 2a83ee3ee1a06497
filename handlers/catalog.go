package handlers

import (
	"net/http"

	"neatspin/models"

	"github.com/gin-gonic/gin"
)

// GetAvailableServices handles GET /api/booking/services.
func GetAvailableServices(c *gin.Context) {
	services := []models.ServiceOption{
		models.ServiceCatalog[models.ServiceBasic],
		models.ServiceCatalog[models.ServicePremium],
		models.ServiceCatalog[models.ServiceFamily],
	}
	c.JSON(http.StatusOK, services)
}

// GetPickupTimeSlots handles GET /api/booking/timeslots.
func GetPickupTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, models.PickupTimeSlots)
}

// File: neatspin/handlers/admin.go
package handlers

import (
	"net/http"

	bookingRepo "neatspin/database/repository/booking"
	"neatspin/models"
	"neatspin/services/user"
	"neatspin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Bookings    bookingRepo.BookingRepository
	UserService user.UserService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bookings bookingRepo.BookingRepository, us user.UserService) *AdminHandler {
	return &AdminHandler{
		Bookings:    bookings,
		UserService: us,
	}
}

// ListBookingsHandler returns all bookings, optionally filtered by exact
// status match via the "status" query parameter.
func (ah *AdminHandler) ListBookingsHandler(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.IsValidStatus(status) {
		utils.JSONError(c, http.StatusBadRequest, "invalid status filter", status)
		return
	}

	bookings, err := ah.Bookings.List(c.Request.Context(), status)
	if err != nil {
		zap.L().Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler returns a single booking by id.
func (ah *AdminHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")

	booking, err := ah.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to fetch booking", zap.String("bookingID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch the booking"})
		return
	}
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", id)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBookingStatusHandler sets a booking's status to one of the enumerated
// values. Last writer wins; there is no version check.
func (ah *AdminHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !models.IsValidStatus(input.Status) {
		utils.JSONError(c, http.StatusBadRequest, "invalid status", input.Status)
		return
	}

	id := c.Param("id")
	if err := ah.Bookings.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		zap.L().Error("Failed to update booking status",
			zap.String("bookingID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update the booking status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": input.Status})
}

// PromoteToAdminHandler sets the is_admin flag on the account matching the
// supplied email.
func (ah *AdminHandler) PromoteToAdminHandler(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email is required", err.Error())
		return
	}

	if err := ah.UserService.PromoteToAdmin(input.Email); err != nil {
		zap.L().Warn("Failed to promote user", zap.String("email", input.Email), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User " + input.Email + " has been promoted to admin",
	})
}

package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all route handlers for registration.
type HandlerBundle struct {
	// Wizard endpoints.
	StartSession gin.HandlerFunc
	GetSession   gin.HandlerFunc
	UpdateDraft  gin.HandlerFunc
	AdvanceStep  gin.HandlerFunc
	BackStep     gin.HandlerFunc
	Submit       gin.HandlerFunc
	UpdateEmail  gin.HandlerFunc

	// Catalog endpoints.
	GetAvailableServices gin.HandlerFunc
	GetPickupTimeSlots   gin.HandlerFunc

	// Payment endpoints.
	CreatePaymentIntent gin.HandlerFunc
	CheckPaymentStatus  gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc

	// Admin endpoints.
	AdminHandler *AdminHandler
}

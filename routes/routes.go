package routes

import (
	"net/http"
	"time"

	"neatspin/handlers"
	"neatspin/middleware"
	"neatspin/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWizardRoutes registers the booking wizard session endpoints.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.POST("/session", middleware.OptionalUserAuthMiddleware(), hb.StartSession)
		api.GET("/session/:sessionID", hb.GetSession)
		api.PUT("/session/:sessionID", hb.UpdateDraft)
		api.POST("/session/:sessionID/advance", hb.AdvanceStep)
		api.POST("/session/:sessionID/back", hb.BackStep)
		api.POST("/session/:sessionID/submit", hb.Submit)
		api.POST("/session/:sessionID/email", hb.UpdateEmail)
	}
}

// RegisterBookingRoutes registers the public catalog endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/services", hb.GetAvailableServices)
		api.GET("/timeslots", hb.GetPickupTimeSlots)
	}
}

// RegisterPaymentRoutes registers the payment intent endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/intent", hb.CreatePaymentIntent)
		api.POST("/status", hb.CheckPaymentStatus)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
	}
}

// RegisterAdminRoutes registers admin endpoints behind the static admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AdminAuthMiddleware())
		api.GET("/bookings", hb.AdminHandler.ListBookingsHandler)
		api.GET("/bookings/:id", hb.AdminHandler.GetBookingHandler)
		api.PATCH("/bookings/:id/status", hb.AdminHandler.UpdateBookingStatusHandler)
		api.POST("/promote", hb.AdminHandler.PromoteToAdminHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterWizardRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

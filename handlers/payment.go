package handlers

import (
	"net/http"

	"neatspin/services/payment"
	"neatspin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the payment intent endpoints.
type PaymentHandler struct {
	Svc    payment.PaymentService
	Logger *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Logger: logger}
}

// CreateIntent handles POST /api/payments/intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var input struct {
		Service string `json:"service" binding:"required"`
		Email   string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	intent, err := h.Svc.CreateIntent(c.Request.Context(), input.Service, input.Email)
	if err != nil {
		h.Logger.Error("CreateIntent: failed", zap.String("service", input.Service), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "failed to create payment intent", err.Error())
		return
	}
	c.JSON(http.StatusOK, intent)
}

// CheckStatus handles POST /api/payments/status.
func (h *PaymentHandler) CheckStatus(c *gin.Context) {
	var input struct {
		PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	status, err := h.Svc.CheckStatus(c.Request.Context(), input.PaymentIntentID)
	if err != nil {
		h.Logger.Error("CheckStatus: failed", zap.String("intentID", input.PaymentIntentID), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "failed to check payment status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

package handlers

import (
	"errors"
	"net/http"

	"neatspin/models"
	"neatspin/services/mailer"
	"neatspin/services/wizard"
	"neatspin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the booking wizard session endpoints.
type WizardHandler struct {
	Svc    wizard.WizardService
	Logger *zap.Logger
}

// NewWizardHandler creates a new WizardHandler.
func NewWizardHandler(svc wizard.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Svc: svc, Logger: logger}
}

// StartSession creates a new wizard session. When the request carries a valid
// user token, the draft's contact email is prefilled from it.
func (h *WizardHandler) StartSession(c *gin.Context) {
	userEmail := c.GetString("userEmail")

	session, err := h.Svc.Start(userEmail)
	if err != nil {
		h.Logger.Error("StartSession: failed to create session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession returns the current wizard state.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.Get(c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateDraft replaces the session's draft form fields.
func (h *WizardHandler) UpdateDraft(c *gin.Context) {
	var input struct {
		Draft models.DraftBooking `json:"draft"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Svc.UpdateDraft(c.Param("sessionID"), input.Draft)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Advance moves the wizard one step forward.
func (h *WizardHandler) Advance(c *gin.Context) {
	session, err := h.Svc.Advance(c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Back moves the wizard one step backward.
func (h *WizardHandler) Back(c *gin.Context) {
	session, err := h.Svc.Back(c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Submit finalizes the booking.
func (h *WizardHandler) Submit(c *gin.Context) {
	result, err := h.Svc.Submit(c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateEmail reschedules or cancels the pending confirmation email for the
// session, matching the update-email contract.
func (h *WizardHandler) UpdateEmail(c *gin.Context) {
	var input models.EmailUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sessionID := c.Param("sessionID")

	var (
		result *models.EmailUpdateResult
		err    error
	)
	switch {
	case input.Cancel:
		result, err = h.Svc.CancelEmail(sessionID)
	case input.ScheduleTime != "":
		result, err = h.Svc.RescheduleEmail(sessionID, input.ScheduleTime)
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid update request",
			"Provide either 'scheduleTime' or 'cancel' parameter.")
		return
	}
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *WizardHandler) respondWizardError(c *gin.Context, err error) {
	var submitErr *wizard.SubmitError
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, wizard.ErrStepIncomplete):
		utils.JSONError(c, http.StatusBadRequest, "current step is incomplete", "")
	case errors.Is(err, wizard.ErrAlreadySubmitting):
		utils.JSONError(c, http.StatusConflict, "submission already in progress", "")
	case errors.Is(err, wizard.ErrNoEmailID):
		utils.JSONError(c, http.StatusBadRequest, "no confirmation email to manage", "")
	case errors.Is(err, wizard.ErrBadScheduleTime):
		utils.JSONError(c, http.StatusBadRequest, "invalid schedule time", "expected an RFC3339 timestamp")
	case errors.Is(err, mailer.ErrEmailNotFound):
		utils.JSONError(c, http.StatusNotFound, "scheduled email not found", "")
	case errors.As(err, &submitErr):
		h.Logger.Error("booking submission failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save booking", "please try again")
	default:
		h.Logger.Error("wizard request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "something went wrong", "please try again")
	}
}

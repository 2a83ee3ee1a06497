package wizard

import (
	"context"
	"time"

	"neatspin/models"

	"go.uber.org/zap"
)

// Submit finalizes the wizard: it persists the booking record and then sends
// the confirmation email. Persistence failure halts the submission with the
// draft intact; an email failure is non-fatal and only degrades the notice.
// The submitting guard is released on every exit path.
func (s *DefaultWizardService) Submit(sessionID string) (*models.SubmitResult, error) {
	ctx := context.Background()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// A draft is submittable only from the payment step with every gate
	// satisfied. Drafts can be edited freely between steps, so the earlier
	// gates are re-checked here rather than trusted from navigation.
	if session.Step != StepPayment {
		return nil, ErrStepIncomplete
	}
	for step := StepService; step <= StepPayment; step++ {
		if !ValidateStep(step, session.Draft) {
			return nil, ErrStepIncomplete
		}
	}

	// Single-flight guard: a second submit while one is in flight is rejected
	// without touching the repository.
	ok, err := s.Cache.SetNX(ctx, submitKey(sessionID), "1", submitGuardTTL).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadySubmitting
	}
	defer s.Cache.Del(ctx, submitKey(sessionID))

	session.IsSubmitting = true
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	result, err := s.doSubmit(ctx, session)

	session.IsSubmitting = false
	if saveErr := s.saveSession(ctx, session); saveErr != nil {
		s.Logger.Error("failed to persist wizard session after submit",
			zap.String("sessionID", sessionID), zap.Error(saveErr))
	}
	return result, err
}

// doSubmit runs the persistence-then-email sequence, mutating the session on
// success (draft reset, step back to 1, email id recorded).
func (s *DefaultWizardService) doSubmit(ctx context.Context, session *models.WizardSession) (*models.SubmitResult, error) {
	draft := session.Draft

	scheduleTime := ""
	if draft.ScheduleEmailFor != "" {
		t, err := time.Parse(time.RFC3339, draft.ScheduleEmailFor)
		if err != nil {
			return nil, ErrBadScheduleTime
		}
		scheduleTime = t.Format(time.RFC3339)
	}

	var notes *string
	if draft.Notes != "" {
		n := draft.Notes
		notes = &n
	}

	booking := models.Booking{
		Service:       draft.Service,
		Date:          draft.Date,
		Time:          draft.Time,
		Name:          draft.Name,
		Email:         draft.Email,
		Phone:         draft.Phone,
		Address:       draft.Address,
		Notes:         notes,
		PaymentMethod: draft.PaymentMethod,
		Status:        models.StatusPending,
	}

	bookingID, err := s.Repo.Create(ctx, booking)
	if err != nil {
		s.Logger.Error("booking persistence failed",
			zap.String("sessionID", session.SessionID), zap.Error(err))
		return nil, newSubmitError("persistence", err.Error())
	}
	booking.ID = bookingID

	emailReq := models.ConfirmationEmailRequest{
		Service:       draft.Service,
		Date:          draft.Date,
		Time:          draft.Time,
		Name:          draft.Name,
		Email:         draft.Email,
		Phone:         draft.Phone,
		Address:       draft.Address,
		Notes:         draft.Notes,
		PaymentMethod: draft.PaymentMethod,
		ScheduleTime:  scheduleTime,
		UseTestEmail:  draft.UseTestEmail,
	}

	result := &models.SubmitResult{Booking: &booking}

	emailRes, err := s.Mailer.SendConfirmation(ctx, emailReq)
	if err != nil {
		// The booking stands; a human follows up on the email.
		s.Logger.Warn("confirmation email failed after booking persisted",
			zap.String("bookingID", bookingID), zap.Error(err))
		result.Notice = models.NoticeEmailFailed
	} else {
		result.EmailID = emailRes.EmailID
		session.SentEmailID = emailRes.EmailID
		switch {
		case emailRes.Scheduled:
			result.Notice = models.NoticeScheduled
		case emailRes.TestMode:
			result.Notice = models.NoticeConfirmedTest
		default:
			result.Notice = models.NoticeConfirmed
		}
	}

	// Reset the wizard for the next booking.
	session.Draft = s.initialDraft(session.UserEmail)
	session.Step = StepService
	session.PaymentIntentID = ""
	session.PrefetchGen++

	s.Logger.Info("booking submitted",
		zap.String("sessionID", session.SessionID),
		zap.String("bookingID", bookingID),
		zap.String("notice", result.Notice))
	return result, nil
}

// RescheduleEmail moves the pending confirmation email to a new send time.
// Requires an email id recorded by a previous successful submission.
func (s *DefaultWizardService) RescheduleEmail(sessionID, scheduleTime string) (*models.EmailUpdateResult, error) {
	ctx := context.Background()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.SentEmailID == "" {
		return nil, ErrNoEmailID
	}

	at, err := time.Parse(time.RFC3339, scheduleTime)
	if err != nil {
		return nil, ErrBadScheduleTime
	}

	return s.Mailer.Reschedule(ctx, session.SentEmailID, at)
}

// CancelEmail voids the pending confirmation email send.
func (s *DefaultWizardService) CancelEmail(sessionID string) (*models.EmailUpdateResult, error) {
	ctx := context.Background()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.SentEmailID == "" {
		return nil, ErrNoEmailID
	}

	return s.Mailer.Cancel(ctx, session.SentEmailID)
}

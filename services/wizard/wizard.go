package wizard

import (
	"context"

	"neatspin/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start creates a new wizard session at step 1.
func (s *DefaultWizardService) Start(userEmail string) (*models.WizardSession, error) {
	ctx := context.Background()

	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		Step:      StepService,
		Draft:     s.initialDraft(userEmail),
		UserEmail: userEmail,
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	s.Logger.Info("wizard session started", zap.String("sessionID", session.SessionID))
	return session, nil
}

// Get returns the current session state.
func (s *DefaultWizardService) Get(sessionID string) (*models.WizardSession, error) {
	return s.getSession(context.Background(), sessionID)
}

// UpdateDraft merges submitted form fields into the session draft. Validation
// happens at step transitions, not on field updates.
func (s *DefaultWizardService) UpdateDraft(sessionID string, draft models.DraftBooking) (*models.WizardSession, error) {
	ctx := context.Background()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Draft = draft
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance moves the wizard one step forward, guarded by the current step's
// validator. Entering the payment step kicks off the payment-intent prefetch.
func (s *DefaultWizardService) Advance(sessionID string) (*models.WizardSession, error) {
	ctx := context.Background()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step >= StepPayment {
		return session, nil
	}
	if !ValidateStep(session.Step, session.Draft) {
		return nil, ErrStepIncomplete
	}

	session.Step++
	session.PrefetchGen++
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	if session.Step == StepPayment && session.Draft.PaymentMethod != models.PaymentPayLater {
		go s.prefetchPaymentIntent(session.SessionID, session.PrefetchGen, session.Draft)
	}

	return session, nil
}

// Back moves exactly one step backward. A no-op on step 1.
func (s *DefaultWizardService) Back(sessionID string) (*models.WizardSession, error) {
	ctx := context.Background()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step <= StepService {
		return session, nil
	}

	session.Step--
	session.PrefetchGen++
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// prefetchPaymentIntent eagerly requests a payment intent when the wizard
// reaches step 4. The result is applied only if the session is still on the
// payment step with an unchanged generation, so a stale response from a slow
// gateway call is never written over newer state.
func (s *DefaultWizardService) prefetchPaymentIntent(sessionID string, gen int, draft models.DraftBooking) {
	ctx := context.Background()

	intent, err := s.Payments.CreateIntent(ctx, draft.Service, draft.Email)
	if err != nil {
		s.Logger.Warn("payment intent prefetch failed",
			zap.String("sessionID", sessionID), zap.Error(err))
		return
	}

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return
	}
	if session.Step != StepPayment || session.PrefetchGen != gen {
		s.Logger.Debug("dropping stale payment intent",
			zap.String("sessionID", sessionID), zap.String("intentID", intent.ID))
		return
	}

	session.PaymentIntentID = intent.ID
	if err := s.saveSession(ctx, session); err != nil {
		s.Logger.Warn("failed to store prefetched payment intent",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}

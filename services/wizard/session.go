package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"neatspin/models"

	"github.com/go-redis/redis/v8"
)

// Session TTL mirrors how long an abandoned wizard draft is kept around.
const sessionTTL = 30 * time.Minute

// submitGuardTTL bounds how long a stuck submission can block retries.
const submitGuardTTL = 2 * time.Minute

func submitKey(sessionID string) string {
	return "wizard:submitting:" + sessionID
}

func (s *DefaultWizardService) getSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	data, err := s.Cache.Get(ctx, sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (s *DefaultWizardService) saveSession(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Cache.Set(ctx, session.SessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

// initialDraft is the shape the draft resets to: everything cleared, the
// contact email prefilled from the authenticated user when available, and the
// test-routing toggle at its configured default.
func (s *DefaultWizardService) initialDraft(userEmail string) models.DraftBooking {
	return models.DraftBooking{
		Email:        userEmail,
		UseTestEmail: s.UseTestEmailDefault,
	}
}

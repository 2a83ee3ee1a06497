package wizard

import "errors"

var (
	// ErrSessionNotFound means the wizard session is missing or expired.
	ErrSessionNotFound = errors.New("wizard session not found or expired")
	// ErrStepIncomplete means the current step's gate is not satisfied.
	ErrStepIncomplete = errors.New("current step is incomplete")
	// ErrAlreadySubmitting rejects a duplicate submit while one is in flight.
	ErrAlreadySubmitting = errors.New("submission already in progress")
	// ErrNoEmailID means no confirmation email id is recorded in the session.
	ErrNoEmailID = errors.New("no confirmation email to manage for this session")
	// ErrBadScheduleTime means scheduleEmailFor is not a valid RFC3339 timestamp.
	ErrBadScheduleTime = errors.New("invalid email schedule time")
)

// SubmitError wraps a persistence failure so callers can distinguish it from
// the non-fatal email path.
type SubmitError struct {
	Stage   string
	Message string
}

func (e *SubmitError) Error() string {
	return e.Stage + ": " + e.Message
}

func newSubmitError(stage, msg string) error {
	return &SubmitError{Stage: stage, Message: msg}
}

package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"neatspin/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ErrEmailNotFound means no pending scheduled email exists for the given id.
var ErrEmailNotFound = errors.New("scheduled email not found")

// DefaultMailerService sends immediate emails through the configured
// EmailSender and defers scheduled ones to the asynq mail queue. Scheduled
// sends are identified by their task id, which is what reschedule/cancel
// operate on.
type DefaultMailerService struct {
	Sender    EmailSender
	Queue     *asynq.Client
	Inspector *asynq.Inspector
	TestEmail string
	Logger    *zap.Logger
}

// SendConfirmation routes and delivers a booking confirmation email. With a
// schedule time it enqueues a deferred send and returns the task id as the
// email id; otherwise it sends immediately and returns the provider message id.
func (m *DefaultMailerService) SendConfirmation(ctx context.Context, req models.ConfirmationEmailRequest) (*models.ConfirmationEmailResult, error) {
	testMode := req.UseTestEmail
	recipient := req.Email
	if testMode {
		recipient = m.TestEmail
	}

	subject, html := BuildConfirmationEmail(req, testMode)
	msg := EmailMessage{
		To:      recipient,
		ToName:  req.Name,
		Subject: subject,
		HTML:    html,
	}

	if req.ScheduleTime != "" {
		fireAt, err := time.Parse(time.RFC3339, req.ScheduleTime)
		if err != nil {
			return nil, fmt.Errorf("invalid schedule time %q: %w", req.ScheduleTime, err)
		}

		emailID := uuid.New().String()
		task, opts, err := NewConfirmationTask(ConfirmationTaskPayload{
			To:      msg.To,
			ToName:  msg.ToName,
			Subject: msg.Subject,
			HTML:    msg.HTML,
		}, emailID, fireAt)
		if err != nil {
			return nil, fmt.Errorf("failed to build scheduled email task: %w", err)
		}
		if _, err := m.Queue.EnqueueContext(ctx, task, opts...); err != nil {
			return nil, fmt.Errorf("failed to schedule confirmation email: %w", err)
		}

		m.Logger.Info("confirmation email scheduled",
			zap.String("emailID", emailID),
			zap.String("to", recipient),
			zap.Time("fireAt", fireAt),
			zap.Bool("testMode", testMode))
		return &models.ConfirmationEmailResult{
			TestMode:    testMode,
			SentToEmail: recipient,
			EmailID:     emailID,
			Scheduled:   true,
		}, nil
	}

	messageID, err := m.Sender.Send(ctx, msg)
	if err != nil {
		return nil, err
	}

	return &models.ConfirmationEmailResult{
		TestMode:    testMode,
		SentToEmail: recipient,
		EmailID:     messageID,
		Scheduled:   false,
	}, nil
}

// Reschedule moves a pending scheduled email to a new send time. The task is
// re-enqueued under the same id, so the caller's email id stays valid.
func (m *DefaultMailerService) Reschedule(ctx context.Context, emailID string, at time.Time) (*models.EmailUpdateResult, error) {
	info, err := m.Inspector.GetTaskInfo(MailQueue, emailID)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("failed to look up scheduled email: %w", err)
	}

	if err := m.Inspector.DeleteTask(MailQueue, emailID); err != nil {
		return nil, fmt.Errorf("failed to remove scheduled email: %w", err)
	}

	task := asynq.NewTask(TypeSendConfirmation, info.Payload)
	opts := []asynq.Option{
		asynq.TaskID(emailID),
		asynq.ProcessAt(at),
		asynq.Queue(MailQueue),
	}
	if _, err := m.Queue.EnqueueContext(ctx, task, opts...); err != nil {
		return nil, fmt.Errorf("failed to re-schedule confirmation email: %w", err)
	}

	m.Logger.Info("confirmation email rescheduled",
		zap.String("emailID", emailID), zap.Time("fireAt", at))
	return &models.EmailUpdateResult{
		Action:  models.EmailActionUpdated,
		EmailID: emailID,
	}, nil
}

// Cancel voids a pending scheduled email send.
func (m *DefaultMailerService) Cancel(ctx context.Context, emailID string) (*models.EmailUpdateResult, error) {
	if err := m.Inspector.DeleteTask(MailQueue, emailID); err != nil {
		if errors.Is(err, asynq.ErrTaskNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("failed to cancel scheduled email: %w", err)
	}

	m.Logger.Info("confirmation email cancelled", zap.String("emailID", emailID))
	return &models.EmailUpdateResult{
		Action:  models.EmailActionCancelled,
		EmailID: emailID,
	}, nil
}
